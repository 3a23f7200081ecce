package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description *string
	ImageURL    *string
	UserID      uuid.UUID
	CreatedAt   time.Time
}

type CreateProductModel struct {
	Name        string
	Price       decimal.Decimal
	Description *string
	ImageURL    *string
	UserID      uuid.UUID
}
