package model

import (
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderModel struct {
	ID            int64
	UserID        uuid.UUID
	Phone         string
	Province      string
	District      string
	SubDistrict   string
	Address       string
	TotalPrice    decimal.Decimal
	Status        constants.OrderStatus
	PaymentMethod *string
	CreatedAt     time.Time
}

type OrderDetailModel struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int32
	//下單當下的商品單價快照，建立後不再變動
	UnitPrice decimal.Decimal
}

// CartItemModel 只信任client傳來的product id與數量，價格一律以db當下價格為準
type CartItemModel struct {
	ProductID int64
	Quantity  int32
}

type DeliveryModel struct {
	Phone       string
	Province    string
	District    string
	SubDistrict string
	Address     string
}

type CheckoutModel struct {
	Items    []CartItemModel
	Delivery DeliveryModel
}

type CheckoutResultModel struct {
	OrderID    int64
	TotalPrice decimal.Decimal
}
