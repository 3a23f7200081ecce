package service

import (
	"errors"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	pgutil "github.com/RoyceAzure/rj/util/pg_util"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// 將 repository 模型轉換為服務層模型
func convertRepoUserToModel(u *sqlc.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID.Bytes,
		Email:        u.Email,
		Username:     u.Username,
		Role:         constants.UserRole(u.Role),
		HashPassword: u.PasswordHash,
		BirthDate:    u.BirthDate.Time,
		StoreName:    pgutil.PgTextToStringV5(u.StoreName),
		StoreAddress: pgutil.PgTextToStringV5(u.StoreAddress),
		CreatedAt:    u.CreatedAt,
	}
}

func convertRepoProductToModel(p *sqlc.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Price:       util.PgNumericToDecimal(p.Price),
		Description: pgutil.PgTextToStringV5(p.Description),
		ImageURL:    pgutil.PgTextToStringV5(p.ImageUrl),
		UserID:      p.UserID.Bytes,
		CreatedAt:   p.CreatedAt,
	}
}

func convertRepoOrderToModel(o *sqlc.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:            o.ID,
		UserID:        o.UserID.Bytes,
		TotalPrice:    util.PgNumericToDecimal(o.TotalPrice),
		Status:        constants.OrderStatus(o.Status),
		PaymentMethod: pgutil.PgTextToStringV5(o.PaymentMethod),
		Phone:         o.Phone,
		Province:      o.Province,
		District:      o.District,
		SubDistrict:   o.SubDistrict,
		Address:       o.Address,
		CreatedAt:     o.CreatedAt,
	}
}

func convertRepoOrderDetailToModel(d *sqlc.OrderDetail) *model.OrderDetailModel {
	return &model.OrderDetailModel{
		ID:        d.ID,
		OrderID:   d.OrderID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		UnitPrice: util.PgNumericToDecimal(d.UnitPrice),
	}
}

func pgtypeDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

// isUniqueViolation 判斷是否為postgres unique constraint衝突
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
