package service

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	pgutil "github.com/RoyceAzure/rj/util/pg_util"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type IOrderService interface {
	// Checkout 結帳
	// 價格一律以db當下價格重新計價, client傳來的金額不採信
	// 訂單與全部明細在同一筆交易內建立, 任何一項商品不存在就整筆回滾
	//
	// 錯誤:
	//   - er.BadRequestCode 400: 購物車為空、數量不合法、配送欄位空白、部分商品不存在
	//   - er.InternalErrorCode 500: 內部處理錯誤
	Checkout(ctx context.Context, userID uuid.UUID, arg *model.CheckoutModel) (*model.CheckoutResultModel, error)
	// ConfirmPayment 付款確認 pending -> paid 單向轉移
	// 以條件式UPDATE做狀態轉移, 重複確認不會改寫付款方式
	//
	// 錯誤:
	//   - er.BadRequestCode 400: 訂單狀態已不是pending
	//   - er.NotFoundCode 404: 訂單不存在或不屬於當前用戶
	//   - er.InternalErrorCode 500: 內部處理錯誤
	ConfirmPayment(ctx context.Context, userID uuid.UUID, orderID int64, paymentMethod string) (*model.OrderModel, error)
	// GetOrderForUser 取得訂單與明細, 只能查自己的訂單
	//
	// 錯誤:
	//   - er.NotFoundCode 404: 訂單不存在或不屬於當前用戶
	GetOrderForUser(ctx context.Context, userID uuid.UUID, orderID int64) (*model.OrderModel, []model.OrderDetailModel, error)
}

type OrderService struct {
	dbDao db.IStore
}

func NewOrderService(dbDao db.IStore) IOrderService {
	if reflect.ValueOf(dbDao).IsNil() {
		panic("order service initialization failed: dbDao cannot be nil")
	}
	return &OrderService{
		dbDao: dbDao,
	}
}

// validateCheckout 進db前先擋掉格式問題, 避免開了交易才發現資料不完整
func validateCheckout(arg *model.CheckoutModel) error {
	if len(arg.Items) == 0 {
		return er.New(er.BadRequestCode, "cart cannot be empty")
	}
	for _, item := range arg.Items {
		if item.ProductID <= 0 {
			return er.New(er.BadRequestCode, "product id is invalid")
		}
		if item.Quantity <= 0 {
			return er.New(er.BadRequestCode, "quantity must be a positive integer")
		}
	}

	d := arg.Delivery
	for _, field := range []string{d.Phone, d.Province, d.District, d.SubDistrict, d.Address} {
		if strings.TrimSpace(field) == "" {
			return er.New(er.BadRequestCode, "delivery information is incomplete")
		}
	}
	return nil
}

// Checkout 結帳, 單一交易內重新計價並建立訂單與明細
func (o *OrderService) Checkout(ctx context.Context, userID uuid.UUID, arg *model.CheckoutModel) (*model.CheckoutResultModel, error) {
	if err := validateCheckout(arg); err != nil {
		return nil, err
	}

	//同一商品重複出現時只查一次價格, 但明細照cart原樣逐列建立
	distinctIDs := make([]int64, 0, len(arg.Items))
	seen := make(map[int64]struct{}, len(arg.Items))
	for _, item := range arg.Items {
		if _, ok := seen[item.ProductID]; !ok {
			seen[item.ProductID] = struct{}{}
			distinctIDs = append(distinctIDs, item.ProductID)
		}
	}

	var result model.CheckoutResultModel
	err := o.dbDao.ExecTx(ctx, func(q *sqlc.Queries) error {
		priceRows, err := q.ListProductPrices(ctx, distinctIDs)
		if err != nil {
			return er.New(er.InternalErrorCode, err.Error())
		}
		if len(priceRows) != len(distinctIDs) {
			return er.New(er.BadRequestCode, "some items are unavailable")
		}

		prices := make(map[int64]decimal.Decimal, len(priceRows))
		for _, row := range priceRows {
			prices[row.ID] = util.PgNumericToDecimal(row.Price)
		}

		total := decimal.Zero
		for _, item := range arg.Items {
			total = total.Add(prices[item.ProductID].Mul(decimal.NewFromInt32(item.Quantity)))
		}

		orderEntity, err := q.CreateOrder(ctx, sqlc.CreateOrderParams{
			UserID:      pgutil.UUIDToPgUUIDV5(userID),
			Phone:       strings.TrimSpace(arg.Delivery.Phone),
			Province:    strings.TrimSpace(arg.Delivery.Province),
			District:    strings.TrimSpace(arg.Delivery.District),
			SubDistrict: strings.TrimSpace(arg.Delivery.SubDistrict),
			Address:     strings.TrimSpace(arg.Delivery.Address),
			TotalPrice:  util.DecimalToPgNumeric(total),
		})
		if err != nil {
			return er.New(er.InternalErrorCode, err.Error())
		}

		for _, item := range arg.Items {
			_, err := q.CreateOrderDetail(ctx, sqlc.CreateOrderDetailParams{
				OrderID:   orderEntity.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: util.DecimalToPgNumeric(prices[item.ProductID]),
			})
			if err != nil {
				return er.New(er.InternalErrorCode, err.Error())
			}
		}

		result = model.CheckoutResultModel{
			OrderID:    orderEntity.ID,
			TotalPrice: total,
		}
		return nil
	})
	if err != nil {
		var anaErr *er.AnaError
		if errors.As(err, &anaErr) {
			return nil, err
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return &result, nil
}

// ConfirmPayment 付款確認
func (o *OrderService) ConfirmPayment(ctx context.Context, userID uuid.UUID, orderID int64, paymentMethod string) (*model.OrderModel, error) {
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		return nil, er.New(er.BadRequestCode, "payment method cannot be empty")
	}

	orderEntity, err := o.dbDao.GetOrderForUser(ctx, sqlc.GetOrderForUserParams{
		ID:     orderID,
		UserID: pgutil.UUIDToPgUUIDV5(userID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, er.New(er.NotFoundCode, "order not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	if orderEntity.Status != string(constants.OrderStatusPending) {
		return nil, er.New(er.BadRequestCode, "order status already changed")
	}

	//條件式UPDATE, 兩個併發確認只有先到者會改到列
	rows, err := o.dbDao.MarkOrderPaid(ctx, sqlc.MarkOrderPaidParams{
		ID:            orderID,
		UserID:        pgutil.UUIDToPgUUIDV5(userID),
		PaymentMethod: pgutil.StringToPgTextV5(&paymentMethod),
	})
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	if rows == 0 {
		return nil, er.New(er.BadRequestCode, "order status already changed")
	}

	paid, err := o.dbDao.GetOrderForUser(ctx, sqlc.GetOrderForUserParams{
		ID:     orderID,
		UserID: pgutil.UUIDToPgUUIDV5(userID),
	})
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertRepoOrderToModel(&paid), nil
}

func (o *OrderService) GetOrderForUser(ctx context.Context, userID uuid.UUID, orderID int64) (*model.OrderModel, []model.OrderDetailModel, error) {
	orderEntity, err := o.dbDao.GetOrderForUser(ctx, sqlc.GetOrderForUserParams{
		ID:     orderID,
		UserID: pgutil.UUIDToPgUUIDV5(userID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, er.New(er.NotFoundCode, "order not found")
		}
		return nil, nil, er.New(er.InternalErrorCode, err.Error())
	}

	detailEntities, err := o.dbDao.ListOrderDetails(ctx, orderID)
	if err != nil {
		return nil, nil, er.New(er.InternalErrorCode, err.Error())
	}

	details := make([]model.OrderDetailModel, 0, len(detailEntities))
	for i := range detailEntities {
		details = append(details, *convertRepoOrderDetailToModel(&detailEntities[i]))
	}

	return convertRepoOrderToModel(&orderEntity), details, nil
}
