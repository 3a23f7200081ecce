package service

import (
	"context"
	"strings"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/rj/util/random"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createTestProduct(t *testing.T, price string) *model.ProductModel {
	t.Helper()

	owner, _ := registerRandomUser(t)
	product, err := testProductService.CreateProduct(context.Background(), &model.CreateProductModel{
		Name:   random.RandomString(12),
		Price:  decimal.RequireFromString(price),
		UserID: owner.ID,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		testProductService.DeleteProduct(context.Background(), product.ID, owner)
	})

	return product
}

func cleanupOrder(t *testing.T, orderID int64) {
	t.Helper()
	t.Cleanup(func() {
		testStore.DeleteOrderDetailsByOrder(context.Background(), orderID)
		testStore.DeleteOrder(context.Background(), orderID)
	})
}

func testDelivery() model.DeliveryModel {
	return model.DeliveryModel{
		Phone:       "99119911",
		Province:    "Ulaanbaatar",
		District:    "Sukhbaatar",
		SubDistrict: "1",
		Address:     "Peace Avenue 17",
	}
}

func TestCheckout(t *testing.T) {
	if testOrderService == nil {
		t.Skip("Database not configured, skipping TestCheckout")
	}

	buyer, _ := registerRandomUser(t)
	p1 := createTestProduct(t, "1000")
	p2 := createTestProduct(t, "500")

	result, err := testOrderService.Checkout(context.Background(), buyer.ID, &model.CheckoutModel{
		Items: []model.CartItemModel{
			{ProductID: p1.ID, Quantity: 2},
			{ProductID: p2.ID, Quantity: 1},
		},
		Delivery: testDelivery(),
	})
	require.NoError(t, err)
	cleanupOrder(t, result.OrderID)
	require.NotZero(t, result.OrderID)
	//1000*2 + 500*1 = 2500
	require.True(t, decimal.NewFromInt(2500).Equal(result.TotalPrice))

	order, details, err := testOrderService.GetOrderForUser(context.Background(), buyer.ID, result.OrderID)
	require.NoError(t, err)
	require.Equal(t, constants.OrderStatusPending, order.Status)
	require.Nil(t, order.PaymentMethod)
	require.Len(t, details, 2)

	//明細的單價是下單當下的快照
	for _, d := range details {
		switch d.ProductID {
		case p1.ID:
			require.True(t, p1.Price.Equal(d.UnitPrice))
		case p2.ID:
			require.True(t, p2.Price.Equal(d.UnitPrice))
		default:
			t.Fatalf("unexpected product id %d in order details", d.ProductID)
		}
	}
}

func TestCheckoutDuplicateProduct(t *testing.T) {
	if testOrderService == nil {
		t.Skip("Database not configured, skipping TestCheckoutDuplicateProduct")
	}

	buyer, _ := registerRandomUser(t)
	p := createTestProduct(t, "100")

	//同一商品出現兩列, 明細也要兩列
	result, err := testOrderService.Checkout(context.Background(), buyer.ID, &model.CheckoutModel{
		Items: []model.CartItemModel{
			{ProductID: p.ID, Quantity: 1},
			{ProductID: p.ID, Quantity: 3},
		},
		Delivery: testDelivery(),
	})
	require.NoError(t, err)
	cleanupOrder(t, result.OrderID)
	require.True(t, decimal.NewFromInt(400).Equal(result.TotalPrice))

	_, details, err := testOrderService.GetOrderForUser(context.Background(), buyer.ID, result.OrderID)
	require.NoError(t, err)
	require.Len(t, details, 2)
}

func TestCheckoutEmptyCart(t *testing.T) {
	if testOrderService == nil {
		t.Skip("Database not configured, skipping TestCheckoutEmptyCart")
	}

	buyer, _ := registerRandomUser(t)

	_, err := testOrderService.Checkout(context.Background(), buyer.ID, &model.CheckoutModel{
		Items:    nil,
		Delivery: testDelivery(),
	})
	requireAnaCode(t, err, int(er.BadRequestCode))
}

func TestCheckoutIncompleteDelivery(t *testing.T) {
	if testOrderService == nil {
		t.Skip("Database not configured, skipping TestCheckoutIncompleteDelivery")
	}

	buyer, _ := registerRandomUser(t)
	p := createTestProduct(t, "100")

	delivery := testDelivery()
	delivery.Address = "   "

	_, err := testOrderService.Checkout(context.Background(), buyer.ID, &model.CheckoutModel{
		Items:    []model.CartItemModel{{ProductID: p.ID, Quantity: 1}},
		Delivery: delivery,
	})
	requireAnaCode(t, err, int(er.BadRequestCode))
}

func TestCheckoutInvalidQuantity(t *testing.T) {
	if testOrderService == nil {
		t.Skip("Database not configured, skipping TestCheckoutInvalidQuantity")
	}

	buyer, _ := registerRandomUser(t)
	p := createTestProduct(t, "100")

	_, err := testOrderService.Checkout(context.Background(), buyer.ID, &model.CheckoutModel{
		Items:    []model.CartItemModel{{ProductID: p.ID, Quantity: 0}},
		Delivery: testDelivery(),
	})
	requireAnaCode(t, err, int(er.BadRequestCode))
}

func TestCheckoutMissingProduct(t *testing.T) {
	if testOrderService == nil {
		t.Skip("Database not configured, skipping TestCheckoutMissingProduct")
	}

	buyer, _ := registerRandomUser(t)
	p := createTestProduct(t, "100")

	//有一項商品不存在, 整筆失敗, 已存在的商品也不會建立訂單
	_, err := testOrderService.Checkout(context.Background(), buyer.ID, &model.CheckoutModel{
		Items: []model.CartItemModel{
			{ProductID: p.ID, Quantity: 1},
			{ProductID: 999999999, Quantity: 1},
		},
		Delivery: testDelivery(),
	})
	requireAnaCode(t, err, int(er.BadRequestCode))
	require.True(t, strings.Contains(err.Error(), "unavailable"))
}

func TestConfirmPayment(t *testing.T) {
	if testOrderService == nil {
		t.Skip("Database not configured, skipping TestConfirmPayment")
	}

	buyer, _ := registerRandomUser(t)
	p := createTestProduct(t, "100")

	result, err := testOrderService.Checkout(context.Background(), buyer.ID, &model.CheckoutModel{
		Items:    []model.CartItemModel{{ProductID: p.ID, Quantity: 1}},
		Delivery: testDelivery(),
	})
	require.NoError(t, err)
	cleanupOrder(t, result.OrderID)

	order, err := testOrderService.ConfirmPayment(context.Background(), buyer.ID, result.OrderID, "card")
	require.NoError(t, err)
	require.Equal(t, constants.OrderStatusPaid, order.Status)
	require.NotNil(t, order.PaymentMethod)
	require.Equal(t, "card", *order.PaymentMethod)
}

func TestConfirmPaymentTwice(t *testing.T) {
	if testOrderService == nil {
		t.Skip("Database not configured, skipping TestConfirmPaymentTwice")
	}

	buyer, _ := registerRandomUser(t)
	p := createTestProduct(t, "100")

	result, err := testOrderService.Checkout(context.Background(), buyer.ID, &model.CheckoutModel{
		Items:    []model.CartItemModel{{ProductID: p.ID, Quantity: 1}},
		Delivery: testDelivery(),
	})
	require.NoError(t, err)
	cleanupOrder(t, result.OrderID)

	_, err = testOrderService.ConfirmPayment(context.Background(), buyer.ID, result.OrderID, "card")
	require.NoError(t, err)

	//重複付款要擋, 付款方式也不能被第二次改寫
	_, err = testOrderService.ConfirmPayment(context.Background(), buyer.ID, result.OrderID, "cash")
	requireAnaCode(t, err, int(er.BadRequestCode))

	order, _, err := testOrderService.GetOrderForUser(context.Background(), buyer.ID, result.OrderID)
	require.NoError(t, err)
	require.Equal(t, "card", *order.PaymentMethod)
}

func TestConfirmPaymentWrongUser(t *testing.T) {
	if testOrderService == nil {
		t.Skip("Database not configured, skipping TestConfirmPaymentWrongUser")
	}

	buyer, _ := registerRandomUser(t)
	other, _ := registerRandomUser(t)
	p := createTestProduct(t, "100")

	result, err := testOrderService.Checkout(context.Background(), buyer.ID, &model.CheckoutModel{
		Items:    []model.CartItemModel{{ProductID: p.ID, Quantity: 1}},
		Delivery: testDelivery(),
	})
	require.NoError(t, err)
	cleanupOrder(t, result.OrderID)

	//別人的訂單回404而非403, 不洩漏訂單存在與否
	_, err = testOrderService.ConfirmPayment(context.Background(), other.ID, result.OrderID, "card")
	requireAnaCode(t, err, int(er.NotFoundCode))
}
