package sqlc

import (
	"context"
	"testing"

	pgutil "github.com/RoyceAzure/rj/util/pg_util"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createRandomOrder(t *testing.T, total decimal.Decimal) Order {
	t.Helper()

	owner, _ := createRandomUser(t)
	t.Cleanup(func() {
		testQueries.DeleteUser(context.Background(), owner.ID)
	})

	order, err := testQueries.CreateOrder(context.Background(), CreateOrderParams{
		UserID:      owner.ID,
		Phone:       "99119911",
		Province:    "Ulaanbaatar",
		District:    "Sukhbaatar",
		SubDistrict: "1",
		Address:     "Peace Avenue 17",
		TotalPrice:  decimalToNumeric(total),
	})
	require.NoError(t, err)
	require.Equal(t, "pending", order.Status)
	require.False(t, order.PaymentMethod.Valid)
	require.True(t, total.Equal(numericToDecimal(order.TotalPrice)))

	return order
}

func TestCreateOrder(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestCreateOrder")
	}
	order := createRandomOrder(t, decimal.NewFromInt(2500))
	t.Cleanup(func() {
		testQueries.DeleteOrder(context.Background(), order.ID)
	})
}

func TestCreateOrderDetail(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestCreateOrderDetail")
	}
	order := createRandomOrder(t, decimal.NewFromInt(2000))
	product := createRandomProduct(t, decimal.NewFromInt(1000))
	t.Cleanup(func() {
		testQueries.DeleteOrderDetailsByOrder(context.Background(), order.ID)
		testQueries.DeleteOrder(context.Background(), order.ID)
		testQueries.DeleteProduct(context.Background(), product.ID)
	})

	detail, err := testQueries.CreateOrderDetail(context.Background(), CreateOrderDetailParams{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  2,
		UnitPrice: product.Price,
	})
	require.NoError(t, err)
	require.Equal(t, order.ID, detail.OrderID)
	require.Equal(t, int32(2), detail.Quantity)

	details, err := testQueries.ListOrderDetails(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
}

func TestMarkOrderPaid(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestMarkOrderPaid")
	}
	order := createRandomOrder(t, decimal.NewFromInt(1500))
	t.Cleanup(func() {
		testQueries.DeleteOrder(context.Background(), order.ID)
	})

	method := "card"
	rows, err := testQueries.MarkOrderPaid(context.Background(), MarkOrderPaidParams{
		ID:            order.ID,
		UserID:        order.UserID,
		PaymentMethod: pgutil.StringToPgTextV5(&method),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	paid, err := testQueries.GetOrderForUser(context.Background(), GetOrderForUserParams{
		ID:     order.ID,
		UserID: order.UserID,
	})
	require.NoError(t, err)
	require.Equal(t, "paid", paid.Status)
	require.Equal(t, method, paid.PaymentMethod.String)

	//已付款的訂單再標記一次必須是0列, 付款方式不能被改寫
	other := "cash"
	rows, err = testQueries.MarkOrderPaid(context.Background(), MarkOrderPaidParams{
		ID:            order.ID,
		UserID:        order.UserID,
		PaymentMethod: pgutil.StringToPgTextV5(&other),
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), rows)

	paid, err = testQueries.GetOrderForUser(context.Background(), GetOrderForUserParams{
		ID:     order.ID,
		UserID: order.UserID,
	})
	require.NoError(t, err)
	require.Equal(t, method, paid.PaymentMethod.String)
}

func TestGetOrderForUserWrongUser(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestGetOrderForUserWrongUser")
	}
	order := createRandomOrder(t, decimal.NewFromInt(800))
	otherUser, _ := createRandomUser(t)
	t.Cleanup(func() {
		testQueries.DeleteOrder(context.Background(), order.ID)
		testQueries.DeleteUser(context.Background(), otherUser.ID)
	})

	//別人的訂單要查不到, 不能只是欄位過濾
	_, err := testQueries.GetOrderForUser(context.Background(), GetOrderForUserParams{
		ID:     order.ID,
		UserID: otherUser.ID,
	})
	require.Error(t, err)
}
