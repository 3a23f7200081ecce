package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/rj/util/random"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCreateProductInvalid(t *testing.T) {
	if testProductService == nil {
		t.Skip("Database not configured, skipping TestCreateProductInvalid")
	}

	owner, _ := registerRandomUser(t)

	_, err := testProductService.CreateProduct(context.Background(), &model.CreateProductModel{
		Name:   "   ",
		Price:  decimal.NewFromInt(100),
		UserID: owner.ID,
	})
	requireAnaCode(t, err, int(er.BadRequestCode))

	_, err = testProductService.CreateProduct(context.Background(), &model.CreateProductModel{
		Name:   random.RandomString(12),
		Price:  decimal.NewFromInt(-1),
		UserID: owner.ID,
	})
	requireAnaCode(t, err, int(er.BadRequestCode))
}

func TestGetProductByIDNotFound(t *testing.T) {
	if testProductService == nil {
		t.Skip("Database not configured, skipping TestGetProductByIDNotFound")
	}

	_, err := testProductService.GetProductByID(context.Background(), 999999999)
	requireAnaCode(t, err, int(er.NotFoundCode))
}

func TestDeleteProductOwnerOnly(t *testing.T) {
	if testProductService == nil {
		t.Skip("Database not configured, skipping TestDeleteProductOwnerOnly")
	}

	product := createTestProduct(t, "100")
	stranger, _ := registerRandomUser(t)

	//非擁有者也非admin不能下架
	err := testProductService.DeleteProduct(context.Background(), product.ID, stranger)
	requireAnaCode(t, err, int(er.UnauthorizedCode))

	//商品應該還在
	_, err = testProductService.GetProductByID(context.Background(), product.ID)
	require.NoError(t, err)
}

func TestDeleteProductAsAdmin(t *testing.T) {
	if testProductService == nil {
		t.Skip("Database not configured, skipping TestDeleteProductAsAdmin")
	}

	product := createTestProduct(t, "100")
	admin := registerRandomAdmin(t)

	//admin可以下架任何商品
	err := testProductService.DeleteProduct(context.Background(), product.ID, admin)
	require.NoError(t, err)

	_, err = testProductService.GetProductByID(context.Background(), product.ID)
	requireAnaCode(t, err, int(er.NotFoundCode))
}

func TestDeleteProductNotFound(t *testing.T) {
	if testProductService == nil {
		t.Skip("Database not configured, skipping TestDeleteProductNotFound")
	}

	owner, _ := registerRandomUser(t)

	err := testProductService.DeleteProduct(context.Background(), 999999999, owner)
	requireAnaCode(t, err, int(er.NotFoundCode))
}
