package service

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	pgutil "github.com/RoyceAzure/rj/util/pg_util"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/jackc/pgx/v5"
)

type IProductService interface {
	// CreateProduct 上架商品, 擁有者為當前登入用戶
	//
	// 錯誤:
	//   - er.BadRequestCode 400: 名稱為空或價格為負
	//   - er.InternalErrorCode 500: 內部處理錯誤
	CreateProduct(ctx context.Context, arg *model.CreateProductModel) (*model.ProductModel, error)
	// GetProductByID 取得單一商品
	//
	// 錯誤:
	//   - er.NotFoundCode 404: 商品不存在
	GetProductByID(ctx context.Context, id int64) (*model.ProductModel, error)
	ListProducts(ctx context.Context) ([]model.ProductModel, error)
	// DeleteProduct 下架商品, 僅限商品擁有者或admin
	//
	// 錯誤:
	//   - er.UnauthorizedCode 403: 非擁有者且非admin
	//   - er.NotFoundCode 404: 商品不存在
	DeleteProduct(ctx context.Context, id int64, actor *model.UserModel) error
}

type ProductService struct {
	dbDao db.IStore
}

func NewProductService(dbDao db.IStore) IProductService {
	if reflect.ValueOf(dbDao).IsNil() {
		panic("product service initialization failed: dbDao cannot be nil")
	}
	return &ProductService{
		dbDao: dbDao,
	}
}

func (p *ProductService) CreateProduct(ctx context.Context, arg *model.CreateProductModel) (*model.ProductModel, error) {
	name := strings.TrimSpace(arg.Name)
	if name == "" {
		return nil, er.New(er.BadRequestCode, "product name cannot be empty")
	}
	if arg.Price.IsNegative() {
		return nil, er.New(er.BadRequestCode, "product price cannot be negative")
	}

	productEntity, err := p.dbDao.CreateProduct(ctx, sqlc.CreateProductParams{
		Name:        name,
		Price:       util.DecimalToPgNumeric(arg.Price),
		Description: pgutil.StringToPgTextV5(arg.Description),
		ImageUrl:    pgutil.StringToPgTextV5(arg.ImageURL),
		UserID:      pgutil.UUIDToPgUUIDV5(arg.UserID),
	})
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertRepoProductToModel(&productEntity), nil
}

func (p *ProductService) GetProductByID(ctx context.Context, id int64) (*model.ProductModel, error) {
	productEntity, err := p.dbDao.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, er.New(er.NotFoundCode, "product not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return convertRepoProductToModel(&productEntity), nil
}

func (p *ProductService) ListProducts(ctx context.Context) ([]model.ProductModel, error) {
	productEntities, err := p.dbDao.ListProducts(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	products := make([]model.ProductModel, 0, len(productEntities))
	for i := range productEntities {
		products = append(products, *convertRepoProductToModel(&productEntities[i]))
	}
	return products, nil
}

// DeleteProduct 下架商品, 僅限商品擁有者或admin
func (p *ProductService) DeleteProduct(ctx context.Context, id int64, actor *model.UserModel) error {
	productEntity, err := p.dbDao.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return er.New(er.NotFoundCode, "product not found")
		}
		return er.New(er.InternalErrorCode, err.Error())
	}

	if productEntity.UserID.Bytes != actor.ID && !actor.IsAdmin() {
		return er.New(er.UnauthorizedCode, "only the product owner or an administrator can delete this product")
	}

	rows, err := p.dbDao.DeleteProduct(ctx, id)
	if err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	if rows == 0 {
		return er.New(er.NotFoundCode, "product not found")
	}
	return nil
}
