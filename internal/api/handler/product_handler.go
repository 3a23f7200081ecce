package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// @Summary create product
// @list a product for sale, owner is the current user
// @Tags product
// @Accept json
// @Produce json
// @Param productInfo body dto.CreateProductDTO true "product info"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /products [post]
func (p *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	user := util.GetAuthUserFromContext(r.Context())
	if user == nil {
		api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
		return
	}

	var productDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&productDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	price, err := decimal.NewFromString(productDTO.Price)
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), er.New(er.BadRequestCode, "price is not a valid number"), er.ErrStrMap[er.BadRequestCode])
		return
	}

	product, err := p.productService.CreateProduct(r.Context(), &model.CreateProductModel{
		Name:        productDTO.ProductName,
		Price:       price,
		Description: productDTO.Description,
		ImageURL:    productDTO.ImageURL,
		UserID:      user.ID,
	})
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertProductModelToDTO(*product), nil)
}

// @Summary list products
// @Tags product
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.ProductDTO} "success"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /products [get]
func (p *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productService.ListProducts(r.Context())
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	productDTOs := make([]dto.ProductDTO, 0, len(products))
	for _, product := range products {
		productDTOs = append(productDTOs, convertProductModelToDTO(product))
	}

	api.SuccessJSON(w, productDTOs, nil)
}

// @Summary get product by id
// @Tags product
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /products/{id} [get]
func (p *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), er.New(er.BadRequestCode, "product id is invalid"), er.ErrStrMap[er.BadRequestCode])
		return
	}

	product, err := p.productService.GetProductByID(r.Context(), id)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertProductModelToDTO(*product), nil)
}

// @Summary delete product
// @only the owner or an administrator can delete a product
// @Tags product
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} api.Response{data=dto.MessageResponse} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /products/{id} [delete]
func (p *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	user := util.GetAuthUserFromContext(r.Context())
	if user == nil {
		api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), er.New(er.BadRequestCode, "product id is invalid"), er.ErrStrMap[er.BadRequestCode])
		return
	}

	if err := p.productService.DeleteProduct(r.Context(), id, user); err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, dto.MessageResponse{Message: "product deleted"}, nil)
}
