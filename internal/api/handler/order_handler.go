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
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary checkout
// @create an order from the cart, prices are recalculated from current product data
// @Tags order
// @Accept json
// @Produce json
// @Param checkoutInfo body dto.CheckoutDTO true "cart items and delivery info"
// @Success 200 {object} api.Response{data=dto.CheckoutResponse} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /payment [post]
func (o *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user := util.GetAuthUserFromContext(r.Context())
	if user == nil {
		api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
		return
	}

	var checkoutDTO dto.CheckoutDTO
	if err := json.NewDecoder(r.Body).Decode(&checkoutDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	items := make([]model.CartItemModel, 0, len(checkoutDTO.Items))
	for _, item := range checkoutDTO.Items {
		items = append(items, model.CartItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	result, err := o.orderService.Checkout(r.Context(), user.ID, &model.CheckoutModel{
		Items: items,
		Delivery: model.DeliveryModel{
			Phone:       checkoutDTO.Phone,
			Province:    checkoutDTO.Province,
			District:    checkoutDTO.District,
			SubDistrict: checkoutDTO.SubDistrict,
			Address:     checkoutDTO.Address,
		},
	})
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, dto.CheckoutResponse{
		OrderID:    result.OrderID,
		TotalPrice: result.TotalPrice.String(),
	}, nil)
}

// @Summary confirm payment
// @mark a pending order as paid, only the order owner can confirm
// @Tags order
// @Accept json
// @Produce json
// @Param paymentInfo body dto.ConfirmPaymentDTO true "order id and payment method"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /payment-pending [post]
func (o *OrderHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	user := util.GetAuthUserFromContext(r.Context())
	if user == nil {
		api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
		return
	}

	var paymentDTO dto.ConfirmPaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&paymentDTO); err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), nil, er.ErrStrMap[er.BadRequestCode])
		return
	}

	if paymentDTO.OrderID <= 0 {
		api.ErrorJSON(w, int(er.BadRequestCode), er.New(er.BadRequestCode, "order id is invalid"), er.ErrStrMap[er.BadRequestCode])
		return
	}

	order, err := o.orderService.ConfirmPayment(r.Context(), user.ID, paymentDTO.OrderID, paymentDTO.Method)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertOrderModelToDTO(*order, nil), nil)
}

// @Summary get order
// @get an order with its line items, owner only
// @Tags order
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /orders/{id} [get]
func (o *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	user := util.GetAuthUserFromContext(r.Context())
	if user == nil {
		api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.ErrorJSON(w, int(er.BadRequestCode), er.New(er.BadRequestCode, "order id is invalid"), er.ErrStrMap[er.BadRequestCode])
		return
	}

	order, details, err := o.orderService.GetOrderForUser(r.Context(), user.ID, id)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertOrderModelToDTO(*order, details), nil)
}
