package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
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

func (o *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := o.orderService.Checkout(r.Context(), callerID(r))
	if err != nil {
		var stockErr *service.StockValidationError
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, "Cart is empty")
		case errors.As(err, &stockErr):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Stock validation failed",
				"details": stockErr.Result,
			})
		case errors.Is(err, service.ErrProductNotFound):
			writeError(w, http.StatusNotFound, "Product not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.CheckoutResponse{
		Message: "Order placed successfully",
		Order:   dto.FromOrder(order),
	})
}

func (o *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderService.OrderHistory(r.Context(), callerID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.FromOrders(orders))
}

func (o *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := o.orderService.GetOrder(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.FromOrder(order))
}
