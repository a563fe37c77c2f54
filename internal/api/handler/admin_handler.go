package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

// AdminHandler serves the back-office: order management and the dashboard.
// Route-level admin enforcement happens in middleware.
type AdminHandler struct {
	orderService     service.IOrderService
	dashboardService service.IDashboardService
}

func NewAdminHandler(orderService service.IOrderService, dashboardService service.IDashboardService) *AdminHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	if dashboardService == nil {
		panic("dashboardService cannot be nil")
	}
	return &AdminHandler{
		orderService:     orderService,
		dashboardService: dashboardService,
	}
}

func (a *AdminHandler) Orders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	orders, err := a.orderService.ListAllOrders(r.Context(), status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.FromOrders(orders))
}

func (a *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := a.orderService.UpdateOrderStatus(r.Context(), uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderStatus):
			writeError(w, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, service.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "Order not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, dto.FromOrder(order))
}

func (a *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data, err := a.dashboardService.Dashboard(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.FromDashboard(data))
}
