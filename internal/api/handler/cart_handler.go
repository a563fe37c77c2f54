package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

func callerID(r *http.Request) string {
	caller := util.GetCallerFromContext(r.Context())
	if caller == nil {
		return ""
	}
	return caller.UserID
}

func (c *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.cartService.GetCart(r.Context(), callerID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (c *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == 0 {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	err := c.cartService.AddItem(r.Context(), callerID(r), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, dto.MessageResponse{Message: "Item added to cart successfully"})
}

func (c *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == 0 || req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "product_id and quantity are required")
		return
	}

	err := c.cartService.UpdateItem(r.Context(), callerID(r), req.ProductID, *req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			writeError(w, http.StatusNotFound, "Cart item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Cart updated successfully"})
}

func (c *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req dto.RemoveCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == 0 {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	err := c.cartService.RemoveItem(r.Context(), callerID(r), req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			writeError(w, http.StatusNotFound, "Cart item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Item removed from cart successfully"})
}

func (c *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := c.cartService.ClearCart(r.Context(), callerID(r)); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Cart cleared successfully"})
}
