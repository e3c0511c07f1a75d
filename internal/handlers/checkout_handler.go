package handlers

import (
	"net/http"

	"maxdata/internal/models"
	"maxdata/internal/services"
)

type CheckoutHandler struct {
	Service *services.CheckoutService
}

func (h *CheckoutHandler) Addons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"addons": h.Service.Addons()})
}

func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	q, err := h.Service.Quote(req.Addons)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	order, err := h.Service.Checkout(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *CheckoutHandler) Order(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.Order(r.Context(), getParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *CheckoutHandler) ListingOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.OrdersForListing(r.Context(), getParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}
