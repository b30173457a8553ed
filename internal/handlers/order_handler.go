package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"dash-backend/internal/metrics"
	"dash-backend/internal/models"
	"dash-backend/internal/services"

	"github.com/gorilla/mux"
)

type OrderHandler struct {
	Service     *services.OrderService
	Fulfillment *services.FulfillmentService
}

func NewOrderHandler(s *services.OrderService, f *services.FulfillmentService) *OrderHandler {
	return &OrderHandler{Service: s, Fulfillment: f}
}

// CreateOrder creates a new pending order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.Service.CreateOrder(context.Background(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// GetOrder retrieves an order by ID
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.Service.GetOrder(context.Background(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// ListOrders returns all orders, newest first
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.ListOrders(context.Background())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// FulfillOrder runs the fulfillment workflow for a pending order and
// returns the generated invoice
func (h *OrderHandler) FulfillOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	invoice, err := h.Fulfillment.Fulfill(context.Background(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotPending),
			errors.Is(err, services.ErrFulfillmentInFlight):
			metrics.FulfillmentsTotal.WithLabelValues("conflict").Inc()
		default:
			metrics.FulfillmentsTotal.WithLabelValues("error").Inc()
		}
		writeError(w, err)
		return
	}
	metrics.FulfillmentsTotal.WithLabelValues("success").Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(invoice)
}
