package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"dash-backend/internal/models"
	"dash-backend/internal/services"

	"github.com/gorilla/mux"
)

type ClientHandler struct {
	Service *services.ClientService
}

func NewClientHandler(s *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: s}
}

// CreateClient creates a new client
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	client, err := h.Service.CreateClient(context.Background(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(client)
}

// GetClient retrieves a client by ID
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	client, err := h.Service.GetClient(context.Background(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(client)
}

// ListClients returns all clients with pending-order counts. Optional
// query parameters: status (Active, Inactive, PendingOrders, All) and
// q (free-text search).
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.ListClients(context.Background())
	if err != nil {
		writeError(w, err)
		return
	}

	views = services.FilterClients(views, r.URL.Query().Get("status"), r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

// UpdateClient updates a client's editable fields
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	client, err := h.Service.UpdateClient(context.Background(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(client)
}

// DeleteClient removes a client
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteClient(context.Background(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListClientOrders returns all orders belonging to one client
func (h *ClientHandler) ListClientOrders(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	orders, err := h.Service.ClientOrders(context.Background(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}
