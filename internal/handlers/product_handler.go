package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"dash-backend/internal/cache"
	"dash-backend/internal/models"
	"dash-backend/internal/services"

	"github.com/gorilla/mux"
)

type ProductHandler struct {
	Service *services.ProductService
}

func NewProductHandler(s *services.ProductService) *ProductHandler {
	return &ProductHandler{Service: s}
}

// CreateProduct creates a new product
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.Service.CreateProduct(context.Background(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	cache.InvalidateStats(context.Background())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(product)
}

// GetProduct retrieves a product by ID
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.Service.GetProduct(context.Background(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// ListProducts returns all products. Optional query parameters:
// status (a product status or All) and q (name/reference search).
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Service.ListProducts(context.Background())
	if err != nil {
		writeError(w, err)
		return
	}

	products = services.FilterProducts(products, r.URL.Query().Get("status"), r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// UpdateProduct updates a product's editable fields
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.Service.UpdateProduct(context.Background(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	cache.InvalidateStats(context.Background())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// DeleteProduct removes a product
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteProduct(context.Background(), id); err != nil {
		writeError(w, err)
		return
	}

	cache.InvalidateStats(context.Background())

	w.WriteHeader(http.StatusNoContent)
}

// GetProductStats returns catalog aggregates, served from cache when
// fresh.
func (h *ProductHandler) GetProductStats(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	if data, ok := cache.GetCached(ctx, cache.ProductStatsKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	stats, err := h.Service.Stats(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		writeError(w, err)
		return
	}
	cache.SetCached(ctx, cache.ProductStatsKey, data, cache.StatsTTL)

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
