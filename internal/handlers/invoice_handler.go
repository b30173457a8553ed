package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"dash-backend/internal/cache"
	"dash-backend/internal/models"
	"dash-backend/internal/services"

	"github.com/gorilla/mux"
)

type InvoiceHandler struct {
	Service  *services.InvoiceService
	Renderer services.InvoiceRenderer
}

func NewInvoiceHandler(s *services.InvoiceService, renderer services.InvoiceRenderer) *InvoiceHandler {
	return &InvoiceHandler{Service: s, Renderer: renderer}
}

// GetInvoice retrieves an invoice by ID
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	invoice, err := h.Service.GetInvoice(context.Background(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(invoice)
}

// GetInvoiceByNumber retrieves an invoice by its human-facing number
func (h *InvoiceHandler) GetInvoiceByNumber(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	invoice, err := h.Service.GetInvoiceByNumber(context.Background(), number)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(invoice)
}

// ListInvoices returns all invoices, newest first
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Service.ListInvoices(context.Background())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(invoices)
}

// UpdateInvoiceStatus moves an invoice between Pending, Paid and
// Overdue. Paid totals feed dashboard revenue, so the stats cache is
// dropped on every change.
func (h *InvoiceHandler) UpdateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateInvoiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	invoice, err := h.Service.UpdateStatus(context.Background(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	cache.InvalidateStats(context.Background())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(invoice)
}

// DownloadInvoicePDF renders the invoice as a PDF and streams it as an
// attachment
func (h *InvoiceHandler) DownloadInvoicePDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	invoice, err := h.Service.GetInvoice(context.Background(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := h.Renderer.Render(invoice)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoice.InvoiceNumber))
	w.Write(data)
}
