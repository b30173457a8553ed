package services

import (
	"context"

	"dash-backend/internal/models"
)

type InvoiceService struct {
	Invoices InvoiceStore
}

func NewInvoiceService(invoices InvoiceStore) *InvoiceService {
	return &InvoiceService{Invoices: invoices}
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	return s.Invoices.Get(ctx, id)
}

func (s *InvoiceService) GetInvoiceByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	return s.Invoices.GetByNumber(ctx, number)
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	return s.Invoices.List(ctx)
}

// UpdateStatus moves an invoice between Pending, Paid and Overdue.
// Any transition between the three is allowed, including marking a
// Paid invoice back to Pending.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id, status string) (*models.Invoice, error) {
	switch status {
	case models.InvoiceStatusPaid, models.InvoiceStatusPending, models.InvoiceStatusOverdue:
	default:
		return nil, validationErrorf("invalid invoice status %q", status)
	}
	if err := s.Invoices.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.Invoices.Get(ctx, id)
}
