package services

import (
	"context"

	"dash-backend/internal/billing"
	"dash-backend/internal/models"
)

type DashboardService struct {
	Clients  ClientStore
	Products ProductStore
	Invoices InvoiceStore
}

func NewDashboardService(clients ClientStore, products ProductStore, invoices InvoiceStore) *DashboardService {
	return &DashboardService{Clients: clients, Products: products, Invoices: invoices}
}

// Stats computes the dashboard headline numbers. Revenue sums the
// totals of Paid invoices only; Pending and Overdue do not count.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	clientCount, err := s.Clients.Count(ctx)
	if err != nil {
		return nil, err
	}
	productCount, err := s.Products.Count(ctx)
	if err != nil {
		return nil, err
	}

	invoices, err := s.Invoices.List(ctx)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, inv := range invoices {
		if inv.Status == models.InvoiceStatusPaid {
			revenue += inv.TotalAmount
		}
	}

	return &models.DashboardStats{
		TotalRevenue: billing.Round2(revenue),
		ClientCount:  clientCount,
		InvoiceCount: len(invoices),
		ProductCount: productCount,
	}, nil
}
