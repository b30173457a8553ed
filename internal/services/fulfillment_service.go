package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"dash-backend/internal/billing"
	"dash-backend/internal/cache"
	"dash-backend/internal/models"
	"dash-backend/internal/repositories"
	"dash-backend/internal/timeutil"
)

// InvoiceRenderer turns an invoice into a printable document.
type InvoiceRenderer interface {
	Render(invoice *models.Invoice) ([]byte, error)
}

// Archiver stores a rendered document under a key in remote storage.
type Archiver interface {
	Store(ctx context.Context, key string, data []byte) error
}

// FulfillmentService runs the order-to-invoice workflow. The steps are
// not atomic: the invoice write and the order completion are the
// critical path, stock updates and document rendering are best-effort
// follow-ups. A crash between steps can leave an invoice without a
// completed order; there is no compensation logic.
type FulfillmentService struct {
	Orders   OrderStore
	Clients  ClientStore
	Products ProductStore
	Invoices InvoiceStore
	Renderer InvoiceRenderer // optional
	Archive  Archiver        // optional

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewFulfillmentService(orders OrderStore, clients ClientStore, products ProductStore, invoices InvoiceStore) *FulfillmentService {
	return &FulfillmentService{
		Orders:   orders,
		Clients:  clients,
		Products: products,
		Invoices: invoices,
		inFlight: make(map[string]bool),
	}
}

// Fulfill creates an invoice for a Pending order, marks the order
// Completed and updates product stock and sales counters. It returns
// the created invoice. Concurrent calls for the same order in the same
// process are rejected with ErrFulfillmentInFlight; the guard does not
// extend across processes.
func (s *FulfillmentService) Fulfill(ctx context.Context, orderID string) (*models.Invoice, error) {
	if !s.acquire(orderID) {
		return nil, ErrFulfillmentInFlight
	}
	defer s.release(orderID)

	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrOrderNotPending
	}

	invoice, err := s.buildInvoice(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := s.Invoices.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	if err := s.Orders.MarkCompleted(ctx, orderID, invoice.ID.Hex()); err != nil {
		// The invoice already exists at this point. Surface the error
		// so the caller can retry completion by hand.
		return nil, fmt.Errorf("invoice %s created but order not completed: %w", invoice.InvoiceNumber, err)
	}

	s.updateInventory(ctx, order)

	if s.Renderer != nil {
		go s.renderAndArchive(invoice)
	}

	cache.InvalidateStats(ctx)

	log.Printf("[Fulfillment] Order %s completed, invoice %s", order.OrderNumber, invoice.InvoiceNumber)
	return invoice, nil
}

// buildInvoice snapshots the order totals and the client's current
// contact details into a new Pending invoice. The order's stored
// amounts are trusted as-is; totals are not recomputed.
func (s *FulfillmentService) buildInvoice(ctx context.Context, order *models.Order) (*models.Invoice, error) {
	clientSnap := models.InvoiceClient{Name: order.ClientName}
	client, err := s.Clients.Get(ctx, order.ClientID)
	switch {
	case err == nil:
		clientSnap = models.InvoiceClient{
			Name:     client.Name,
			Email:    client.Email,
			Phone:    client.Phone,
			Location: client.Location,
		}
	case errors.Is(err, repositories.ErrNotFound):
		// Client deleted since intake; keep the name stored on the order.
	default:
		return nil, err
	}

	now := timeutil.Now()
	return &models.Invoice{
		InvoiceNumber: billing.NewInvoiceNumber(),
		OrderID:       order.ID.Hex(),
		ClientID:      order.ClientID,
		ClientCIN:     order.ClientCIN,
		Client:        clientSnap,
		Items:         order.Items,
		Subtotal:      order.Subtotal,
		TaxRate:       order.TaxRate,
		TaxAmount:     order.TaxAmount,
		TotalAmount:   order.TotalAmount,
		IssueDate:     now,
		DueDate:       timeutil.DueDate(now),
		Status:        models.InvoiceStatusPending,
		Notes:         fmt.Sprintf("Generated from Order #%s", order.OrderNumber),
	}, nil
}

// updateInventory applies the stock decrement and sales increment for
// every line item concurrently. Failures are logged and skipped: an
// inventory miss must not fail a fulfillment that already produced an
// invoice. Stock can go negative when concurrent orders oversell.
func (s *FulfillmentService) updateInventory(ctx context.Context, order *models.Order) {
	var wg sync.WaitGroup
	for _, item := range order.Items {
		wg.Add(1)
		go func(item models.OrderItem) {
			defer wg.Done()

			product, err := s.Products.Get(ctx, item.ProductID)
			if err != nil {
				log.Printf("[Fulfillment] Skipping stock update for %s: %v", item.ProductID, err)
				return
			}

			newStock := product.Stock - item.Quantity
			newSales := product.Sales + item.Quantity
			status := NextProductStatus(product.Status, newStock)

			if err := s.Products.UpdateInventory(ctx, item.ProductID, newStock, newSales, status); err != nil {
				log.Printf("[Fulfillment] Stock update failed for %s: %v", item.ProductID, err)
			}
		}(item)
	}
	wg.Wait()
}

// renderAndArchive produces the PDF in the background and, when an
// archive is configured, uploads it. Fulfillment has already
// succeeded; any failure here is only logged.
func (s *FulfillmentService) renderAndArchive(invoice *models.Invoice) {
	data, err := s.Renderer.Render(invoice)
	if err != nil {
		log.Printf("[Fulfillment] PDF render failed for %s: %v", invoice.InvoiceNumber, err)
		return
	}

	if s.Archive == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := fmt.Sprintf("invoices/%s.pdf", invoice.InvoiceNumber)
	if err := s.Archive.Store(ctx, key, data); err != nil {
		log.Printf("[Fulfillment] Archive upload failed for %s: %v", invoice.InvoiceNumber, err)
		return
	}
	log.Printf("[Fulfillment] Archived %s", key)
}

func (s *FulfillmentService) acquire(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[orderID] {
		return false
	}
	s.inFlight[orderID] = true
	return true
}

func (s *FulfillmentService) release(orderID string) {
	s.mu.Lock()
	delete(s.inFlight, orderID)
	s.mu.Unlock()
}
