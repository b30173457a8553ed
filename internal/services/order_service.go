package services

import (
	"context"

	"dash-backend/internal/billing"
	"dash-backend/internal/models"
)

type OrderService struct {
	Orders   OrderStore
	Clients  ClientStore
	Products ProductStore
}

func NewOrderService(orders OrderStore, clients ClientStore, products ProductStore) *OrderService {
	return &OrderService{Orders: orders, Clients: clients, Products: products}
}

// CreateOrder validates the intake request, snapshots product data
// into line items, computes totals and persists the order as Pending.
// Stock is checked but NOT reserved here; it is only decremented at
// fulfillment.
func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if req.ClientID == "" {
		return nil, validationErrorf("clientId is required")
	}
	if len(req.Items) == 0 {
		return nil, validationErrorf("order must contain at least one item")
	}

	client, err := s.Clients.Get(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for i, ir := range req.Items {
		if ir.ProductID == "" {
			return nil, validationErrorf("item %d: productId is required", i+1)
		}
		if ir.Quantity <= 0 {
			return nil, validationErrorf("item %d: quantity must be positive", i+1)
		}

		product, err := s.Products.Get(ctx, ir.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < ir.Quantity {
			return nil, validationErrorf("insufficient stock for %s: %d requested, %d available",
				product.Name, ir.Quantity, product.Stock)
		}

		var unitPrice float64
		if product.Price != nil {
			unitPrice = *product.Price
		}
		items = append(items, models.OrderItem{
			ProductID:   ir.ProductID,
			Reference:   product.Reference,
			Description: product.Name,
			Quantity:    ir.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  billing.Round2(float64(ir.Quantity) * unitPrice),
		})
	}

	taxRate := models.DefaultTaxRate
	if req.TaxRate != nil {
		if *req.TaxRate < 0 {
			return nil, validationErrorf("taxRate cannot be negative")
		}
		taxRate = *req.TaxRate
	}

	orderNumber := req.OrderNumber
	if orderNumber == "" {
		orderNumber = billing.NewOrderNumber()
	}

	totals := billing.CalculateTotals(items, taxRate/100)

	order := &models.Order{
		ClientID:    req.ClientID,
		ClientCIN:   client.CIN,
		ClientName:  client.Name,
		OrderNumber: orderNumber,
		Items:       items,
		Subtotal:    totals.Subtotal,
		TaxRate:     taxRate,
		TaxAmount:   totals.TaxAmount,
		TotalAmount: totals.TotalAmount,
		Status:      models.OrderStatusPending,
	}

	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.Orders.Get(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return s.Orders.List(ctx)
}
