package services

import (
	"context"
	"strings"
	"testing"

	"dash-backend/internal/models"
	"dash-backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	clients  *fakeClientStore
	products *fakeProductStore
	orders   *fakeOrderStore
	service  *OrderService
}

func newOrderFixture() *orderFixture {
	clients := newFakeClientStore()
	products := newFakeProductStore()
	orders := newFakeOrderStore()
	return &orderFixture{
		clients:  clients,
		products: products,
		orders:   orders,
		service:  NewOrderService(orders, clients, products),
	}
}

func (fx *orderFixture) seedClient(t *testing.T) *models.Client {
	t.Helper()
	client := &models.Client{CIN: "CIN-1", Name: "Acme Corp", Status: models.ClientStatusActive}
	require.NoError(t, fx.clients.Create(context.Background(), client))
	return client
}

func (fx *orderFixture) seedProduct(t *testing.T, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Reference: strings.ToUpper(name[:3]) + "-1",
		Name:      name,
		Price:     &price,
		Stock:     stock,
		Status:    models.ProductStatusInStock,
	}
	require.NoError(t, fx.products.Create(context.Background(), product))
	return product
}

func TestCreateOrderSnapshotsProducts(t *testing.T) {
	fx := newOrderFixture()
	ctx := context.Background()
	client := fx.seedClient(t)
	widget := fx.seedProduct(t, "Widget", 100, 20)
	gadget := fx.seedProduct(t, "Gadget", 50, 20)

	order, err := fx.service.CreateOrder(ctx, &models.CreateOrderRequest{
		ClientID: client.ID.Hex(),
		Items: []models.CreateOrderItemRequest{
			{ProductID: widget.ID.Hex(), Quantity: 2},
			{ProductID: gadget.ID.Hex(), Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", order.ClientName)
	assert.Equal(t, "CIN-1", order.ClientCIN)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))

	require.Len(t, order.Items, 2)
	assert.Equal(t, "WID-1", order.Items[0].Reference)
	assert.Equal(t, "Widget", order.Items[0].Description)
	assert.Equal(t, 100.0, order.Items[0].UnitPrice)
	assert.Equal(t, 200.0, order.Items[0].TotalPrice)

	// Default 19% rate on a 250 subtotal.
	assert.Equal(t, 19.0, order.TaxRate)
	assert.Equal(t, 250.0, order.Subtotal)
	assert.Equal(t, 47.5, order.TaxAmount)
	assert.Equal(t, 297.5, order.TotalAmount)

	// Intake does not touch stock.
	stored, err := fx.products.Get(ctx, widget.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 20, stored.Stock)
}

func TestCreateOrderCustomNumberAndRate(t *testing.T) {
	fx := newOrderFixture()
	client := fx.seedClient(t)
	widget := fx.seedProduct(t, "Widget", 100, 20)

	rate := 0.0
	order, err := fx.service.CreateOrder(context.Background(), &models.CreateOrderRequest{
		ClientID:    client.ID.Hex(),
		OrderNumber: "PO-2026-17",
		TaxRate:     &rate,
		Items: []models.CreateOrderItemRequest{
			{ProductID: widget.ID.Hex(), Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "PO-2026-17", order.OrderNumber)
	assert.Equal(t, 0.0, order.TaxRate)
	assert.Equal(t, 100.0, order.TotalAmount)
}

func TestCreateOrderValidation(t *testing.T) {
	fx := newOrderFixture()
	ctx := context.Background()
	client := fx.seedClient(t)
	widget := fx.seedProduct(t, "Widget", 100, 3)

	var ve *ValidationError

	_, err := fx.service.CreateOrder(ctx, &models.CreateOrderRequest{
		Items: []models.CreateOrderItemRequest{{ProductID: widget.ID.Hex(), Quantity: 1}},
	})
	assert.ErrorAs(t, err, &ve)

	_, err = fx.service.CreateOrder(ctx, &models.CreateOrderRequest{
		ClientID: client.ID.Hex(),
	})
	assert.ErrorAs(t, err, &ve)

	_, err = fx.service.CreateOrder(ctx, &models.CreateOrderRequest{
		ClientID: client.ID.Hex(),
		Items:    []models.CreateOrderItemRequest{{ProductID: widget.ID.Hex(), Quantity: 0}},
	})
	assert.ErrorAs(t, err, &ve)

	// Insufficient stock names the product and the numbers.
	_, err = fx.service.CreateOrder(ctx, &models.CreateOrderRequest{
		ClientID: client.ID.Hex(),
		Items:    []models.CreateOrderItemRequest{{ProductID: widget.ID.Hex(), Quantity: 5}},
	})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, err.Error(), "Widget")
	assert.Contains(t, err.Error(), "5 requested, 3 available")
}

func TestCreateOrderUnknownReferences(t *testing.T) {
	fx := newOrderFixture()
	ctx := context.Background()
	client := fx.seedClient(t)

	_, err := fx.service.CreateOrder(ctx, &models.CreateOrderRequest{
		ClientID: "nope",
		Items:    []models.CreateOrderItemRequest{{ProductID: "x", Quantity: 1}},
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = fx.service.CreateOrder(ctx, &models.CreateOrderRequest{
		ClientID: client.ID.Hex(),
		Items:    []models.CreateOrderItemRequest{{ProductID: "missing", Quantity: 1}},
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
