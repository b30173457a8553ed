package services

import (
	"context"
	"testing"

	"dash-backend/internal/models"
	"dash-backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientDefaultsToActive(t *testing.T) {
	service := NewClientService(newFakeClientStore(), newFakeOrderStore())

	client, err := service.CreateClient(context.Background(), &models.CreateClientRequest{
		Name: "Acme Corp",
		CIN:  "CIN-1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ClientStatusActive, client.Status)
	assert.False(t, client.ID.IsZero())
}

func TestCreateClientValidation(t *testing.T) {
	service := NewClientService(newFakeClientStore(), newFakeOrderStore())
	ctx := context.Background()

	var ve *ValidationError

	_, err := service.CreateClient(ctx, &models.CreateClientRequest{})
	assert.ErrorAs(t, err, &ve)

	_, err = service.CreateClient(ctx, &models.CreateClientRequest{Name: "Acme", Status: "Suspended"})
	assert.ErrorAs(t, err, &ve)
}

func TestListClientsAttachesPendingCounts(t *testing.T) {
	clients := newFakeClientStore()
	orders := newFakeOrderStore()
	service := NewClientService(clients, orders)
	ctx := context.Background()

	acme := &models.Client{Name: "Acme", Status: models.ClientStatusActive}
	globex := &models.Client{Name: "Globex", Status: models.ClientStatusActive}
	require.NoError(t, clients.Create(ctx, acme))
	require.NoError(t, clients.Create(ctx, globex))

	require.NoError(t, orders.Create(ctx, &models.Order{ClientID: acme.ID.Hex(), Status: models.OrderStatusPending}))
	require.NoError(t, orders.Create(ctx, &models.Order{ClientID: acme.ID.Hex(), Status: models.OrderStatusPending}))
	require.NoError(t, orders.Create(ctx, &models.Order{ClientID: acme.ID.Hex(), Status: models.OrderStatusCompleted}))
	require.NoError(t, orders.Create(ctx, &models.Order{ClientID: globex.ID.Hex(), Status: models.OrderStatusCancelled}))

	views, err := service.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	counts := make(map[string]int, len(views))
	for _, v := range views {
		counts[v.Name] = v.PendingOrdersCount
	}
	assert.Equal(t, 2, counts["Acme"])
	assert.Equal(t, 0, counts["Globex"])
}

func TestListClientsManyClients(t *testing.T) {
	// More clients than fan-out workers; every view still gets its
	// count.
	clients := newFakeClientStore()
	orders := newFakeOrderStore()
	service := NewClientService(clients, orders)
	ctx := context.Background()

	for i := 0; i < 37; i++ {
		c := &models.Client{Name: "Client", Status: models.ClientStatusActive}
		require.NoError(t, clients.Create(ctx, c))
		require.NoError(t, orders.Create(ctx, &models.Order{ClientID: c.ID.Hex(), Status: models.OrderStatusPending}))
	}

	views, err := service.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, views, 37)
	for _, v := range views {
		assert.Equal(t, 1, v.PendingOrdersCount)
	}
}

func TestUpdateClient(t *testing.T) {
	clients := newFakeClientStore()
	service := NewClientService(clients, newFakeOrderStore())
	ctx := context.Background()

	created, err := service.CreateClient(ctx, &models.CreateClientRequest{Name: "Acme"})
	require.NoError(t, err)

	updated, err := service.UpdateClient(ctx, created.ID.Hex(), &models.UpdateClientRequest{
		Name:   "Acme Corp",
		Email:  "hello@acme.example",
		Status: models.ClientStatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, models.ClientStatusInactive, updated.Status)

	_, err = service.UpdateClient(ctx, "missing", &models.UpdateClientRequest{
		Name: "X", Status: models.ClientStatusActive,
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestClientOrders(t *testing.T) {
	clients := newFakeClientStore()
	orders := newFakeOrderStore()
	service := NewClientService(clients, orders)
	ctx := context.Background()

	acme := &models.Client{Name: "Acme", Status: models.ClientStatusActive}
	require.NoError(t, clients.Create(ctx, acme))
	require.NoError(t, orders.Create(ctx, &models.Order{ClientID: acme.ID.Hex(), Status: models.OrderStatusPending}))
	require.NoError(t, orders.Create(ctx, &models.Order{ClientID: "someone-else", Status: models.OrderStatusPending}))

	got, err := service.ClientOrders(ctx, acme.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
