package services

import (
	"context"
	"testing"

	"dash-backend/internal/models"
	"dash-backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateInvoiceStatus(t *testing.T) {
	invoices := newFakeInvoiceStore()
	service := NewInvoiceService(invoices)
	ctx := context.Background()

	inv := &models.Invoice{InvoiceNumber: "INV-00000001-001", Status: models.InvoiceStatusPending}
	require.NoError(t, invoices.Create(ctx, inv))

	updated, err := service.UpdateStatus(ctx, inv.ID.Hex(), models.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, updated.Status)

	// Back to Pending is allowed.
	updated, err = service.UpdateStatus(ctx, inv.ID.Hex(), models.InvoiceStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPending, updated.Status)

	var ve *ValidationError
	_, err = service.UpdateStatus(ctx, inv.ID.Hex(), "Refunded")
	assert.ErrorAs(t, err, &ve)

	_, err = service.UpdateStatus(ctx, "missing", models.InvoiceStatusPaid)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGetInvoiceByNumber(t *testing.T) {
	invoices := newFakeInvoiceStore()
	service := NewInvoiceService(invoices)
	ctx := context.Background()

	inv := &models.Invoice{InvoiceNumber: "INV-00000001-042", Status: models.InvoiceStatusPending}
	require.NoError(t, invoices.Create(ctx, inv))

	got, err := service.GetInvoiceByNumber(ctx, "INV-00000001-042")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)

	_, err = service.GetInvoiceByNumber(ctx, "INV-00000001-999")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
