package services

import (
	"context"
	"errors"
	"fmt"

	"dash-backend/internal/models"
)

// Store interfaces abstract the per-collection document gateway. The
// mongo repositories are the production implementations; tests use
// in-memory fakes.

type ClientStore interface {
	Create(ctx context.Context, client *models.Client) error
	Get(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
	Update(ctx context.Context, id string, client *models.Client) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	Get(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	Update(ctx context.Context, id string, product *models.Product) error
	UpdateInventory(ctx context.Context, id string, stock, sales int, status string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	ListByClient(ctx context.Context, clientID string) ([]*models.Order, error)
	CountPending(ctx context.Context, clientID string) (int, error)
	MarkCompleted(ctx context.Context, id, invoiceID string) error
}

type InvoiceStore interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	Get(ctx context.Context, id string) (*models.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*models.Invoice, error)
	List(ctx context.Context) ([]*models.Invoice, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Count(ctx context.Context) (int, error)
}

// ErrOrderNotPending is returned when fulfillment is requested for an
// order that is not in the Pending state (including one already
// fulfilled).
var ErrOrderNotPending = errors.New("order is not pending")

// ErrFulfillmentInFlight is returned when a fulfillment for the same
// order is already running in this process.
var ErrFulfillmentInFlight = errors.New("order fulfillment already in progress")

// ValidationError marks input problems caught before any store write.
// Handlers map it to a 400 response.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
