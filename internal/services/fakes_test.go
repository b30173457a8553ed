package services

import (
	"context"
	"sync"

	"dash-backend/internal/models"
	"dash-backend/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory store fakes backing the service tests. They mimic the
// mongo repositories: generated ObjectIDs, copies on read, ErrNotFound
// for unknown or malformed IDs.

type fakeClientStore struct {
	mu      sync.Mutex
	clients map[string]*models.Client
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: make(map[string]*models.Client)}
}

func (f *fakeClientStore) Create(ctx context.Context, client *models.Client) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	client.ID = primitive.NewObjectID()
	cp := *client
	f.clients[client.ID.Hex()] = &cp
	return nil
}

func (f *fakeClientStore) Get(ctx context.Context, id string) (*models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.clients[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientStore) List(ctx context.Context) ([]*models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Client, 0, len(f.clients))
	for _, c := range f.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeClientStore) Update(ctx context.Context, id string, client *models.Client) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.clients[id]
	if !ok {
		return repositories.ErrNotFound
	}
	existing.CIN = client.CIN
	existing.Name = client.Name
	existing.Email = client.Email
	existing.Phone = client.Phone
	existing.Location = client.Location
	existing.Status = client.Status
	return nil
}

func (f *fakeClientStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clients[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.clients, id)
	return nil
}

func (f *fakeClientStore) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients), nil
}

type fakeProductStore struct {
	mu       sync.Mutex
	products map[string]*models.Product

	inventoryErr error // when set, UpdateInventory fails
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[string]*models.Product)}
}

func (f *fakeProductStore) Create(ctx context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	product.ID = primitive.NewObjectID()
	cp := *product
	f.products[product.ID.Hex()] = &cp
	return nil
}

func (f *fakeProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductStore) List(ctx context.Context) ([]*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Product, 0, len(f.products))
	for _, p := range f.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductStore) Update(ctx context.Context, id string, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.products[id]
	if !ok {
		return repositories.ErrNotFound
	}
	id2 := existing.ID
	sales := existing.Sales
	*existing = *product
	existing.ID = id2
	existing.Sales = sales
	return nil
}

func (f *fakeProductStore) UpdateInventory(ctx context.Context, id string, stock, sales int, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inventoryErr != nil {
		return f.inventoryErr
	}
	p, ok := f.products[id]
	if !ok {
		return repositories.ErrNotFound
	}
	p.Stock = stock
	p.Sales = sales
	p.Status = status
	return nil
}

func (f *fakeProductStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductStore) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.products), nil
}

type fakeOrderStore struct {
	mu     sync.Mutex
	orders map[string]*models.Order

	markCompletedErr error // when set, MarkCompleted fails
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]*models.Order)}
}

func (f *fakeOrderStore) Create(ctx context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.ID = primitive.NewObjectID()
	cp := *order
	f.orders[order.ID.Hex()] = &cp
	return nil
}

func (f *fakeOrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderStore) List(ctx context.Context) ([]*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOrderStore) ListByClient(ctx context.Context, clientID string) ([]*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Order
	for _, o := range f.orders {
		if o.ClientID == clientID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) CountPending(ctx context.Context, clientID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, o := range f.orders {
		if o.ClientID == clientID && o.Status == models.OrderStatusPending {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderStore) MarkCompleted(ctx context.Context, id, invoiceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markCompletedErr != nil {
		return f.markCompletedErr
	}
	o, ok := f.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	o.Status = models.OrderStatusCompleted
	o.InvoiceID = invoiceID
	return nil
}

type fakeInvoiceStore struct {
	mu       sync.Mutex
	invoices map[string]*models.Invoice
}

func newFakeInvoiceStore() *fakeInvoiceStore {
	return &fakeInvoiceStore{invoices: make(map[string]*models.Invoice)}
}

func (f *fakeInvoiceStore) Create(ctx context.Context, invoice *models.Invoice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	invoice.ID = primitive.NewObjectID()
	cp := *invoice
	f.invoices[invoice.ID.Hex()] = &cp
	return nil
}

func (f *fakeInvoiceStore) Get(ctx context.Context, id string) (*models.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invoices[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceStore) GetByNumber(ctx context.Context, number string) (*models.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, inv := range f.invoices {
		if inv.InvoiceNumber == number {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeInvoiceStore) List(ctx context.Context) ([]*models.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeInvoiceStore) UpdateStatus(ctx context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, ok := f.invoices[id]
	if !ok {
		return repositories.ErrNotFound
	}
	inv.Status = status
	return nil
}

func (f *fakeInvoiceStore) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.invoices), nil
}
