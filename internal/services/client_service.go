package services

import (
	"context"
	"sync"

	"dash-backend/internal/models"
)

type ClientService struct {
	Clients ClientStore
	Orders  OrderStore
}

func NewClientService(clients ClientStore, orders OrderStore) *ClientService {
	return &ClientService{Clients: clients, Orders: orders}
}

// pendingCountWorkers bounds the fan-out of per-client order counts.
const pendingCountWorkers = 10

func (s *ClientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	if req.Name == "" {
		return nil, validationErrorf("client name is required")
	}

	status := req.Status
	if status == "" {
		status = models.ClientStatusActive
	}
	if status != models.ClientStatusActive && status != models.ClientStatusInactive {
		return nil, validationErrorf("invalid client status %q", status)
	}

	client := &models.Client{
		CIN:      req.CIN,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Status:   status,
	}

	if err := s.Clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return s.Clients.Get(ctx, id)
}

// ListClients returns every client with its pending-order count
// attached. The count is one query per client (N+1 by design at small
// N); the sub-queries are fanned out across a worker pool and joined
// before the list is returned.
func (s *ClientService) ListClients(ctx context.Context) ([]*models.ClientView, error) {
	clients, err := s.Clients.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*models.ClientView, len(clients))
	for i, c := range clients {
		views[i] = &models.ClientView{Client: *c}
	}

	type result struct {
		index int
		count int
		err   error
	}

	jobs := make(chan int, len(views))
	results := make(chan result, len(views))

	numWorkers := pendingCountWorkers
	if len(views) < numWorkers {
		numWorkers = len(views)
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				count, err := s.Orders.CountPending(ctx, views[idx].ID.Hex())
				results <- result{index: idx, count: count, err: err}
			}
		}()
	}

	for i := range views {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		if r.err != nil {
			return nil, r.err
		}
		views[r.index].PendingOrdersCount = r.count
	}

	return views, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id string, req *models.UpdateClientRequest) (*models.Client, error) {
	if req.Name == "" {
		return nil, validationErrorf("client name is required")
	}
	if req.Status != models.ClientStatusActive && req.Status != models.ClientStatusInactive {
		return nil, validationErrorf("invalid client status %q", req.Status)
	}

	client := &models.Client{
		CIN:      req.CIN,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Status:   req.Status,
	}

	if err := s.Clients.Update(ctx, id, client); err != nil {
		return nil, err
	}
	return s.Clients.Get(ctx, id)
}

// DeleteClient removes the client record only. Orders referencing it
// become orphaned; there is no cascade.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	return s.Clients.Delete(ctx, id)
}

// ClientOrders returns all orders for one client, newest first.
func (s *ClientService) ClientOrders(ctx context.Context, clientID string) ([]*models.Order, error) {
	return s.Orders.ListByClient(ctx, clientID)
}
