package services

import (
	"strings"

	"dash-backend/internal/models"
)

// FilterAll is the pass-through value for status filters.
const FilterAll = "All"

// FilterPendingOrders selects clients with at least one pending order.
const FilterPendingOrders = "PendingOrders"

// FilterClients applies the list pipeline for clients: status filter,
// case-insensitive substring search over the searchable fields, then a
// stable pending-first ordering. Clients with pending orders always
// come first, keeping their relative order; there is no secondary sort.
func FilterClients(clients []*models.ClientView, status, query string) []*models.ClientView {
	result := make([]*models.ClientView, 0, len(clients))
	for _, c := range clients {
		switch status {
		case "", FilterAll:
		case FilterPendingOrders:
			if c.PendingOrdersCount <= 0 {
				continue
			}
		default:
			if c.Status != status {
				continue
			}
		}
		if !matchesQuery(query, c.Name, c.CIN, c.Email, c.Phone, c.Location) {
			continue
		}
		result = append(result, c)
	}

	// Stable partition: pending first, original order within each group.
	sorted := make([]*models.ClientView, 0, len(result))
	for _, c := range result {
		if c.PendingOrdersCount > 0 {
			sorted = append(sorted, c)
		}
	}
	for _, c := range result {
		if c.PendingOrdersCount <= 0 {
			sorted = append(sorted, c)
		}
	}
	return sorted
}

// FilterProducts applies the list pipeline for products: status filter
// and search. Product order is preserved as stored.
func FilterProducts(products []*models.Product, status, query string) []*models.Product {
	result := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if status != "" && status != FilterAll && p.Status != status {
			continue
		}
		if !matchesQuery(query, p.Name, p.Reference) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchesQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join(fields, " "))
	return strings.Contains(haystack, q)
}
