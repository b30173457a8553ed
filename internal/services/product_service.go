package services

import (
	"context"
	"strings"

	"dash-backend/internal/models"
)

const (
	maxReferenceLen   = 50
	maxDescriptionLen = 500
	maxFeatureLen     = 50
)

type ProductService struct {
	Products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{Products: products}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Reference:     sanitizeReference(req.Reference),
		Name:          strings.TrimSpace(req.Name),
		Description:   truncate(strings.TrimSpace(req.Description), maxDescriptionLen),
		Features:      sanitizeFeatures(req.Features),
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Status:        req.Status,
		Image:         req.Image,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if product.Status == "" {
		product.Status = models.ProductStatusInStock
	}

	if err := s.validate(product); err != nil {
		return nil, err
	}
	if err := s.Products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.Products.Get(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.Products.List(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	current, err := s.Products.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Reference:     sanitizeReference(req.Reference),
		Name:          strings.TrimSpace(req.Name),
		Description:   truncate(strings.TrimSpace(req.Description), maxDescriptionLen),
		Features:      sanitizeFeatures(req.Features),
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Stock:         current.Stock,
		Status:        req.Status,
		Image:         req.Image,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if product.Status == "" {
		product.Status = current.Status
	}

	if err := s.validate(product); err != nil {
		return nil, err
	}
	if err := s.Products.Update(ctx, id, product); err != nil {
		return nil, err
	}
	return s.Products.Get(ctx, id)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.Products.Delete(ctx, id)
}

// Stats aggregates the whole catalog in one list pass. Inventory value
// is price times stock for priced products; unpriced products count as
// zero. The low-stock count goes by status (Low Stock or Out of Stock),
// not by the stock number, so manually flagged products are included.
func (s *ProductService) Stats(ctx context.Context) (*models.ProductStats, error) {
	products, err := s.Products.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.ProductStats{TotalProducts: len(products)}
	for _, p := range products {
		if p.Price != nil {
			stats.InventoryValue += *p.Price * float64(p.Stock)
		}
		if p.Status == models.ProductStatusLowStock || p.Status == models.ProductStatusOutOfStock {
			stats.LowStockCount++
		}
		stats.TotalSales += p.Sales
	}
	return stats, nil
}

func (s *ProductService) validate(p *models.Product) error {
	if p.Name == "" {
		return validationErrorf("product name is required")
	}
	if p.Price != nil && *p.Price < 0 {
		return validationErrorf("product price cannot be negative")
	}
	if p.Stock < 0 {
		return validationErrorf("product stock cannot be negative")
	}
	switch p.Status {
	case models.ProductStatusInStock, models.ProductStatusLowStock,
		models.ProductStatusOutOfStock, models.ProductStatusArrivingSoon:
	default:
		return validationErrorf("invalid product status %q", p.Status)
	}
	return nil
}

// sanitizeReference normalizes the free-text SKU: trimmed, uppercased,
// capped at 50 characters.
func sanitizeReference(ref string) string {
	return truncate(strings.ToUpper(strings.TrimSpace(ref)), maxReferenceLen)
}

// sanitizeFeatures trims, drops empties and duplicates, and caps each
// entry. Order of first occurrence is preserved.
func sanitizeFeatures(features []string) []string {
	if len(features) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(features))
	out := make([]string, 0, len(features))
	for _, f := range features {
		f = truncate(strings.TrimSpace(f), maxFeatureLen)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// truncate caps s at max characters, counting runes so that a
// multi-byte character is never cut in half at the boundary.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// NextProductStatus derives the status written back after stock moves.
// Arriving Soon is sticky: an inbound shipment marker is never
// downgraded to Low Stock by a sale.
func NextProductStatus(current string, newStock int) string {
	if newStock <= 0 {
		return models.ProductStatusOutOfStock
	}
	if newStock <= models.LowStockThreshold && current != models.ProductStatusArrivingSoon {
		return models.ProductStatusLowStock
	}
	return current
}
