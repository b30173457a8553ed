package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product status values. Status is recomputed from stock by the
// fulfillment workflow but remains freely editable, so the two can
// disagree after a manual edit.
const (
	ProductStatusInStock      = "In Stock"
	ProductStatusLowStock     = "Low Stock"
	ProductStatusOutOfStock   = "Out of Stock"
	ProductStatusArrivingSoon = "Arriving Soon"
)

// LowStockThreshold is the stock level at or below which a product is
// flagged Low Stock by the fulfillment workflow.
const LowStockThreshold = 10

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference     string             `bson:"reference" json:"reference"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Features      []string           `bson:"features,omitempty" json:"features,omitempty"`
	Price         *float64           `bson:"price" json:"price"`
	OriginalPrice *float64           `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Stock         int                `bson:"stock" json:"stock"`
	Status        string             `bson:"status" json:"status"`
	Sales         int                `bson:"sales" json:"sales"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Reference     string   `json:"reference"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Stock         *int     `json:"stock"`
	Status        string   `json:"status"`
	Image         string   `json:"image"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Reference     string   `json:"reference"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Stock         *int     `json:"stock"`
	Status        string   `json:"status"`
	Image         string   `json:"image"`
}

// ProductStats is the catalog aggregation shown on the products page.
type ProductStats struct {
	TotalProducts  int     `json:"totalProducts"`
	InventoryValue float64 `json:"inventoryValue"`
	LowStockCount  int     `json:"lowStockCount"`
	TotalSales     int     `json:"totalSales"`
}
