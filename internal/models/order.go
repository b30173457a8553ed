package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Only Pending orders can be fulfilled.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

// DefaultTaxRate is the tax percentage applied when order intake does
// not specify one.
const DefaultTaxRate = 19.0

// OrderItem is a line item embedded in an Order or Invoice. Reference,
// description and unit price are snapshots taken from the product at
// order time; later product edits do not change them.
type OrderItem struct {
	ProductID   string  `bson:"productId" json:"productId"`
	Reference   string  `bson:"reference" json:"reference"`
	Description string  `bson:"description" json:"description"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unitPrice" json:"unitPrice"`
	TotalPrice  float64 `bson:"totalPrice" json:"totalPrice"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID    string             `bson:"clientId" json:"clientId"`
	ClientCIN   string             `bson:"clientCIN" json:"clientCIN"`
	ClientName  string             `bson:"clientName" json:"clientName"`
	OrderNumber string             `bson:"orderNumber" json:"orderNumber"`
	Items       []OrderItem        `bson:"items" json:"items"`
	Subtotal    float64            `bson:"subtotal" json:"subtotal"`
	TaxRate     float64            `bson:"taxRate" json:"taxRate"` // whole percent, e.g. 19
	TaxAmount   float64            `bson:"taxAmount" json:"taxAmount"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	Status      string             `bson:"status" json:"status"`
	InvoiceID   string             `bson:"invoiceId,omitempty" json:"invoiceId,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateOrderItemRequest selects a product and quantity; the snapshot
// fields are filled in from the current product record.
type CreateOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	ClientID    string                   `json:"clientId"`
	OrderNumber string                   `json:"orderNumber"`
	Items       []CreateOrderItemRequest `json:"items"`
	TaxRate     *float64                 `json:"taxRate"`
}
