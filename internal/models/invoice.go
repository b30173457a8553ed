package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invoice status values
const (
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusPending = "Pending"
	InvoiceStatusOverdue = "Overdue"
)

// InvoiceClient is the denormalized client snapshot stored on an
// invoice at creation time, so later client edits do not retroactively
// change issued documents.
type InvoiceClient struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Location string `bson:"location" json:"location"`
}

type Invoice struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InvoiceNumber string             `bson:"invoiceNumber" json:"invoiceNumber"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	ClientID      string             `bson:"clientId" json:"clientId"`
	ClientCIN     string             `bson:"clientCIN" json:"clientCIN"`
	Client        InvoiceClient      `bson:"client" json:"client"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	TaxRate       float64            `bson:"taxRate" json:"taxRate"`
	TaxAmount     float64            `bson:"taxAmount" json:"taxAmount"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	IssueDate     time.Time          `bson:"issueDate" json:"issueDate"`
	DueDate       time.Time          `bson:"dueDate" json:"dueDate"`
	Status        string             `bson:"status" json:"status"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UpdateInvoiceStatusRequest represents the request body for moving an
// invoice between Pending, Paid and Overdue.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

// DashboardStats is the headline aggregation for the dashboard page.
// Revenue counts Paid invoices only.
type DashboardStats struct {
	TotalRevenue float64 `json:"totalRevenue"`
	ClientCount  int     `json:"clientCount"`
	InvoiceCount int     `json:"invoiceCount"`
	ProductCount int     `json:"productCount"`
}
