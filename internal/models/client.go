package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client status values
const (
	ClientStatusActive   = "Active"
	ClientStatusInactive = "Inactive"
)

type Client struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CIN       string             `bson:"cin" json:"cin"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Location  string             `bson:"location" json:"location"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ClientView is a Client with the derived pending-order count attached
// at read time. The count is never stored.
type ClientView struct {
	Client
	PendingOrdersCount int `json:"pendingOrdersCount"`
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	CIN      string `json:"cin"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// UpdateClientRequest represents the request body for updating a client
type UpdateClientRequest struct {
	CIN      string `json:"cin"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Status   string `json:"status"`
}
