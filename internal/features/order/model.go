package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses
const (
	StatusPending    = "Pending"
	StatusInProgress = "In progress"
	StatusCompleted  = "Completed"
)

// Order is one customer purchase event. orderId and customerId are assigned by
// the ID generator at creation and are immutable afterwards; timestamps are
// store-assigned and never client-supplied.
type Order struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	OrderID    string             `json:"orderId" bson:"orderId"`
	CustomerID string             `json:"customerId" bson:"customerId"`

	FirstName     string `json:"firstName" bson:"firstName"`
	LastName      string `json:"lastName" bson:"lastName"`
	Email         string `json:"email" bson:"email"`
	PhoneNumber   string `json:"phoneNumber" bson:"phoneNumber"`
	StreetAddress string `json:"streetAddress" bson:"streetAddress"`
	City          string `json:"city" bson:"city"`
	State         string `json:"state" bson:"state"`
	PostalCode    string `json:"postalCode" bson:"postalCode"`
	Country       string `json:"country" bson:"country"`

	Product     string  `json:"product" bson:"product"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice"`
	TotalAmount float64 `json:"totalAmount" bson:"totalAmount"`

	Status    string `json:"status" bson:"status"`
	CreatedBy string `json:"createdBy" bson:"createdBy"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CreateOrderInput is the client-facing create payload. totalAmount is stored
// as supplied and is not recomputed from quantity × unitPrice.
type CreateOrderInput struct {
	CustomerID    string  `json:"customerId"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	PhoneNumber   string  `json:"phoneNumber"`
	StreetAddress string  `json:"streetAddress"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	PostalCode    string  `json:"postalCode"`
	Country       string  `json:"country"`
	Product       string  `json:"product"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	CreatedBy     string  `json:"createdBy"`
}
