package models

import (
	"fmt"
	"time"
)

// OrderStatus values mirror the status column of the orders table.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderContacted OrderStatus = "contacted"
	OrderCompleted OrderStatus = "completed"
)

// ParseOrderStatus converts a raw string to an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	switch st {
	case OrderPending, OrderContacted, OrderCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

type ItemType string

const (
	ItemProduct ItemType = "product"
	ItemCustom  ItemType = "custom"
)

// OrderItem is one line of a custom order, kept in the order the customer added it.
type OrderItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name" validate:"required"`
	ImageURL string   `json:"image_url"`
	Quantity int      `json:"quantity" validate:"min=1"`
	Type     ItemType `json:"type" validate:"required,oneof=product custom"`
}

// OrderRequest represents a custom order row in the database. Items is stored
// as a JSONB column.
type OrderRequest struct {
	ID              string       `json:"id,omitempty"`
	CustomerName    string       `json:"customer_name" validate:"required"`
	PhoneNumber     string       `json:"phone_number" validate:"required"`
	Items           []OrderItem  `json:"items" validate:"required,min=1,dive"`
	NeededBy        string       `json:"needed_by" validate:"required,datetime=2006-01-02"`
	DeliveryType    DeliveryType `json:"delivery_type" validate:"required,oneof=pickup delivery"`
	DeliveryAddress *string      `json:"delivery_address,omitempty" validate:"required_if=DeliveryType delivery"`
	Notes           *string      `json:"notes,omitempty"`
	Status          OrderStatus  `json:"status"`
	CreatedAt       *time.Time   `json:"created_at,omitempty"`
}
