package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer order with its line items and both addresses folded in.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	CustomerCode    string      `json:"customerCode"`
	CustomerName    string      `json:"customerName"`
	OrderDate       time.Time   `json:"orderDate"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `json:"status"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	BillingAddress  Address     `json:"billingAddress"`
	Notes           *string     `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderItem stores TotalPrice as recorded; it is not recomputed from
// Quantity and UnitPrice.
type OrderItem struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	OrderID     uuid.UUID  `json:"orderId" db:"order_id"`
	ProductID   *uuid.UUID `json:"productId,omitempty" db:"product_id"`
	ProductName string     `json:"productName" db:"product_name"`
	ProductSKU  string     `json:"productSku" db:"product_sku"`
	Quantity    int        `json:"quantity" db:"quantity"`
	UnitPrice   float64    `json:"unitPrice" db:"unit_price"`
	TotalPrice  float64    `json:"totalPrice" db:"total_price"`
}

// Address is a value object without identity of its own.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}
