package models

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCompleted  OrderStatus = "Completed" // walk-in orders, created fulfilled
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// Order is a purchase of one or more products. Creating an order decrements
// product stock for each line item; cancelling restores it. Totals are
// always computed server-side from the line items.
type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	OrderNumber   string        `json:"order_number" gorm:"size:50;uniqueIndex;not null"`
	UserID        *uint         `json:"user_id" gorm:"index"` // nil for walk-in orders
	CustomerName  string        `json:"customer_name" gorm:"size:255"`
	CustomerPhone string        `json:"customer_phone" gorm:"size:20"`
	TotalAmount   float64       `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	Status        OrderStatus   `json:"status" gorm:"type:varchar(20);not null;default:'Pending';check:status IN ('Pending','Processing','Shipped','Delivered','Completed','Cancelled')"`
	PaymentMethod string        `json:"payment_method" gorm:"size:50;not null"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	User  *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem is one product line of an order. Price and discount are
// snapshotted from the product at creation time.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Discount  float64 `json:"discount" gorm:"type:decimal(5,2);default:0"` // percent
	Subtotal  float64 `json:"subtotal" gorm:"type:decimal(12,2);not null"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// OrderCounter backs human-readable order numbers. One row per day key,
// incremented atomically so concurrent creation cannot duplicate numbers.
type OrderCounter struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Key   string `json:"key" gorm:"size:20;uniqueIndex;not null"` // e.g. "ORD-250828"
	Value int64  `json:"value" gorm:"not null;default:0"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// TableName specifies the table name for the OrderCounter model
func (OrderCounter) TableName() string {
	return "order_counters"
}

// IsTerminal reports whether no further transition is permitted
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// IsCancellable reports whether an order in this status may still be
// cancelled. Delivered orders are final even though Delivered itself is
// not a terminal status for bookkeeping.
func (s OrderStatus) IsCancellable() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled:
		return false
	default:
		return true
	}
}

// CanTransitionTo validates a forward move through the order state machine
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || s == OrderStatusDelivered {
		return false
	}
	switch next {
	case OrderStatusCancelled:
		return s.IsCancellable()
	case OrderStatusProcessing:
		return s == OrderStatusPending
	case OrderStatusShipped:
		return s == OrderStatusProcessing
	case OrderStatusDelivered:
		return s == OrderStatusShipped
	default:
		return false
	}
}

// IsValidOrderStatus checks a status string against the known set
func IsValidOrderStatus(status OrderStatus) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// ItemTotal computes one line's contribution to the order total
func ItemTotal(price, discount float64, quantity int) float64 {
	return price * (1 - discount/100) * float64(quantity)
}

// OrderItemRequest represents one line of an order creation request.
// Prices are never taken from the client.
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// OrderRequest represents the request structure for creating an order
type OrderRequest struct {
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
}

// BillRequest represents the admin walk-in (point-of-sale) order variant
type BillRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerPhone string             `json:"customer_phone"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
}
