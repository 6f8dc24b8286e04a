package models

import (
	"time"

	"gorm.io/gorm"
)

// Order status lifecycle. Orders are created as StatusReceived; transitions
// happen through OrderService.UpdateStatus.
const (
	StatusReceived       = "RECEIVED"
	StatusPreparing      = "PREPARING"
	StatusReadyForPickup = "READY_FOR_PICKUP"
	StatusCompleted      = "COMPLETED"
	StatusCancelled      = "CANCELLED"
)

// OrderStatuses lists every valid status value.
var OrderStatuses = []string{
	StatusReceived, StatusPreparing, StatusReadyForPickup, StatusCompleted, StatusCancelled,
}

// Order is a pickup order. It is created atomically with all its Items in
// one transaction; the two never partially exist.
type Order struct {
	gorm.Model
	StoreID          uint        `gorm:"not null;index" json:"store_id"`
	OrderCode        string      `gorm:"uniqueIndex;size:20;not null" json:"order_code"`
	CustomerName     string      `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone    string      `gorm:"size:32;not null" json:"customer_phone"`
	PickupTime       time.Time   `gorm:"not null" json:"pickup_time"`
	Status           string      `gorm:"size:20;not null;default:RECEIVED" json:"status"`
	TotalAmountGross int64       `gorm:"not null;default:0" json:"total_amount_gross"`
	Items            []OrderItem `json:"items"`
}

// OrderItem is one line of an order. Name and PriceAtOrder are snapshots
// captured at the moment of the stock decrement, so later catalog changes
// never alter historical totals.
type OrderItem struct {
	gorm.Model
	OrderID      uint   `gorm:"not null;index" json:"order_id"`
	ProductID    uint   `gorm:"not null;index" json:"product_id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Quantity     int    `gorm:"not null" json:"quantity"`
	PriceAtOrder int64  `gorm:"not null" json:"price_at_order"`
}
