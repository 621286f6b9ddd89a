package models

import "time"

type DeliveryStatus string
type PaymentStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "Pending"
	DeliveryStatusShipped   DeliveryStatus = "Shipped"
	DeliveryStatusDelivered DeliveryStatus = "Delivered"
	DeliveryStatusCancelled DeliveryStatus = "Cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	OrderRef       string         `gorm:"uniqueIndex" json:"order_ref"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	User           User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items          []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	TotalAmount    float64        `json:"total_amount"`
	DeliveryStatus DeliveryStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"delivery_status"`
	PaymentStatus  PaymentStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type OrderItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	OrderID         uint    `gorm:"index" json:"-"`
	ProductID       uint    `json:"product_id"`
	ProductName     string  `json:"product_name"`
	ProductImage    string  `json:"image"`
	Size            string  `json:"size"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

// CanTransition reports whether a delivery status change is allowed.
// Pending may ship or cancel, Shipped may deliver or cancel; Delivered
// and Cancelled are terminal.
func (s DeliveryStatus) CanTransition(to DeliveryStatus) bool {
	switch s {
	case DeliveryStatusPending:
		return to == DeliveryStatusShipped || to == DeliveryStatusCancelled
	case DeliveryStatusShipped:
		return to == DeliveryStatusDelivered || to == DeliveryStatusCancelled
	default:
		return false
	}
}
