package entity

import "time"

// OrderStatus tracks an order through its lifecycle. Orders in this system
// are append-only, so in practice every stored order is pending.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// OrderProduct is the product snapshot embedded in an order. It captures the
// product as it was at booking time; later catalog edits do not touch it.
type OrderProduct struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

// Customer holds the renter's contact details. Address is the composed
// street/city/pincode string.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Rental holds the booking terms. TotalPrice must equal Price × Days at
// creation time; it is never recomputed afterwards.
type Rental struct {
	Days       int     `json:"days"`
	StartDate  string  `json:"startDate"`
	TotalPrice float64 `json:"totalPrice"`
}

// Payment records the simulated payment outcome attached to the order.
type Payment struct {
	Method    string `json:"method"`
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

// Order is a completed booking. The ID is a timestamp-derived string
// generated locally; the document store never issues order identities.
// Orders are never mutated or deleted within this system.
type Order struct {
	ID        string       `json:"id"`
	Product   OrderProduct `json:"product"`
	Customer  Customer     `json:"customer"`
	Rental    Rental       `json:"rental"`
	Payment   Payment      `json:"payment"`
	Status    OrderStatus  `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// OrderDraft is an order before the store stamps identity, status and
// creation time.
type OrderDraft struct {
	Product  OrderProduct `json:"product"`
	Customer Customer     `json:"customer"`
	Rental   Rental       `json:"rental"`
	Payment  Payment      `json:"payment"`
}
