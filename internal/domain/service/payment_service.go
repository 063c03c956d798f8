package service

import "context"

// Payment method tags accepted by the storefront.
const (
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodCard     = "card"
	PaymentMethodUPI      = "upi"
)

// PaymentStatusCompleted is the status stamped on a successful charge.
const PaymentStatusCompleted = "completed"

// ChargeRequest describes a payment to collect before an order is placed.
type ChargeRequest struct {
	Method       string
	Amount       float64
	ProductName  string
	CustomerName string
	Email        string
	Phone        string
}

// ChargeResult carries the externally-obtained payment reference.
type ChargeResult struct {
	PaymentID string
	Status    string
}

// PaymentService collects payment for an order. The storefront ships with a
// simulator only; this is not a real payment integration.
type PaymentService interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
