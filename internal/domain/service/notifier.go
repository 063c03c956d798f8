// Package service defines the interfaces for domain services implemented by
// the infrastructure layer.
package service

import (
	"context"
)

// Event kinds emitted by the storefront.
const (
	EventProductAdded   = "product.added"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
	EventOrderPlaced    = "order.placed"
	EventAdminLogin     = "admin.login"
	EventAdminLogout    = "admin.logout"
)

// StorefrontEvent is a user-visible notification emitted after a storefront
// operation completes. Mutations emit their success event on both the remote
// and the fallback path; UsedFallback marks the degraded writes.
type StorefrontEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	Kind         string `json:"kind"`
	Message      string `json:"message"`
	ProductID    string `json:"product_id,omitempty"`
	OrderID      string `json:"order_id,omitempty"`
	UsedFallback bool   `json:"used_fallback,omitempty"`
}

// Notifier defines the interface for publishing storefront events. Publishing
// is best effort: a failed publish never fails the operation that emitted it.
type Notifier interface {
	// Publish emits a storefront event.
	Publish(ctx context.Context, event *StorefrontEvent) error

	// Close releases any resources held by the notifier.
	Close() error
}
