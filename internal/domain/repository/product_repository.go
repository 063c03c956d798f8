// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"renteasy/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product document does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrRemoteUnavailable is returned when the document store cannot be reached.
	ErrRemoteUnavailable = errors.New("document store unavailable")
)

// ProductRepository is the contract against the remote document store's
// product collection. Every call is fallible; callers own the fallback
// behavior. The store is authoritative only while reachable.
type ProductRepository interface {
	// ListAll retrieves every product in the collection.
	ListAll(ctx context.Context) ([]entity.Product, error)

	// Insert stores a new product and returns the store-issued document id.
	Insert(ctx context.Context, draft entity.ProductDraft) (string, error)

	// Patch updates only the listed fields of an existing document.
	Patch(ctx context.Context, id string, fields entity.ProductFields) error

	// Remove deletes the document with the given id. Removing a missing
	// document is not an error.
	Remove(ctx context.Context, id string) error
}
