// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"renteasy/internal/domain/entity"
)

// MutationReceipt reports how a catalog mutation was persisted. Mutations
// always succeed from the caller's point of view; UsedFallback is true when
// the remote write failed and only the local mirror holds the change.
type MutationReceipt struct {
	UsedFallback bool `json:"usedFallback"`
}

// CatalogUsecase manages the product catalog: remote-first persistence with
// an unconditional local mirror fallback.
type CatalogUsecase interface {
	// LoadProducts populates the in-memory catalog: from the document store
	// when reachable and non-empty, from the local mirror when the store is
	// unreachable, and from the built-in seed catalog when both are empty.
	// Remote failure is downgraded to a diagnostic; the call itself only
	// fails on a broken local mirror.
	LoadProducts(ctx context.Context) error

	// AddProduct inserts a new product. The id comes from the document store
	// when the insert succeeds, or is derived from the current time when it
	// does not; either way the product is appended and the mirror rewritten.
	AddProduct(ctx context.Context, draft entity.ProductDraft) (entity.Product, MutationReceipt, error)

	// UpdateProduct patches the listed fields remotely and replaces the
	// in-memory record wholesale with {id, fields}, dropping any field not
	// listed. Updating an unknown id leaves the catalog unchanged.
	UpdateProduct(ctx context.Context, id string, fields entity.ProductFields) (entity.Product, MutationReceipt, error)

	// DeleteProduct removes the product remotely and locally. Deleting an
	// unknown id is a no-op.
	DeleteProduct(ctx context.Context, id string) (MutationReceipt, error)

	// Products returns a snapshot of the current catalog.
	Products() []entity.Product

	// ProductByID looks a product up in the in-memory catalog.
	ProductByID(id string) (entity.Product, error)

	// Loading reports whether LoadProducts is in flight.
	Loading() bool
}
