// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	domainerrors "renteasy/internal/domain/errors"
	"renteasy/internal/domain/entity"
	"renteasy/internal/domain/repository"
	"renteasy/internal/domain/service"
	"renteasy/internal/errors"
	"renteasy/internal/store"
	"renteasy/internal/usecase"
)

type catalogService struct {
	state    *store.Store
	remote   repository.ProductRepository
	mirror   repository.MirrorStore
	notifier service.Notifier
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service instance. The remote
// repository may be nil, in which case every operation takes the fallback
// path against the local mirror.
func NewCatalogService(
	state *store.Store,
	remote repository.ProductRepository,
	mirror repository.MirrorStore,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		state:    state,
		remote:   remote,
		mirror:   mirror,
		notifier: notifier,
		logger:   logger,
	}
}

// LoadProducts populates the catalog: document store first, local mirror on
// failure, seed catalog when both are empty.
func (s *catalogService) LoadProducts(ctx context.Context) error {
	s.state.Dispatch(store.SetLoading{Loading: true})
	defer s.state.Dispatch(store.SetLoading{Loading: false})

	products, err := s.listRemote(ctx)
	if err != nil {
		s.logger.Warn("document store not available, using local mirror",
			slog.Any("error", err),
		)

		return s.loadFromMirror()
	}

	if len(products) == 0 {
		return s.installSeed()
	}

	// The remote set is authoritative while the store is reachable.
	s.state.Dispatch(store.SetProducts{Products: products})

	return nil
}

// AddProduct inserts a product remote-first. Remote failure is swallowed:
// the product still lands in memory and in the mirror under a locally
// generated id, and the success notification still fires.
func (s *catalogService) AddProduct(ctx context.Context, draft entity.ProductDraft) (entity.Product, usecase.MutationReceipt, error) {
	receipt := usecase.MutationReceipt{}

	id, err := s.insertRemote(ctx, draft)
	if err != nil {
		s.logger.Warn("remote insert failed, falling back to local mirror",
			slog.Any("error", err),
		)
		receipt.UsedFallback = true
		id = timestampID()
	}

	product := draft.WithID(id)
	s.state.Dispatch(store.AddProduct{Product: product})

	if err := s.persistProducts(); err != nil {
		return entity.Product{}, receipt, err
	}

	s.notify(ctx, &service.StorefrontEvent{
		Kind:         service.EventProductAdded,
		Message:      "Product added successfully!",
		ProductID:    product.ID,
		UsedFallback: receipt.UsedFallback,
	})

	return product, receipt, nil
}

// UpdateProduct patches the listed fields remotely, then replaces the
// in-memory record wholesale with {id, fields}. Fields absent from the
// replacement set are dropped locally even when the remote patch kept them;
// this replace-not-merge asymmetry is the documented contract.
func (s *catalogService) UpdateProduct(ctx context.Context, id string, fields entity.ProductFields) (entity.Product, usecase.MutationReceipt, error) {
	receipt := usecase.MutationReceipt{}

	if err := s.patchRemote(ctx, id, fields); err != nil {
		s.logger.Warn("remote patch failed, falling back to local mirror",
			slog.String("id", id),
			slog.Any("error", err),
		)
		receipt.UsedFallback = true
	}

	product := fields.WithID(id)
	s.state.Dispatch(store.UpdateProduct{Product: product})

	if err := s.persistProducts(); err != nil {
		return entity.Product{}, receipt, err
	}

	s.notify(ctx, &service.StorefrontEvent{
		Kind:         service.EventProductUpdated,
		Message:      "Product updated successfully!",
		ProductID:    id,
		UsedFallback: receipt.UsedFallback,
	})

	return product, receipt, nil
}

// DeleteProduct removes the product remote-first; the in-memory record and
// the mirror entry go away regardless of the remote outcome. Deleting an
// unknown id is a no-op.
func (s *catalogService) DeleteProduct(ctx context.Context, id string) (usecase.MutationReceipt, error) {
	receipt := usecase.MutationReceipt{}

	if err := s.removeRemote(ctx, id); err != nil {
		s.logger.Warn("remote delete failed, falling back to local mirror",
			slog.String("id", id),
			slog.Any("error", err),
		)
		receipt.UsedFallback = true
	}

	s.state.Dispatch(store.DeleteProduct{ID: id})

	if err := s.persistProducts(); err != nil {
		return receipt, err
	}

	s.notify(ctx, &service.StorefrontEvent{
		Kind:         service.EventProductDeleted,
		Message:      "Product deleted successfully!",
		ProductID:    id,
		UsedFallback: receipt.UsedFallback,
	})

	return receipt, nil
}

// Products returns a snapshot of the current catalog.
func (s *catalogService) Products() []entity.Product {
	return s.state.Products()
}

// ProductByID looks a product up in the in-memory catalog.
func (s *catalogService) ProductByID(id string) (entity.Product, error) {
	for _, product := range s.state.Products() {
		if product.ID == id {
			return product, nil
		}
	}

	return entity.Product{}, domainerrors.ErrProductNotFound
}

// Loading reports whether LoadProducts is in flight.
func (s *catalogService) Loading() bool {
	return s.state.Loading()
}

func (s *catalogService) listRemote(ctx context.Context) ([]entity.Product, error) {
	if s.remote == nil {
		return nil, repository.ErrRemoteUnavailable
	}

	return s.remote.ListAll(ctx)
}

func (s *catalogService) insertRemote(ctx context.Context, draft entity.ProductDraft) (string, error) {
	if s.remote == nil {
		return "", repository.ErrRemoteUnavailable
	}

	return s.remote.Insert(ctx, draft)
}

func (s *catalogService) patchRemote(ctx context.Context, id string, fields entity.ProductFields) error {
	if s.remote == nil {
		return repository.ErrRemoteUnavailable
	}

	return s.remote.Patch(ctx, id, fields)
}

func (s *catalogService) removeRemote(ctx context.Context, id string) error {
	if s.remote == nil {
		return repository.ErrRemoteUnavailable
	}

	return s.remote.Remove(ctx, id)
}

// loadFromMirror adopts the mirror contents, or installs the seed catalog
// when the mirror is empty.
func (s *catalogService) loadFromMirror() error {
	raw, ok, err := s.mirror.Get(repository.MirrorKeyProducts)
	if err != nil {
		return errors.Wrap(err, "read product mirror")
	}

	var local []entity.Product
	if ok {
		if err := json.Unmarshal([]byte(raw), &local); err != nil {
			return errors.Wrap(err, "decode product mirror")
		}
	}

	if len(local) == 0 {
		return s.installSeed()
	}

	s.state.Dispatch(store.SetProducts{Products: local})

	return nil
}

// installSeed puts the built-in seed catalog into memory and the mirror.
func (s *catalogService) installSeed() error {
	seed := entity.SeedCatalog()
	s.state.Dispatch(store.SetProducts{Products: seed})

	return s.persistProducts()
}

// persistProducts rewrites the mirror from the full in-memory list, keeping
// the mirror identical to memory after every mutation.
func (s *catalogService) persistProducts() error {
	data, err := json.Marshal(s.state.Products())
	if err != nil {
		return errors.Wrap(err, "encode product mirror")
	}

	if err := s.mirror.Set(repository.MirrorKeyProducts, string(data)); err != nil {
		return errors.Wrap(err, "write product mirror")
	}

	return nil
}

// notify publishes a storefront event. Best effort: a failed publish is a
// diagnostic, never an operation failure.
func (s *catalogService) notify(ctx context.Context, event *service.StorefrontEvent) {
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish storefront event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}

// timestampID derives an identifier from the current time, matching the
// shape of ids minted on the fallback path since the first release.
func timestampID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
