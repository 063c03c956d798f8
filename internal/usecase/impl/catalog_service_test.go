package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"renteasy/internal/domain/entity"
	"renteasy/internal/domain/repository"
	"renteasy/internal/domain/service"
	"renteasy/internal/store"
	"renteasy/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service  usecase.CatalogUsecase
	state    *store.Store
	remote   *MockProductRepository
	mirror   *fakeMirror
	notifier *recordingNotifier
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	state := store.New()
	remote := &MockProductRepository{}
	mirror := newFakeMirror()
	notifier := &recordingNotifier{}
	svc := NewCatalogService(state, remote, mirror, notifier, slog.Default())

	return catalogServiceFixtures{
		service:  svc,
		state:    state,
		remote:   remote,
		mirror:   mirror,
		notifier: notifier,
	}
}

// requireMirrorEqualsMemory asserts the invariant that the mirror reflects
// the in-memory list after every mutation.
func requireMirrorEqualsMemory(t *testing.T, fx catalogServiceFixtures) {
	t.Helper()

	memory, err := json.Marshal(fx.state.Products())
	require.NoError(t, err)

	raw, ok, err := fx.mirror.Get(repository.MirrorKeyProducts)
	require.NoError(t, err)
	require.True(t, ok, "mirror has no product entry")
	assert.JSONEq(t, string(memory), raw)
}

func TestCatalogService_LoadProducts_RemoteNonEmpty(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	remoteProducts := []entity.Product{
		{ID: "doc-1", Name: "Sofa", Price: 40},
		{ID: "doc-2", Name: "Chair", Price: 25},
	}
	fx.remote.On("ListAll", ctx).Return(remoteProducts, nil)

	require.NoError(t, fx.service.LoadProducts(ctx))

	assert.Equal(t, remoteProducts, fx.service.Products())
	assert.False(t, fx.service.Loading())
}

func TestCatalogService_LoadProducts_RemoteEmptyInstallsSeed(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.remote.On("ListAll", ctx).Return([]entity.Product{}, nil)

	require.NoError(t, fx.service.LoadProducts(ctx))

	seed := entity.SeedCatalog()
	assert.Equal(t, seed, fx.service.Products())
	assert.Equal(t, seed, fx.mirror.mirrorProducts(t))
}

func TestCatalogService_LoadProducts_RemoteDownEmptyMirrorInstallsSeed(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.remote.On("ListAll", ctx).Return(nil, errors.New("firestore unreachable"))

	require.NoError(t, fx.service.LoadProducts(ctx))

	seed := entity.SeedCatalog()
	assert.Equal(t, seed, fx.service.Products())
	assert.Equal(t, seed, fx.mirror.mirrorProducts(t))
}

func TestCatalogService_LoadProducts_RemoteDownAdoptsMirror(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	local := []entity.Product{
		{ID: "1700000000000", Name: "Bookshelf", Price: 20, Available: true},
		{ID: "1700000000001", Name: "Recliner", Price: 35},
	}
	data, err := json.Marshal(local)
	require.NoError(t, err)
	require.NoError(t, fx.mirror.Set(repository.MirrorKeyProducts, string(data)))

	fx.remote.On("ListAll", ctx).Return(nil, errors.New("firestore unreachable"))

	require.NoError(t, fx.service.LoadProducts(ctx))

	assert.Equal(t, local, fx.service.Products())
}

func TestCatalogService_AddProduct_RemoteSuccess(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	draft := entity.ProductDraft{Name: "X", Price: 10, Available: true}
	fx.remote.On("Insert", ctx, draft).Return("doc-42", nil)

	before := len(fx.service.Products())
	product, receipt, err := fx.service.AddProduct(ctx, draft)
	require.NoError(t, err)

	assert.Equal(t, "doc-42", product.ID)
	assert.Equal(t, 10.0, product.Price)
	assert.True(t, product.Available)
	assert.False(t, receipt.UsedFallback)
	assert.Len(t, fx.service.Products(), before+1)
	requireMirrorEqualsMemory(t, fx)

	added := fx.notifier.byKind(service.EventProductAdded)
	require.Len(t, added, 1)
	assert.False(t, added[0].UsedFallback)
}

func TestCatalogService_AddProduct_RemoteFailureStillSucceeds(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	draft := entity.ProductDraft{Name: "X", Price: 10}
	fx.remote.On("Insert", ctx, draft).Return("", errors.New("firestore unreachable"))

	before := len(fx.service.Products())
	product, receipt, err := fx.service.AddProduct(ctx, draft)
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID, "fallback id must be assigned locally")
	assert.Equal(t, 10.0, product.Price)
	assert.True(t, receipt.UsedFallback)
	assert.Len(t, fx.service.Products(), before+1)
	requireMirrorEqualsMemory(t, fx)

	// The success notification fires on the fallback path too.
	added := fx.notifier.byKind(service.EventProductAdded)
	require.Len(t, added, 1)
	assert.True(t, added[0].UsedFallback)
}

func TestCatalogService_UpdateProduct_ReplacesNotMerges(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.state.Dispatch(store.SetProducts{Products: []entity.Product{
		{ID: "doc-1", Name: "Sofa", Price: 40, Description: "old", Available: true},
	}})

	fields := entity.ProductFields{Price: 99}
	fx.remote.On("Patch", ctx, "doc-1", fields).Return(nil)

	product, receipt, err := fx.service.UpdateProduct(ctx, "doc-1", fields)
	require.NoError(t, err)
	assert.False(t, receipt.UsedFallback)

	// The stored record is exactly {id, price}; previously present fields
	// are gone in memory and in the mirror even though the remote patch
	// only touched the listed fields.
	assert.Equal(t, "doc-1", product.ID)
	assert.Equal(t, 99.0, product.Price)

	stored := fx.service.Products()
	require.Len(t, stored, 1)
	assert.Empty(t, stored[0].Name)
	assert.Empty(t, stored[0].Description)
	assert.False(t, stored[0].Available)
	requireMirrorEqualsMemory(t, fx)
}

func TestCatalogService_UpdateProduct_RemoteFailureAppliesLocally(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.state.Dispatch(store.SetProducts{Products: []entity.Product{
		{ID: "doc-1", Name: "Sofa", Price: 40},
	}})

	fields := entity.ProductFields{Name: "Sofa", Price: 55}
	fx.remote.On("Patch", ctx, "doc-1", fields).Return(errors.New("firestore unreachable"))

	_, receipt, err := fx.service.UpdateProduct(ctx, "doc-1", fields)
	require.NoError(t, err)
	assert.True(t, receipt.UsedFallback)

	stored := fx.service.Products()
	require.Len(t, stored, 1)
	assert.Equal(t, 55.0, stored[0].Price)
	requireMirrorEqualsMemory(t, fx)

	updated := fx.notifier.byKind(service.EventProductUpdated)
	require.Len(t, updated, 1)
}

func TestCatalogService_DeleteProduct_Idempotent(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.state.Dispatch(store.SetProducts{Products: []entity.Product{
		{ID: "doc-1", Name: "Sofa"},
		{ID: "doc-2", Name: "Chair"},
	}})

	fx.remote.On("Remove", ctx, "doc-1").Return(nil).Twice()

	_, err := fx.service.DeleteProduct(ctx, "doc-1")
	require.NoError(t, err)
	after := fx.service.Products()

	// Deleting again is a no-op, not an error.
	_, err = fx.service.DeleteProduct(ctx, "doc-1")
	require.NoError(t, err)

	assert.Equal(t, after, fx.service.Products())
	require.Len(t, fx.service.Products(), 1)
	assert.Equal(t, "doc-2", fx.service.Products()[0].ID)
	requireMirrorEqualsMemory(t, fx)
}

func TestCatalogService_DeleteProduct_RemoteFailureStillRemoves(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.state.Dispatch(store.SetProducts{Products: []entity.Product{
		{ID: "doc-1", Name: "Sofa"},
	}})

	fx.remote.On("Remove", ctx, "doc-1").Return(errors.New("firestore unreachable"))

	receipt, err := fx.service.DeleteProduct(ctx, "doc-1")
	require.NoError(t, err)
	assert.True(t, receipt.UsedFallback)
	assert.Empty(t, fx.service.Products())
	requireMirrorEqualsMemory(t, fx)
}

func TestCatalogService_ProductByID(t *testing.T) {
	fx := createTestCatalogService(t)

	fx.state.Dispatch(store.SetProducts{Products: []entity.Product{
		{ID: "doc-1", Name: "Sofa"},
	}})

	product, err := fx.service.ProductByID("doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Sofa", product.Name)

	_, err = fx.service.ProductByID("missing")
	require.Error(t, err)
}

func TestCatalogService_NilRemoteAlwaysFallsBack(t *testing.T) {
	state := store.New()
	mirror := newFakeMirror()
	notifier := &recordingNotifier{}
	svc := NewCatalogService(state, nil, mirror, notifier, slog.Default())
	ctx := context.Background()

	require.NoError(t, svc.LoadProducts(ctx))
	assert.Equal(t, entity.SeedCatalog(), svc.Products())

	product, receipt, err := svc.AddProduct(ctx, entity.ProductDraft{Name: "X", Price: 10})
	require.NoError(t, err)
	assert.True(t, receipt.UsedFallback)
	assert.NotEmpty(t, product.ID)
}

func TestCatalogService_LoadProducts_TogglesLoadingFlag(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	var loadingDuringCall bool
	fx.remote.On("ListAll", ctx).Run(func(mock.Arguments) {
		loadingDuringCall = fx.state.Loading()
	}).Return([]entity.Product{{ID: "doc-1"}}, nil)

	require.NoError(t, fx.service.LoadProducts(ctx))

	assert.True(t, loadingDuringCall, "loading flag must be raised while the remote read runs")
	assert.False(t, fx.state.Loading())
}
