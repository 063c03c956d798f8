package impl

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"renteasy/internal/domain/entity"
	"renteasy/internal/domain/repository"
	"renteasy/internal/domain/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a testify mock for the document store contract.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductRepository) Insert(ctx context.Context, draft entity.ProductDraft) (string, error) {
	args := m.Called(ctx, draft)

	return args.String(0), args.Error(1)
}

func (m *MockProductRepository) Patch(ctx context.Context, id string, fields entity.ProductFields) error {
	args := m.Called(ctx, id, fields)

	return args.Error(0)
}

func (m *MockProductRepository) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// fakeMirror is an in-memory MirrorStore, the test stand-in for the
// browser-local persistence the storefront mirrors into.
type fakeMirror struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeMirror() *fakeMirror {
	return &fakeMirror{data: make(map[string]string)}
}

func (f *fakeMirror) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.data[key]

	return value, ok, nil
}

func (f *fakeMirror) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value

	return nil
}

func (f *fakeMirror) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)

	return nil
}

// mirrorProducts decodes the product list persisted in the mirror.
func (f *fakeMirror) mirrorProducts(t *testing.T) []entity.Product {
	t.Helper()

	raw, ok, err := f.Get(repository.MirrorKeyProducts)
	require.NoError(t, err)
	if !ok {
		return nil
	}

	var products []entity.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &products))

	return products
}

// mirrorOrders decodes the order log persisted in the mirror.
func (f *fakeMirror) mirrorOrders(t *testing.T) []entity.Order {
	t.Helper()

	raw, ok, err := f.Get(repository.MirrorKeyOrders)
	require.NoError(t, err)
	if !ok {
		return nil
	}

	var orders []entity.Order
	require.NoError(t, json.Unmarshal([]byte(raw), &orders))

	return orders
}

// recordingNotifier captures every published event.
type recordingNotifier struct {
	mu     sync.Mutex
	events []service.StorefrontEvent
}

func (n *recordingNotifier) Publish(_ context.Context, event *service.StorefrontEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, *event)

	return nil
}

func (n *recordingNotifier) Close() error { return nil }

func (n *recordingNotifier) byKind(kind string) []service.StorefrontEvent {
	n.mu.Lock()
	defer n.mu.Unlock()

	var matched []service.StorefrontEvent
	for _, event := range n.events {
		if event.Kind == kind {
			matched = append(matched, event)
		}
	}

	return matched
}

// stubTokenService issues a fixed token.
type stubTokenService struct{}

func (stubTokenService) GenerateAdminToken() (string, error) {
	return "test-admin-token", nil
}

func (stubTokenService) ValidateAdminToken(string) (*service.AdminClaims, error) {
	return &service.AdminClaims{Admin: true}, nil
}

// stubQRCodeService returns the payload it was asked to encode.
type stubQRCodeService struct{}

func (stubQRCodeService) GenerateOrderQR(orderID string) ([]byte, error) {
	return []byte("qr:" + orderID), nil
}

func (stubQRCodeService) ParseOrderQR(qrData string) (string, error) {
	return qrData, nil
}
