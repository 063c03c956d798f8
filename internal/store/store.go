// Package store holds the single in-memory representation of storefront
// state. All writes go through Dispatch with a closed set of actions; reads
// are synchronous snapshots. The container is constructed once at process
// start and handed to its consumers by reference, never looked up globally.
package store

import (
	"sync"

	"renteasy/internal/domain/entity"
)

// state is the mutable data guarded by the store's lock.
type state struct {
	products     []entity.Product
	orders       []entity.Order
	loading      bool
	isAdmin      bool
	currentOrder *entity.Order
}

// Action is a state transition. The set of actions is closed: only the
// variants in this package can implement it.
type Action interface {
	apply(*state)
}

// SetLoading toggles the catalog loading flag.
type SetLoading struct{ Loading bool }

// SetProducts replaces the whole product list.
type SetProducts struct{ Products []entity.Product }

// AddProduct appends one product to the list.
type AddProduct struct{ Product entity.Product }

// UpdateProduct replaces the record whose id matches Product.ID wholesale.
// No record matches, nothing changes.
type UpdateProduct struct{ Product entity.Product }

// DeleteProduct removes the record with the given id, if present.
type DeleteProduct struct{ ID string }

// SetAdmin sets the admin session flag.
type SetAdmin struct{ IsAdmin bool }

// AddOrder appends one order. Orders are append-only; there is no update or
// delete variant.
type AddOrder struct{ Order entity.Order }

// SetCurrentOrder records the most recently submitted order.
type SetCurrentOrder struct{ Order *entity.Order }

func (a SetLoading) apply(s *state)  { s.loading = a.Loading }
func (a SetProducts) apply(s *state) { s.products = append([]entity.Product(nil), a.Products...) }
func (a AddProduct) apply(s *state)  { s.products = append(s.products, a.Product) }

func (a UpdateProduct) apply(s *state) {
	for i := range s.products {
		if s.products[i].ID == a.Product.ID {
			s.products[i] = a.Product
		}
	}
}

func (a DeleteProduct) apply(s *state) {
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != a.ID {
			kept = append(kept, p)
		}
	}
	s.products = kept
}

func (a SetAdmin) apply(s *state) { s.isAdmin = a.IsAdmin }
func (a AddOrder) apply(s *state) { s.orders = append(s.orders, a.Order) }

func (a SetCurrentOrder) apply(s *state) {
	if a.Order == nil {
		s.currentOrder = nil

		return
	}
	order := *a.Order
	s.currentOrder = &order
}

// Store is the process-wide state container.
type Store struct {
	mu sync.RWMutex
	st state
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Dispatch applies actions sequentially. Within one call the transitions are
// observed atomically by readers.
func (s *Store) Dispatch(actions ...Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, action := range actions {
		action.apply(&s.st)
	}
}

// Products returns a snapshot of the product list.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.Product(nil), s.st.products...)
}

// Orders returns a snapshot of the order list.
func (s *Store) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.Order(nil), s.st.orders...)
}

// Loading reports whether a catalog load is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.loading
}

// IsAdmin reports whether an admin session is active.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.st.isAdmin
}

// CurrentOrder returns the most recently submitted order, or nil when no
// order has been placed in this session.
func (s *Store) CurrentOrder() *entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.st.currentOrder == nil {
		return nil
	}
	order := *s.st.currentOrder

	return &order
}
