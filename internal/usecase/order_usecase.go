package usecase

import (
	"context"

	"renteasy/internal/domain/entity"
)

// OrderUsecase manages order submission and lookup. Orders never touch the
// document store: they are held in memory and appended to the local order
// log.
type OrderUsecase interface {
	// SubmitOrder stamps identity, creation time and "pending" status onto
	// the draft, stores it as the current order and appends it to the local
	// order log. The rental total must equal price × days as supplied; the
	// store never recomputes it.
	SubmitOrder(ctx context.Context, draft entity.OrderDraft) (entity.Order, error)

	// Orders returns a snapshot of all orders placed this session.
	Orders() []entity.Order

	// CurrentOrder returns the most recently submitted order.
	CurrentOrder() (entity.Order, error)

	// OrderByID looks up a previously submitted order.
	OrderByID(id string) (entity.Order, error)

	// ConfirmationQR renders the confirmation QR code for an order.
	ConfirmationQR(id string) ([]byte, error)
}
