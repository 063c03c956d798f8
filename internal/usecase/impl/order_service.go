package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	domainerrors "renteasy/internal/domain/errors"
	"renteasy/internal/domain/entity"
	"renteasy/internal/domain/repository"
	"renteasy/internal/domain/service"
	"renteasy/internal/errors"
	"renteasy/internal/store"
	"renteasy/internal/usecase"
)

// totalPriceEpsilon absorbs float rounding when checking the order total
// against price × days.
const totalPriceEpsilon = 1e-6

type orderService struct {
	state    *store.Store
	mirror   repository.MirrorStore
	notifier service.Notifier
	qrcode   service.QRCodeService
	logger   *slog.Logger
}

// NewOrderService creates a new order service instance.
func NewOrderService(
	state *store.Store,
	mirror repository.MirrorStore,
	notifier service.Notifier,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		state:    state,
		mirror:   mirror,
		notifier: notifier,
		qrcode:   qrcode,
		logger:   logger,
	}
}

// SubmitOrder stamps identity, creation time and "pending" status onto the
// draft and records it in memory and in the local order log. Orders never
// touch the document store and are append-only afterwards.
func (s *orderService) SubmitOrder(ctx context.Context, draft entity.OrderDraft) (entity.Order, error) {
	if draft.Rental.Days < 1 {
		return entity.Order{}, domainerrors.ErrValidationFailed.WithDetails("rental must be at least one day")
	}

	want := draft.Product.Price * float64(draft.Rental.Days)
	if math.Abs(draft.Rental.TotalPrice-want) > totalPriceEpsilon {
		return entity.Order{}, domainerrors.ErrOrderInvariant
	}

	order := entity.Order{
		ID:        timestampID(),
		Product:   draft.Product,
		Customer:  draft.Customer,
		Rental:    draft.Rental,
		Payment:   draft.Payment,
		Status:    entity.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	s.state.Dispatch(
		store.AddOrder{Order: order},
		store.SetCurrentOrder{Order: &order},
	)

	if err := s.appendToOrderLog(order); err != nil {
		return entity.Order{}, err
	}

	s.notify(ctx, &service.StorefrontEvent{
		Kind:    service.EventOrderPlaced,
		Message: "Order placed successfully!",
		OrderID: order.ID,
	})

	return order, nil
}

// Orders returns a snapshot of all orders placed this session.
func (s *orderService) Orders() []entity.Order {
	return s.state.Orders()
}

// CurrentOrder returns the most recently submitted order.
func (s *orderService) CurrentOrder() (entity.Order, error) {
	current := s.state.CurrentOrder()
	if current == nil {
		return entity.Order{}, domainerrors.ErrOrderContextMissing
	}

	return *current, nil
}

// OrderByID looks up a previously submitted order.
func (s *orderService) OrderByID(id string) (entity.Order, error) {
	for _, order := range s.state.Orders() {
		if order.ID == id {
			return order, nil
		}
	}

	return entity.Order{}, domainerrors.ErrOrderNotFound
}

// ConfirmationQR renders the confirmation QR code for an order.
func (s *orderService) ConfirmationQR(id string) ([]byte, error) {
	order, err := s.OrderByID(id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "generate order QR")
	}

	return png, nil
}

// appendToOrderLog read-modify-writes the full order log under the fixed
// mirror key.
func (s *orderService) appendToOrderLog(order entity.Order) error {
	raw, ok, err := s.mirror.Get(repository.MirrorKeyOrders)
	if err != nil {
		return errors.Wrap(err, "read order log")
	}

	var log []entity.Order
	if ok {
		if err := json.Unmarshal([]byte(raw), &log); err != nil {
			return errors.Wrap(err, "decode order log")
		}
	}

	log = append(log, order)

	data, err := json.Marshal(log)
	if err != nil {
		return errors.Wrap(err, "encode order log")
	}

	if err := s.mirror.Set(repository.MirrorKeyOrders, string(data)); err != nil {
		return errors.Wrap(err, "write order log")
	}

	return nil
}

func (s *orderService) notify(ctx context.Context, event *service.StorefrontEvent) {
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}
