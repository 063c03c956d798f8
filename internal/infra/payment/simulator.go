// Package payment provides the simulated payment provider. The storefront
// never talks to a real gateway; charges always succeed and mint a demo
// payment reference.
package payment

import (
	"context"
	"log/slog"

	domainerrors "renteasy/internal/domain/errors"
	"renteasy/internal/domain/service"

	"github.com/google/uuid"
)

type simulator struct {
	logger *slog.Logger
}

// NewSimulator creates the simulated payment service.
func NewSimulator(logger *slog.Logger) service.PaymentService {
	return &simulator{logger: logger}
}

// Charge simulates collecting payment. The reference keeps the historical
// demo_payment_ prefix so downstream consumers can tell simulated charges
// apart from real ones if a gateway ever lands.
func (s *simulator) Charge(_ context.Context, req service.ChargeRequest) (*service.ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, domainerrors.ErrPaymentFailed.WithDetails("charge amount must be positive")
	}

	result := &service.ChargeResult{
		PaymentID: "demo_payment_" + uuid.NewString(),
		Status:    service.PaymentStatusCompleted,
	}

	s.logger.Info("simulated payment collected",
		slog.String("method", req.Method),
		slog.Float64("amount", req.Amount),
		slog.String("payment_id", result.PaymentID),
	)

	return result, nil
}
