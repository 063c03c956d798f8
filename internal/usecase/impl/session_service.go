package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"renteasy/config"
	domainerrors "renteasy/internal/domain/errors"
	"renteasy/internal/domain/repository"
	"renteasy/internal/domain/service"
	"renteasy/internal/errors"
	"renteasy/internal/store"
	"renteasy/internal/usecase"
)

type sessionService struct {
	state    *store.Store
	mirror   repository.MirrorStore
	tokens   service.TokenService
	notifier service.Notifier
	logger   *slog.Logger
	password string
}

// NewSessionService creates a new admin session service instance.
func NewSessionService(
	cfg *config.Config,
	state *store.Store,
	mirror repository.MirrorStore,
	tokens service.TokenService,
	notifier service.Notifier,
	logger *slog.Logger,
) (usecase.SessionUsecase, error) {
	if cfg.Admin.Password == "" {
		return nil, errors.New("admin password must be configured")
	}

	return &sessionService{
		state:    state,
		mirror:   mirror,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
		password: cfg.Admin.Password,
	}, nil
}

// Login compares the password against the configured shared secret. The
// comparison is plain (no hashing, no lockout): this gate is not security
// grade and the secret is shared by design.
func (s *sessionService) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", domainerrors.ErrInvalidCredentials
	}

	s.state.Dispatch(store.SetAdmin{IsAdmin: true})
	if err := s.mirror.Set(repository.MirrorKeyAdmin, repository.MirrorAdminTrue); err != nil {
		return "", errors.Wrap(err, "persist admin flag")
	}

	token, err := s.tokens.GenerateAdminToken()
	if err != nil {
		return "", errors.Wrap(err, "issue admin token")
	}

	s.notify(&service.StorefrontEvent{
		Kind:    service.EventAdminLogin,
		Message: "Admin login successful!",
	})

	return token, nil
}

// Logout clears the admin flag in memory and in the mirror.
func (s *sessionService) Logout() error {
	s.state.Dispatch(store.SetAdmin{IsAdmin: false})
	if err := s.mirror.Remove(repository.MirrorKeyAdmin); err != nil {
		return errors.Wrap(err, "clear admin flag")
	}

	s.notify(&service.StorefrontEvent{
		Kind:    service.EventAdminLogout,
		Message: "Admin logged out!",
	})

	return nil
}

// Restore re-raises the admin flag from the mirror on startup, so a restart
// does not end an active admin session.
func (s *sessionService) Restore() error {
	value, ok, err := s.mirror.Get(repository.MirrorKeyAdmin)
	if err != nil {
		return errors.Wrap(err, "read admin flag")
	}

	if ok && value == repository.MirrorAdminTrue {
		s.state.Dispatch(store.SetAdmin{IsAdmin: true})
	}

	return nil
}

// IsAdmin reports whether an admin session is active.
func (s *sessionService) IsAdmin() bool {
	return s.state.IsAdmin()
}

func (s *sessionService) notify(event *service.StorefrontEvent) {
	if err := s.notifier.Publish(context.Background(), event); err != nil {
		s.logger.Warn("failed to publish session event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}
