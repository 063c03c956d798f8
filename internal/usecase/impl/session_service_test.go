package impl

import (
	"log/slog"
	"testing"
	"time"

	"renteasy/config"
	domainerrors "renteasy/internal/domain/errors"
	"renteasy/internal/domain/repository"
	"renteasy/internal/store"
	"renteasy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service  usecase.SessionUsecase
	state    *store.Store
	mirror   *fakeMirror
	notifier *recordingNotifier
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.Admin = config.AdminConfig{
		Password:    "admin123",
		TokenSecret: "test-secret",
		TokenTTL:    time.Hour,
	}

	state := store.New()
	mirror := newFakeMirror()
	notifier := &recordingNotifier{}

	svc, err := NewSessionService(cfg, state, mirror, stubTokenService{}, notifier, slog.Default())
	require.NoError(t, err)

	return sessionServiceFixtures{
		service:  svc,
		state:    state,
		mirror:   mirror,
		notifier: notifier,
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)

	token, err := fx.service.Login("admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, fx.service.IsAdmin())

	value, ok, err := fx.mirror.Get(repository.MirrorKeyAdmin)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, repository.MirrorAdminTrue, value)
}

func TestSessionService_Login_WrongPasswordLeavesStateUnchanged(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Login("not-the-password")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.False(t, fx.service.IsAdmin())

	_, ok, err := fx.mirror.Get(repository.MirrorKeyAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionService_Logout_ClearsFlagAndMirror(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Login("admin123")
	require.NoError(t, err)

	require.NoError(t, fx.service.Logout())
	assert.False(t, fx.service.IsAdmin())

	_, ok, err := fx.mirror.Get(repository.MirrorKeyAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionService_Restore_PicksUpPersistedFlag(t *testing.T) {
	fx := createTestSessionService(t)

	require.NoError(t, fx.mirror.Set(repository.MirrorKeyAdmin, repository.MirrorAdminTrue))

	require.NoError(t, fx.service.Restore())
	assert.True(t, fx.service.IsAdmin())
}

func TestSessionService_Restore_NoFlagStaysLoggedOut(t *testing.T) {
	fx := createTestSessionService(t)

	require.NoError(t, fx.service.Restore())
	assert.False(t, fx.service.IsAdmin())
}

func TestNewSessionService_RequiresPassword(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewSessionService(cfg, store.New(), newFakeMirror(), stubTokenService{}, &recordingNotifier{}, slog.Default())
	require.Error(t, err)
}
