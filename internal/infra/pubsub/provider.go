// Package pubsub provides Notifier implementations that carry storefront
// events out of the process: Google Pub/Sub, a local HTTP push simulator for
// development, and a log-only no-op.
package pubsub

import (
	"context"
	"log/slog"

	"renteasy/config"
	"renteasy/internal/domain/constants"
	"renteasy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopNotifier logs events instead of publishing when Pub/Sub is disabled.
// The storefront's success notifications still reach the operator's logs.
type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) Publish(_ context.Context, event *service.StorefrontEvent) error {
	n.logger.Info("[NoopPubSub] Storefront event",
		slog.String("kind", event.Kind),
		slog.String("message", event.Message),
		slog.Bool("used_fallback", event.UsedFallback),
	)

	return nil
}

func (n *noopNotifier) Close() error {
	return nil
}

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier based on configuration
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a log-only notifier
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using log-only notifier")

		return &noopNotifier{logger: logger}, nil
	}

	var notifier service.Notifier
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP notifier",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		notifier = NewLocalHTTPNotifier(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub notifier",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		notifier, err = NewGooglePubSubNotifier(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close the notifier on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Notifier")

			return notifier.Close()
		},
	})

	return notifier, nil
}
