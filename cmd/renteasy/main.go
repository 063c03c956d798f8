package main

import (
	"context"
	"log/slog"
	"os"

	"renteasy/config"
	"renteasy/internal/delivery"
	"renteasy/internal/delivery/http"
	"renteasy/internal/delivery/http/middleware"
	"renteasy/internal/delivery/http/router/handler"
	"renteasy/internal/domain/service"
	"renteasy/internal/infra/auth"
	logs "renteasy/internal/infra/log"
	"renteasy/internal/infra/payment"
	"renteasy/internal/infra/persistence/blob"
	"renteasy/internal/infra/persistence/firestore"
	"renteasy/internal/infra/pubsub"
	"renteasy/internal/infra/qrcode"
	"renteasy/internal/store"
	"renteasy/internal/usecase"
	"renteasy/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrapStorefront,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		store.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewProductRepository,
			blob.NewMirrorStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewNotifier,
			payment.NewSimulator,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewSessionService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAdminMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapStorefront restores persisted state before any request is served:
// the admin flag from the mirror, then the product catalog.
func bootstrapStorefront(
	ctx context.Context,
	logger *slog.Logger,
	session usecase.SessionUsecase,
	catalog usecase.CatalogUsecase,
) error {
	if err := session.Restore(); err != nil {
		return err
	}

	if err := catalog.LoadProducts(ctx); err != nil {
		return err
	}

	logger.Info("storefront state restored")

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
