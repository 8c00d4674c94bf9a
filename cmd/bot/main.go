package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"boxbot/config"
	"boxbot/internal/delivery"
	"boxbot/internal/delivery/http"
	"boxbot/internal/delivery/telegram"
	"boxbot/internal/domain/service"
	"boxbot/internal/infra/inpost"
	logs "boxbot/internal/infra/log"
	"boxbot/internal/infra/notification"
	"boxbot/internal/infra/persistence/postgres"
	"boxbot/internal/infra/pubsub"
	"boxbot/internal/infra/qrcode"
	"boxbot/internal/usecase/impl"

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
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewParcelArchiveRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			inpost.NewClient,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
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
			impl.NewAccountService,
			impl.NewConsentService,
			impl.NewGroupingService,
			impl.NewProximityService,
			impl.NewParcelService,
			impl.NewCompartmentService,
			impl.NewSharingService,
			impl.NewNotifierService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			telegram.NewBotAPI,
			fx.Annotate(
				telegram.NewBot,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				telegram.NewNotifier,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
