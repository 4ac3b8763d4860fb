package main

import (
	"context"
	"log/slog"
	"os"

	"agentverse/config"
	"agentverse/internal/delivery"
	"agentverse/internal/delivery/http"
	"agentverse/internal/delivery/http/middleware"
	"agentverse/internal/delivery/http/router/handler"
	"agentverse/internal/domain/service"
	"agentverse/internal/infra/auth"
	"agentverse/internal/infra/directory"
	logs "agentverse/internal/infra/log"
	"agentverse/internal/infra/persistence/firestore"
	"agentverse/internal/infra/pubsub"
	"agentverse/internal/infra/qrcode"
	"agentverse/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.New,
		directory.NewLoader,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewPrincipalRepository,
			firestore.NewProfileRepository,
			firestore.NewPostRepository,
			firestore.NewFriendRequestRepository,
			firestore.NewSimulationRepository,
			firestore.NewRegistrationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "https://agentverse.example.com")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewFeedService,
			impl.NewFriendService,
			impl.NewDirectoryService,
			impl.NewAdminService,
			impl.NewRegistrationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewFeedHandler,
			handler.NewFeedStreamHandler,
			handler.NewFriendHandler,
			handler.NewDirectoryHandler,
			handler.NewRegistrationHandler,
			handler.NewAdminHandler,
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
