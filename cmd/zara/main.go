package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"zara/config"
	"zara/internal/delivery"
	"zara/internal/delivery/http"
	"zara/internal/delivery/http/middleware"
	"zara/internal/delivery/http/router/handler"
	"zara/internal/delivery/scheduler"
	"zara/internal/domain/repository"
	"zara/internal/domain/service"
	"zara/internal/infra/auth"
	logs "zara/internal/infra/log"
	"zara/internal/infra/mail"
	"zara/internal/infra/persistence/postgres"
	"zara/internal/infra/pubsub"
	"zara/internal/infra/qrcode"
	"zara/internal/usecase"
	"zara/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewMachineRepository,
			postgres.NewOperationRepository,
			postgres.NewShiftRepository,
			postgres.NewPermissionRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewGomailSender,
			newLabelService,
		),
	)
}

// newLabelService creates the QR label service with dependency injection
func newLabelService(cfg *config.Config) service.LabelService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewLabelService(256, "M")
	}

	return qrcode.NewLabelService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewMachineService,
			impl.NewOperationService,
			impl.NewShiftService,
			impl.NewPermissionService,
			newNotificationUsecase,
		),
	)
}

// newNotificationUsecase creates the notification dispatcher with the
// configured dedupe window.
func newNotificationUsecase(
	cfg *config.Config,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	mailSender service.MailSender,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	var dedupeWindow time.Duration
	if cfg.Notification != nil {
		dedupeWindow = cfg.Notification.DedupeWindow
	}

	return impl.NewNotificationService(notificationRepo, userRepo, mailSender, dedupeWindow, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewMachineHandler,
			handler.NewOperationHandler,
			handler.NewShiftHandler,
			handler.NewPermissionHandler,
			handler.NewNotificationHandler,
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
			fx.Annotate(
				scheduler.NewScheduler,
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
