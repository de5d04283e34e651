package main

import (
	"context"
	"log/slog"
	"os"

	"afyalink/config"
	"afyalink/internal/delivery"
	"afyalink/internal/delivery/http"
	"afyalink/internal/delivery/http/middleware"
	"afyalink/internal/delivery/http/router/handler"
	"afyalink/internal/domain/service"
	"afyalink/internal/infra/advice"
	"afyalink/internal/infra/auth"
	logs "afyalink/internal/infra/log"
	"afyalink/internal/infra/payment/mpesa"
	"afyalink/internal/infra/persistence/firestore"
	"afyalink/internal/infra/pubsub"
	"afyalink/internal/infra/qrcode"
	"afyalink/internal/infra/storage"
	"afyalink/internal/usecase/impl"

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
		storage.New,
		advice.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserRepository,
			firestore.NewCartRepository,
			firestore.NewOrderRepository,
			firestore.NewCheckoutManager,
			firestore.NewPrescriptionRepository,
			firestore.NewMedicineRepository,
			firestore.NewFollowUpRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mpesa.NewSimulator,
			pubsub.NewEventPublisher,
			newReceiptService,
		),
	)
}

// newReceiptService creates a QR receipt service with dependency injection
func newReceiptService(cfg *config.Config) service.ReceiptService {
	if cfg.Receipt == nil {
		// Use default values if not configured
		return qrcode.NewReceiptService(256, "M")
	}

	return qrcode.NewReceiptService(cfg.Receipt.Size, cfg.Receipt.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewPrescriptionService,
			impl.NewCatalogService,
			impl.NewFollowUpService,
			impl.NewAdviceService,
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
			handler.NewUserHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewPrescriptionHandler,
			handler.NewMedicineHandler,
			handler.NewFollowUpHandler,
			handler.NewAdviceHandler,
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
