package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ordersapi/orders-svc/internal/dal/postgres"
	"github.com/ordersapi/orders-svc/internal/dal/rabbitmq"
	"github.com/ordersapi/orders-svc/internal/dal/repositories/audit"
	orderrepo "github.com/ordersapi/orders-svc/internal/dal/repositories/order"
	"github.com/ordersapi/orders-svc/internal/dal/uow"
	"github.com/ordersapi/orders-svc/internal/otel"
	"github.com/ordersapi/orders-svc/internal/service/services/ordersvc"
	httptransport "github.com/ordersapi/orders-svc/internal/transport/http"
	"github.com/spf13/viper"
)

// App represents the application.
type App struct {
	orderSvc       *ordersvc.OrderService
	transport      *httptransport.HTTPTransport
	postgresClient *postgres.Client
	rabbitClient   *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()

	postgresClient := postgres.MustNewClient()

	orderRepo := orderrepo.NewOrderRepository(func() uow.UnitOfWork {
		return uow.NewUnitOfWork(postgresClient)
	})

	opts := []ordersvc.Option{
		ordersvc.WithOrderRepository(orderRepo),
	}

	var rabbitClient *rabbitmq.Client
	if viper.GetBool("rabbitmq.enabled") {
		rabbitClient = rabbitmq.MustNewClient()
		opts = append(opts, ordersvc.WithAuditRepository(
			audit.NewAuditRabbitMQRepository(rabbitClient),
		))
	}

	orderSvc := ordersvc.MustNewOrderService(opts...)

	transport := httptransport.NewHTTPTransport(orderSvc)
	transport.RegisterRoutes()

	return &App{
		orderSvc:       orderSvc,
		transport:      transport,
		postgresClient: postgresClient,
		rabbitClient:   rabbitClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Tracer provider shutdown error", "error", err)
	}

	if a.rabbitClient != nil {
		if err := a.rabbitClient.Close(); err != nil {
			slog.Error("RabbitMQ connection close error", "error", err)
		} else {
			slog.Info("RabbitMQ connection closed gracefully")
		}
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	slog.Info("Application shutdown complete")
}
