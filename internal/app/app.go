package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"

	"github.com/project/biblioteca/config"
	"github.com/project/biblioteca/db"
	"github.com/project/biblioteca/internal/controller"
	"github.com/project/biblioteca/internal/entity"
	"github.com/project/biblioteca/internal/usecase/library"
	"github.com/project/biblioteca/internal/usecase/outbox"
	"github.com/project/biblioteca/internal/usecase/repository"
)

const (
	shutDownSeconds        = 3
	dialerTimeoutSeconds   = 30
	dialerKeepAliveSeconds = 180
	transportMaxIdleConns  = 100
	transportMaxConnsPerHost
	transportIdleConnTimeoutSeconds       = 90
	transportTLSHandshakeTimeoutSeconds   = 15
	transportExpectContinueTimeoutSeconds = 2
)

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Observability.JaegerURL != "" {
		tp, err := setupTracing(cfg)
		if err != nil {
			logger.Error("can not setup tracing", zap.Error(err))
			return
		}
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	if err := db.SetupPostgres(cfg.PG.MigrateURL, logger); err != nil {
		logger.Error("can not run migrations", zap.Error(err))
		return
	}

	dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
	if err != nil {
		logger.Error("can not create pgxpool", zap.Error(err))
		return
	}
	defer dbPool.Close()

	var logRepo *zap.Logger
	if cfg.Log.LogDBRepo {
		logRepo = logger
	}
	repo := repository.New(logRepo, dbPool)
	outboxRepository := repository.NewOutbox(dbPool, cfg.Outbox.AttemptsRetry)

	var logTransactor *zap.Logger
	if cfg.Log.LogTransactor {
		logTransactor = logger
	}
	transactor := repository.NewTransactor(logTransactor, dbPool)
	runOutbox(ctx, cfg, logger, outboxRepository, transactor)

	var logUseCase *zap.Logger
	if cfg.Log.LogUseCase {
		logUseCase = logger
	}
	useCases := library.New(logUseCase, repo, repo, repo, repo, outboxRepository, transactor)

	var logController *zap.Logger
	if cfg.Log.LogController {
		logController = logger
	}
	ctrl := controller.New(logController, useCases, useCases, useCases, useCases)

	go runMetrics(cfg, logger)
	runHTTP(ctx, cfg, logger, ctrl.Router())
}

func setupTracing(cfg *config.Config) (*tracesdk.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.Observability.JaegerURL)))

	if err != nil {
		return nil, err
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("biblioteca"),
		)),
	)
	otel.SetTracerProvider(tp)
	return tp, nil
}

func runHTTP(ctx context.Context, cfg *config.Config, logger *zap.Logger, handler http.Handler) {
	server := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
		defer shutdownCancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("http server listening at port", zap.String("port", cfg.HTTP.Port))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server listen error", zap.Error(err))
	}
}

func runMetrics(cfg *config.Config, logger *zap.Logger) {
	if cfg.Observability.MetricsPort == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("metrics listening at port", zap.String("port", cfg.Observability.MetricsPort))

	if err := http.ListenAndServe(":"+cfg.Observability.MetricsPort, mux); err != nil {
		logger.Error("metrics listen error", zap.Error(err))
	}
}

func runOutbox(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	outboxRepository library.OutboxRepository,
	transactor repository.Transactor,
) {
	dialer := &net.Dialer{
		Timeout:   dialerTimeoutSeconds * time.Second,
		KeepAlive: dialerKeepAliveSeconds * time.Second,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          transportMaxIdleConns,
		MaxConnsPerHost:       transportMaxConnsPerHost,
		IdleConnTimeout:       transportIdleConnTimeoutSeconds * time.Second,
		TLSHandshakeTimeout:   transportTLSHandshakeTimeoutSeconds * time.Second,
		ExpectContinueTimeout: transportExpectContinueTimeoutSeconds * time.Second,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}

	client := new(http.Client)
	client.Transport = transport

	globalHandler := globalOutboxHandler(client, cfg.Outbox.RentalSendURL, cfg.Outbox.ReturnSendURL)

	var logOutbox *zap.Logger
	if cfg.Log.LogOutboxWorker {
		logOutbox = logger
	}
	outboxService := outbox.New(logOutbox, outboxRepository, globalHandler, cfg, transactor)

	outboxService.Start(
		ctx,
		cfg.Outbox.Workers,
		cfg.Outbox.BatchSize,
		cfg.Outbox.WaitTimeMS,
		cfg.Outbox.InProgressTTLMS,
	)
}

func globalOutboxHandler(
	client *http.Client,
	rentalURL,
	returnURL string,
) outbox.GlobalHandler {
	return func(kind repository.OutboxKind) (outbox.KindHandler, error) {
		switch kind {
		case repository.OutboxKindRental:
			return rentalOutboxHandler(client, rentalURL), nil
		case repository.OutboxKindReturn:
			return rentalOutboxHandler(client, returnURL), nil
		default:
			return nil, fmt.Errorf("unsupported outbox kind: %d", kind)
		}
	}
}

const contentType = "application/json"

var errFailRequest = errors.New("Not 2xx response")

const statusOk = 2

// rentalOutboxHandler forwards the stored rental snapshot; the same shape
// serves both the rental and the return notification.
func rentalOutboxHandler(client *http.Client, url string) outbox.KindHandler {
	return func(_ context.Context, data []byte) error {
		rental := entity.Rental{}
		err := json.Unmarshal(data, &rental)

		if err != nil {
			return fmt.Errorf("can not deserialize data in rental outbox handler: %w", err)
		}

		response, err := client.Post(url, contentType, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("can not make post request to given url: %w", err)
		}

		defer response.Body.Close()

		if response.StatusCode/100 != statusOk {
			return errFailRequest
		}

		return nil
	}
}
