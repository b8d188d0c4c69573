package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"github.com/ijalalfrz/flight-connection-service/internal/app/config"
	"github.com/ijalalfrz/flight-connection-service/internal/app/dto"
	"github.com/ijalalfrz/flight-connection-service/internal/app/endpoints"
	"github.com/ijalalfrz/flight-connection-service/internal/app/service"
	"github.com/ijalalfrz/flight-connection-service/internal/app/transport"
	"github.com/ijalalfrz/flight-connection-service/internal/pkg/flightprovider"
	"github.com/ijalalfrz/flight-connection-service/internal/pkg/flightprovider/ryanair"
	"github.com/ijalalfrz/flight-connection-service/internal/pkg/logger"
)

// @title           Flight Connection Service API
// @version         0.0.1
// @description     flight-connection-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cancel, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

// startHTTPServer serves until ctx is done. A listen failure cancels ctx so that
// runApp stops waiting for a signal.
func startHTTPServer(ctx context.Context, cancel context.CancelFunc, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(cfg.Search.DateTimeLayout); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	provider := ryanair.NewProvider(flightprovider.FlightProviderConfig{
		RoutesURL:    cfg.Backend.RoutesURL,
		SchedulesURL: cfg.Backend.SchedulesURL,
		Operator:     cfg.Backend.Operator,
		Timeout:      cfg.Backend.Timeout,
		MaxRetries:   cfg.Backend.MaxRetries,
		Limiter:      initLimiter(ctx, cfg),
		HTTPClient:   &http.Client{},
	})

	searchService := service.NewSearchService(provider, cfg.Search, cfg.Messages)

	// init service endpoint
	return endpoints.Endpoints{
		SearchEndpoint: endpoints.MakeSearchEndpoint(searchService),
	}
}

// initLimiter shares the outbound budget through redis when it is configured and
// falls back to an in-process limiter otherwise.
func initLimiter(ctx context.Context, cfg *config.Config) flightprovider.Limiter {
	if cfg.Redis.Addr == "" {
		slog.InfoContext(ctx, "redis not configured, using in-process rate limiter",
			slog.Int("rps", cfg.Backend.RateLimitRPS))
		return flightprovider.NewLocalLimiter(cfg.Backend.RateLimitRPS)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.Timeout,
		ReadTimeout: cfg.Redis.Timeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.WarnContext(ctx, "redis unreachable, using in-process rate limiter",
			slog.String("error", err.Error()))
		return flightprovider.NewLocalLimiter(cfg.Backend.RateLimitRPS)
	}

	return flightprovider.NewRedisLimiter(redis_rate.NewLimiter(redisClient), cfg.Backend.RateLimitRPS)
}
