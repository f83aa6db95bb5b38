package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/board-service/internal/broadcast"
	"github.com/s21platform/board-service/internal/client/centrifugo"
	"github.com/s21platform/board-service/internal/config"
	api "github.com/s21platform/board-service/internal/generated"
	"github.com/s21platform/board-service/internal/infra"
	"github.com/s21platform/board-service/internal/pkg/jwt"
	"github.com/s21platform/board-service/internal/pkg/validator"
	db "github.com/s21platform/board-service/internal/repository/postgres"
	"github.com/s21platform/board-service/internal/rest"
	"github.com/s21platform/board-service/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(dbRepo.DB(), cfg.Postgres.Database),
	)
	metrics := infra.NewMetrics(registry)

	hub := broadcast.NewHub(
		cfg.Admin.Key,
		logger,
		broadcast.WithSendBuffer(cfg.Live.SendBuffer),
		broadcast.WithSessionGauge(metrics.LiveSessions),
		broadcast.WithEventCounter(metrics.PublishedEvents),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})

	// Local sessions are reached through Redis when configured so that every
	// replica sees every event.
	var live service.Publisher = hub
	if cfg.Redis.URL != "" {
		redisClient, err := broadcast.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Error(fmt.Sprintf("redis relay disabled: %v", err))
		} else {
			defer redisClient.Close() //nolint:errcheck // .

			relay := broadcast.NewRelay(redisClient, cfg.Redis.Channel, hub, logger)
			live = relay
			g.Go(func() error {
				return relay.Run(gctx)
			})
			logger.Info(fmt.Sprintf("redis relay enabled on channel %s", cfg.Redis.Channel))
		}
	}

	sinks := []service.Publisher{live}

	var jwtGenerator rest.JWTGenerator
	if cfg.Centrifuge.Enabled {
		centrifugeClient := centrifugo.New(cfg)
		defer centrifugeClient.Close()

		sinks = append(sinks, broadcast.NewCentrifugoSink(centrifugeClient, cfg.Centrifuge.Timeout, logger))
		jwtGenerator = jwt.New(cfg.Centrifuge.JWTSecret)
	}

	fanout := broadcast.NewFanout(logger, cfg.Live.SendBuffer, sinks...)
	g.Go(func() error {
		fanout.Run(gctx)
		return nil
	})

	boardService := service.New(dbRepo, fanout, validator.New(), cfg.Live.RecentWindow)
	handler := rest.New(boardService, jwtGenerator)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(metrics.HTTP)
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.AdminAuthHTTP(next, cfg.Admin.Header, cfg.Admin.Key)
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.Get("/live/ws", hub.ServeWS)

	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: handler.ParamError,
	})

	httpServer := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			infra.LoggerGRPC(logger),
			metrics.GRPC(),
		),
	)
	healthServer := health.NewServer()
	healthServer.SetServingStatus(cfg.Service.Name, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) && !errors.Is(err, cmux.ErrListenerClosed) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, cmux.ErrListenerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error(fmt.Sprintf("failed to shut down HTTP server: %v", err))
		}
		grpcServer.GracefulStop()
		m.Close()

		return nil
	})

	logger.Info(fmt.Sprintf("%s listening on :%s", cfg.Service.Name, cfg.Service.Port))

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
