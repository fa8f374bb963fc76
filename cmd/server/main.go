package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/murkotick/course-catalog-service/internal/app/course/queries"
	"github.com/murkotick/course-catalog-service/internal/app/course/queries/list_courses"
	"github.com/murkotick/course-catalog-service/internal/config"
	"github.com/murkotick/course-catalog-service/internal/pkg/logging"
	"github.com/murkotick/course-catalog-service/internal/transport/httpapi"
	httpcourse "github.com/murkotick/course-catalog-service/internal/transport/httpapi/course"
)

// catalogServiceName is the service name reported by the gRPC health server.
const catalogServiceName = "course.v1.CatalogService"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Env == config.EnvDevelopment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logger.Info("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, cfg.Database.SpannerDatabase)
	if err != nil {
		logger.Fatal("spanner.NewClient", zap.Error(err))
	}
	defer client.Close()

	readModel := queries.NewSpannerReadModel(client)

	// CQRS wiring (read side only)
	qrys := httpcourse.Queries{
		List: list_courses.NewHandler(readModel),
	}
	courses := httpcourse.NewHandler(qrys, !cfg.IsProduction(), logger)
	api := httpapi.NewServer(cfg.Server, courses, readModel, logger)

	httpSrv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC health server
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(catalogServiceName, healthpb.HealthCheckResponse_SERVING)
	grpcSrv := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Fatal("listen", zap.String("addr", cfg.Server.GRPCAddr), zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", cfg.Server.HTTPAddr), zap.String("env", cfg.Env))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("gRPC health server listening", zap.String("addr", cfg.Server.GRPCAddr))
		return grpcSrv.Serve(lis)
	})

	g.Go(func() error {
		<-gctx.Done()
		healthSrv.Shutdown()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancelShutdown()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown", zap.Error(err))
		}

		stopped := make(chan struct{})
		go func() {
			grpcSrv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			grpcSrv.Stop()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}
