package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/campushire/placement-portal/gen/proto/placement/v1"
	"github.com/campushire/placement-portal/internal/async"
	"github.com/campushire/placement-portal/internal/common"
	"github.com/campushire/placement-portal/internal/expiry"
	"github.com/campushire/placement-portal/internal/export"
	"github.com/campushire/placement-portal/internal/ingest"
	"github.com/campushire/placement-portal/internal/jdparser"
	"github.com/campushire/placement-portal/internal/pipeline"
	repo "github.com/campushire/placement-portal/internal/repository"
	svc "github.com/campushire/placement-portal/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		svc.RequestIDInterceptor(),
		svc.LoggingInterceptor(logger),
	))

	profilesRepo := repo.NewProfileRepository(entc, logger)
	uploadsRepo := repo.NewUploadRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)
	postingsRepo := repo.NewPostingRepository(entc, logger)

	parser := jdparser.NewParser(logger)
	extractStage := pipeline.NewExtractStage(uploadsRepo, jobsRepo, parser, logger)
	parseStage := pipeline.NewParseStage(logger, jobsRepo, profilesRepo, postingsRepo)
	processor := pipeline.NewProcessor(logger, extractStage, parseStage)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	profilesService := svc.NewProfilesService(profilesRepo, logger)
	v1.RegisterProfilesServiceServer(grpcServer, profilesService)

	parserService := svc.NewParserService(parser, logger)
	v1.RegisterParserServiceServer(grpcServer, parserService)

	ingestor := ingest.NewFSIngestor(profilesRepo, uploadsRepo, logger)
	ingestionService := svc.NewIngestionService(ingestor, queue, profilesRepo, jobsRepo, logger)
	v1.RegisterIngestionServiceServer(grpcServer, ingestionService)

	postingsService := svc.NewPostingsService(postingsRepo, logger)
	v1.RegisterPostingsServiceServer(grpcServer, postingsService)

	exportService := svc.NewExportService(export.NewService(postingsRepo, logger), logger)
	v1.RegisterExportServiceServer(grpcServer, exportService)

	sweeper := expiry.New(postingsRepo, cfg.Expiry.CronSpec, logger)
	if err := sweeper.Start(ctx); err != nil {
		logger.Error("failed to start expiry sweeper", "error", err)
		os.Exit(1)
	}
	defer sweeper.Stop()

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("placement-portal listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
