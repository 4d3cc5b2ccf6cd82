package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	ezbookspb "github.com/ezbooks/ezbooks/gen/proto/ezbooks/v1"
	"github.com/ezbooks/ezbooks/internal/async"
	"github.com/ezbooks/ezbooks/internal/auth"
	"github.com/ezbooks/ezbooks/internal/common"
	"github.com/ezbooks/ezbooks/internal/docai"
	"github.com/ezbooks/ezbooks/internal/export"
	"github.com/ezbooks/ezbooks/internal/ingest"
	"github.com/ezbooks/ezbooks/internal/match"
	"github.com/ezbooks/ezbooks/internal/notify"
	"github.com/ezbooks/ezbooks/internal/pipeline"
	"github.com/ezbooks/ezbooks/internal/receipts"
	"github.com/ezbooks/ezbooks/internal/resolver"
	repo "github.com/ezbooks/ezbooks/internal/repository"
	svc "github.com/ezbooks/ezbooks/internal/server"
	"github.com/ezbooks/ezbooks/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	usersRepo := repo.NewUserRepository(entc, logger)
	vendorsRepo := repo.NewVendorRepository(entc, logger)
	cardsRepo := repo.NewCardRepository(entc, logger)
	jobsRepo := repo.NewJobRepository(entc, logger)
	categoriesRepo := repo.NewCategoryRepository(entc, logger)
	receiptsRepo := repo.NewReceiptRepository(entc, logger)

	if err := categoriesRepo.Seed(ctx); err != nil {
		logger.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}

	// Document analysis: Textract when AWS is configured, local OCR otherwise.
	var analyzer docai.DocumentAnalyzer
	var store storage.ObjectStore
	if cfg.Storage.Region != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Storage.Region))
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		analyzer = docai.NewTextractAnalyzer(textract.NewFromConfig(awsCfg), cfg.DocAI.Timeout, logger)
		if cfg.Storage.Bucket != "" {
			store = storage.NewS3Store(s3.NewFromConfig(awsCfg), cfg.Storage.Bucket, logger)
		}
	} else {
		analyzer = docai.NewTesseractAnalyzer(cfg.DocAI.TessdataDir, os.TempDir(), logger)
	}
	if store == nil {
		store = storage.NewDiskStore(cfg.Storage.DataDir, logger)
	}

	res := resolver.FromConfig(cfg.Resolver, logger)
	matcher := match.NewMatcher(vendorsRepo, cardsRepo, logger)
	pipe := pipeline.New(analyzer, res, matcher, logger)

	uploadSvc := receipts.NewService(receiptsRepo, vendorsRepo, store, pipe, logger)
	exportSvc := export.NewService(receiptsRepo, vendorsRepo, jobsRepo, logger)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(auth.UnaryInterceptor(cfg.Auth)),
	)

	ezbookspb.RegisterAuthServiceServer(grpcServer, svc.NewAuthService(usersRepo, cfg.Auth, logger))
	ezbookspb.RegisterVendorsServiceServer(grpcServer, svc.NewVendorsService(vendorsRepo, logger))
	ezbookspb.RegisterCardsServiceServer(grpcServer, svc.NewCardsService(cardsRepo, logger))
	ezbookspb.RegisterJobsServiceServer(grpcServer, svc.NewJobsService(jobsRepo, logger))
	ezbookspb.RegisterCategoriesServiceServer(grpcServer, svc.NewCategoriesService(categoriesRepo, logger))
	ezbookspb.RegisterReceiptsServiceServer(grpcServer, svc.NewReceiptsService(uploadSvc, receiptsRepo, pipe, logger))
	ezbookspb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	// Drop-folder ingestion, when configured.
	var queue async.Queue
	if len(cfg.Ingest.WatchDirs) > 0 && cfg.Ingest.UserID != "" {
		ingestUser, err := uuid.Parse(cfg.Ingest.UserID)
		if err != nil {
			logger.Error("INGEST_USER_ID must be a UUID", "value", cfg.Ingest.UserID)
			os.Exit(1)
		}
		ingestSvc := ingest.NewService(uploadSvc, receiptsRepo, logger)
		if cfg.Ingest.NotifyEmail != "" {
			ingestSvc = ingestSvc.WithNotifications(notify.NewMailer(cfg.SMTP, logger), cfg.Ingest.NotifyEmail)
		}
		queue = async.NewUploadQueue(ingestSvc.HandleJob, logger,
			async.WithWorkers(cfg.Ingest.Workers),
			async.WithQueueSize(cfg.Ingest.QueueSize),
		)
		go func() {
			err := ingestSvc.Run(ctx, ingestUser, ingest.WatchConfig{
				Roots:       cfg.Ingest.WatchDirs,
				InitialScan: true,
				Debounce:    500 * time.Millisecond,
			}, queue)
			if err != nil && ctx.Err() == nil {
				logger.Error("ingest watcher stopped", "error", err)
			}
		}()
	}

	logger.Info("ezbooksd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	if queue != nil {
		queue.Shutdown(context.Background())
	}
	grpcServer.GracefulStop()
}
