package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/packetery/backend/docs"
	carrierapp "github.com/packetery/backend/internal/application/carrier"
	flashapp "github.com/packetery/backend/internal/application/flash"
	"github.com/packetery/backend/internal/application/labelprint"
	logapp "github.com/packetery/backend/internal/application/packetlog"
	settingsapp "github.com/packetery/backend/internal/application/settings"
	shipmentapp "github.com/packetery/backend/internal/application/shipment"
	"github.com/packetery/backend/internal/application/shipping"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/packetery/backend/internal/infrastructure/auth"
	"github.com/packetery/backend/internal/infrastructure/cache"
	"github.com/packetery/backend/internal/infrastructure/config"
	"github.com/packetery/backend/internal/infrastructure/logger"
	"github.com/packetery/backend/internal/infrastructure/packeta"
	"github.com/packetery/backend/internal/infrastructure/persistence"
	"github.com/packetery/backend/internal/infrastructure/printing"
	"github.com/packetery/backend/internal/infrastructure/scheduler"
	"github.com/packetery/backend/internal/infrastructure/storage"
	"github.com/packetery/backend/internal/infrastructure/telemetry"
	"github.com/packetery/backend/internal/interfaces/http/handler"
	"github.com/packetery/backend/internal/interfaces/http/middleware"
	"github.com/packetery/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			Packetery Backend API
//	@version		1.0
//	@description	Backend of the Packeta shipping plugin for WooCommerce stores.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	Packetery Support
//	@contact.email	support@packetery.com

//	@license.name	GPL-3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Packetery backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.ConfigFrom(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	shippingMetrics, err := telemetry.NewShippingMetrics(meterProvider.Meter("packetery"))
	if err != nil {
		log.Warn("Shipping metrics disabled", zap.Error(err))
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	dbTracing := telemetry.DefaultDBTracingConfig()
	dbTracing.Enabled = cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled
	dbTracing.LogFullSQL = !cfg.IsProduction()
	if cfg.Database.Driver == "sqlite" {
		dbTracing.DBSystem = "sqlite"
	}
	if err := telemetry.NewDBTracingPlugin(dbTracing, log).Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully")

	carrierRepo := persistence.NewGormCarrierRepository(db.DB)
	shipmentRepo := persistence.NewGormShipmentRepository(db.DB)
	optionRepo := persistence.NewGormOptionRepository(db.DB)
	logRepo := persistence.NewGormLogRepository(db.DB)

	// Transient store for label selections and flash messages
	store, err := cache.NewTransientStore(cfg.Redis, cfg.IsProduction(), log)
	if err != nil {
		log.Fatal("Failed to create transient store", zap.Error(err))
	}
	defer func() {
		_ = store.Close()
	}()

	archive := newArchive(ctx, cfg, log)

	// Handover sheet rendering
	pdfRenderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Printing.Timeout,
		ExecPath:       cfg.Printing.ChromePath,
		NoSandbox:      cfg.Printing.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		_ = pdfRenderer.Close()
	}()
	sheetRenderer := printing.NewHandoverRenderer(printing.NewTemplateEngine(), pdfRenderer, log)

	// Application services
	settingsService := settingsapp.NewSettingsService(optionRepo, log)
	logService := logapp.NewLogService(logRepo, log)
	flashService := flashapp.NewFlashService(store, log)
	carrierService := carrierapp.NewCarrierService(carrierRepo, log)

	packetaConfig := packetaConfigFrom(cfg.Packeta)
	packetaClient, err := packeta.NewClient(packetaConfig, settingsService, log)
	if err != nil {
		log.Fatal("Failed to create Packeta client", zap.Error(err))
	}
	if shippingMetrics != nil {
		packetaClient.WithObserver(shippingMetrics)
	}
	feedClient, err := packeta.NewFeedClient(packetaConfig, log)
	if err != nil {
		log.Fatal("Failed to create carrier feed client", zap.Error(err))
	}

	carrierSyncService := carrierapp.NewCarrierSyncService(carrierRepo, feedClient, optionRepo, settingsService, logService, log)
	carrierSyncService.SetShippingMetrics(shippingMetrics)
	shipmentService := shipmentapp.NewShipmentService(shipmentRepo, carrierService, log)
	submissionService := shipmentapp.NewPacketSubmissionService(shipmentRepo, carrierRepo, packetaClient, settingsService, logService, log)
	submissionService.SetShippingMetrics(shippingMetrics)
	handoverService := shipmentapp.NewHandoverService(shipmentRepo, carrierRepo, sheetRenderer, archive, settingsService, log)
	labelService := labelprint.NewLabelPrintService(store, shipmentRepo, packetaClient, settingsService, flashService, logService, archive, log)
	labelService.SetShippingMetrics(shippingMetrics)
	rateService := shipping.NewRateService(carrierRepo, settingsService, log)

	// Carrier list cron
	syncJob, err := scheduler.NewCarrierSyncJob(scheduler.FromConfig(cfg.Scheduler),
		scheduler.JobFunc(func(ctx context.Context, _ *scheduler.Job) error {
			_, err := carrierSyncService.Run(ctx)
			return err
		}), log)
	if err != nil {
		log.Fatal("Failed to create carrier sync job", zap.Error(err))
	}
	if err := syncJob.Start(ctx); err != nil {
		log.Fatal("Failed to start carrier sync job", zap.Error(err))
	}

	// HTTP
	middleware.SetupValidator()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tracerProvider.IsEnabled(),
	}))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfigFrom(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer limiter.Stop()
		engine.Use(middleware.RateLimit(limiter))
	}
	engine.Use(middleware.HTTPMetrics(meterProvider, log))

	jwtService := auth.NewJWTService(cfg.JWT)
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig), middleware.TracingAttributes())
	router.Handlers{
		Settings: handler.NewSettingsHandler(settingsService),
		Carriers: handler.NewCarrierHandler(carrierService, carrierSyncService),
		Orders:   handler.NewOrderHandler(shipmentService, submissionService, handoverService),
		Labels:   handler.NewLabelHandler(labelService),
		Flash:    handler.NewFlashHandler(flashService),
		Logs:     handler.NewLogHandler(logService),
		Rates:    handler.NewRateHandler(rateService),
	}.Mount(r)
	r.Setup()
	router.MountHealth(engine, r, handler.NewHealthHandler(db, log))
	router.MountSwagger(engine)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := syncJob.Stop(shutdownCtx); err != nil {
		log.Error("Carrier sync job did not stop", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Meter provider shutdown failed", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Tracer provider shutdown failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newArchive returns the S3 archive when storage is enabled, a no-op otherwise
func newArchive(ctx context.Context, cfg *config.Config, log *zap.Logger) shared.DocumentArchive {
	if !cfg.Storage.Enabled {
		return storage.NewNoopArchive(log)
	}
	s3Archive, err := storage.NewS3ObjectStorage(&cfg.Storage,
		storage.WithLogger(log),
		storage.WithPresignExpiration(24*time.Hour),
	)
	if err != nil {
		log.Fatal("Failed to create document archive", zap.Error(err))
	}
	if err := s3Archive.EnsureBucket(ctx); err != nil {
		log.Fatal("Archive bucket not available", zap.Error(err), zap.String("bucket", cfg.Storage.Bucket))
	}
	return s3Archive
}

func packetaConfigFrom(cfg config.PacketaConfig) *packeta.Config {
	c := packeta.NewConfig()
	if cfg.SOAPEndpoint != "" {
		c.SOAPEndpoint = cfg.SOAPEndpoint
	}
	if cfg.FeedBaseURL != "" {
		c.FeedBaseURL = cfg.FeedBaseURL
	}
	if cfg.Timeout > 0 {
		c.Timeout = cfg.Timeout
	}
	if cfg.MaxResponseSize > 0 {
		c.MaxResponseSize = cfg.MaxResponseSize
	}
	return c
}
