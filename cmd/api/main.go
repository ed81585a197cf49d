package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/profefranko/profefranko-api/config"
	"github.com/profefranko/profefranko-api/internal/cache"
	"github.com/profefranko/profefranko-api/internal/handlers"
	"github.com/profefranko/profefranko-api/internal/mailer"
	"github.com/profefranko/profefranko-api/internal/middleware"
	"github.com/profefranko/profefranko-api/internal/notify"
	"github.com/profefranko/profefranko-api/internal/repository"
	"github.com/profefranko/profefranko-api/internal/services"
	"github.com/profefranko/profefranko-api/pkg/db"
	"github.com/profefranko/profefranko-api/pkg/httpclient"
	"github.com/profefranko/profefranko-api/pkg/jwt"
	"github.com/profefranko/profefranko-api/pkg/logger"
	"github.com/profefranko/profefranko-api/pkg/metrics"
	"github.com/profefranko/profefranko-api/pkg/profiling"
	"github.com/profefranko/profefranko-api/pkg/storage"
	"github.com/profefranko/profefranko-api/pkg/tracing"
)

// registerFormRoutes registers the public form endpoints the site posts to.
func registerFormRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, submitRateLimiter *middleware.RateLimiter,
	contactHandler *handlers.ContactHandler,
	quoteHandler *handlers.QuoteHandler,
) {
	group.POST("/contact", submitRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), contactHandler.SubmitContact)
	group.OPTIONS("/contact", generalRateLimiter.Middleware(), contactHandler.ContactPreflight)
	group.POST("/event-quote", submitRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), quoteHandler.SubmitQuote)
}

// registerAdminRoutes registers back-office authentication and request
// management routes.
func registerAdminRoutes(
	router *gin.Engine,
	cfg *config.Config,
	authRateLimiter *middleware.RateLimiter,
	adminAuthHandler *handlers.AdminAuthHandler,
	adminRequestsHandler *handlers.AdminRequestsHandler,
	tokenManager *jwt.TokenManager,
) {
	// Skip admin routes entirely if JWT is not configured
	if tokenManager == nil {
		logger.Warn("Admin routes disabled: JWT_SECRET not configured")
		return
	}

	sessionMiddleware := middleware.AdminSessionMiddleware(tokenManager, cfg.AdminSession.CookieDomain, cfg.AdminSession.CookieSecure)

	auth := router.Group("/api/admin/auth")
	auth.POST("/login", authRateLimiter.Middleware(), adminAuthHandler.Login)
	auth.POST("/logout", adminAuthHandler.Logout)
	auth.GET("/session", sessionMiddleware, adminAuthHandler.Session)

	admin := router.Group("/api/admin")
	admin.Use(sessionMiddleware)
	admin.GET("/contacts", adminRequestsHandler.ListContacts)
	admin.PUT("/contacts/:reference/status", adminRequestsHandler.UpdateContactStatus)
	admin.GET("/quotes", adminRequestsHandler.ListQuotes)
	admin.PUT("/quotes/:reference/status", adminRequestsHandler.UpdateQuoteStatus)
}

// registerInternalRoutes exposes the same listings to server-to-server
// callers authenticated by a shared token.
func registerInternalRoutes(
	router *gin.Engine,
	cfg *config.Config,
	generalRateLimiter *middleware.RateLimiter,
	adminRequestsHandler *handlers.AdminRequestsHandler,
) {
	if cfg.Auth.InternalAPIToken == "" {
		logger.Warn("Internal API routes disabled: INTERNAL_API_TOKEN not configured")
		return
	}

	internal := router.Group("/api/internal")
	internal.Use(generalRateLimiter.Middleware(), middleware.InternalAPIAuthMiddleware(cfg.Auth.InternalAPIToken))
	internal.GET("/contacts", adminRequestsHandler.ListContacts)
	internal.GET("/quotes", adminRequestsHandler.ListQuotes)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Profe Franko API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.AlloyEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Continuous profiling (no-op unless enabled)
	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Error("Failed to initialize profiler", zap.Error(err))
	} else {
		defer profilerStop()
	}

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize PostgreSQL connection pool. In offline mode submissions are
	// still mailed, just not persisted.
	var pool *pgxpool.Pool
	if cfg.Database.WorkOffline {
		logger.Warn("Database disabled: submissions will be mailed but not persisted")
	} else {
		pool, err = db.NewPool(context.Background(), db.PoolConfig{
			URL:      cfg.Database.URL,
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
		}
		defer pool.Close()
	}

	// NOTE: Database migrations are run separately via the migrate command

	// Initialize the PDF archive client when a bucket is configured
	var archiveClient *storage.ArchiveClient
	if cfg.Archive.AccessKeyID != "" && cfg.Archive.SecretAccessKey != "" {
		archiveClient, err = storage.NewArchiveClient(
			cfg.Archive.AccessKeyID,
			cfg.Archive.SecretAccessKey,
			cfg.Archive.BucketName,
			cfg.Archive.Endpoint,
			cfg.Archive.Region,
		)
		if err != nil {
			logger.Fatal("Failed to initialize archive storage client", zap.Error(err))
		}
	}

	// Notification pipeline: composer renders the bodies and the PDF, the
	// mailer owns the SMTP transport
	composer := notify.NewComposer(cfg.Mail.LogoPath, cfg.Server.BaseURL)
	smtpMailer, err := mailer.NewSMTPMailer(cfg.SMTP, cfg.Mail)
	if err != nil {
		logger.Fatal("Failed to initialize SMTP mailer", zap.Error(err))
	}

	// Repository and admin listing cache
	var submissionRepo repository.SubmissionRepository
	if pool != nil {
		submissionRepo = repository.NewPostgresSubmissionRepository(pool)
	}
	listingCache := cache.NewSubmissionsCache(cfg.Cache.SubmissionsTTLSeconds)

	// Initialize HTTP client for external API calls
	httpClient := httpclient.NewStandardClient()

	// Initialize services
	adminRequestsService := services.NewAdminRequestsService(submissionRepo, listingCache)
	contactService := services.NewContactService(composer, smtpMailer, submissionRepo, adminRequestsService, cfg, httpClient)
	quoteService := services.NewQuoteService(composer, smtpMailer, submissionRepo, adminRequestsService, archiveClient, cfg, httpClient)
	adminAuthService := services.NewAdminAuthService(cfg)

	// Initialize handlers
	contactHandler := handlers.NewContactHandler(contactService)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	healthHandler := handlers.NewHealthHandler(cfg.SMTP.Host != "" && cfg.Mail.To != "")
	adminAuthHandler := handlers.NewAdminAuthHandler(adminAuthService)
	adminRequestsHandler := handlers.NewAdminRequestsHandler(adminRequestsService)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: only the site's origins may post the forms
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "x-internal-api-auth-token", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Required for admin session cookies
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters per endpoint class
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	submitRateLimiter := middleware.NewRateLimiter(5, 10)     // 5 req/sec, burst of 10 (prevent spam)
	authRateLimiter := middleware.NewRateLimiter(0.0334, 3)   // 2 req/min, burst of 3 (login abuse prevention)

	// API routes
	api := router.Group("/api")
	api.GET("/health", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	registerFormRoutes(api, generalRateLimiter, submitRateLimiter, contactHandler, quoteHandler)
	registerAdminRoutes(router, cfg, authRateLimiter, adminAuthHandler, adminRequestsHandler, adminAuthService.GetTokenManager())
	registerInternalRoutes(router, cfg, generalRateLimiter, adminRequestsHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
