package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Notifuse/sitebuilder/config"
	"github.com/Notifuse/sitebuilder/internal/database"
	"github.com/Notifuse/sitebuilder/internal/domain"
	httpHandler "github.com/Notifuse/sitebuilder/internal/http"
	"github.com/Notifuse/sitebuilder/internal/http/middleware"
	"github.com/Notifuse/sitebuilder/internal/repository"
	"github.com/Notifuse/sitebuilder/internal/service"
	"github.com/Notifuse/sitebuilder/pkg/cache"
	"github.com/Notifuse/sitebuilder/pkg/logger"
	"github.com/Notifuse/sitebuilder/pkg/styleset"
	"github.com/Notifuse/sitebuilder/pkg/tracing"

	"contrib.go.opencensus.io/integrations/ocsql"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	// Getters for app components accessed in tests
	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB
	GetPageRepository() domain.PageRepository
	GetElementRepository() domain.ElementRepository

	// Server status methods
	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	// Methods for initialization steps
	InitTracing() error
	InitDB() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error

	// Graceful shutdown methods
	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
	GetShutdownContext() context.Context
}

// App encapsulates the application dependencies and configuration
type App struct {
	config  *config.Config
	logger  logger.Logger
	db      *sql.DB
	tracing *tracing.Provider

	// Repositories
	pageRepo    domain.PageRepository
	elementRepo domain.ElementRepository

	// Services
	styleCache          *cache.InMemoryCache[*domain.ResolvedStyle]
	pageService         *service.PageService
	elementStyleService *service.ElementStyleService

	// HTTP handlers
	mux    *http.ServeMux
	server *http.Server

	// Server synchronization
	serverMu      sync.RWMutex
	serverStarted chan struct{}

	// Graceful shutdown management
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64
	requestWg       sync.WaitGroup
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 60 * time.Second
	}

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: shutdownTimeout,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing and metrics exporters
func (a *App) InitTracing() error {
	provider, err := tracing.Init(&a.config.Tracing, a.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	a.tracing = provider

	if a.config.Tracing.Enabled {
		a.logger.WithField("exporters", provider.Exporters()).
			WithField("sampling_rate", a.config.Tracing.SamplingProbability).
			Info("Tracing initialized successfully")
	}
	return nil
}

// InitDB initializes the database connection and schema
func (a *App) InitDB() error {
	// Skip if database already set (e.g., by mock)
	if a.db != nil {
		return nil
	}

	dbCfg := &a.config.Database
	a.logger.WithFields(map[string]interface{}{
		"host":    dbCfg.Host,
		"port":    dbCfg.Port,
		"user":    dbCfg.User,
		"dbname":  dbCfg.DBName,
		"sslmode": dbCfg.SSLMode,
	}).Info("Connecting to database")

	if err := database.EnsureDatabaseExists(database.GetPostgresDSN(dbCfg), dbCfg.DBName); err != nil {
		a.logger.WithField("error", err.Error()).Error("Failed to ensure database exists")
		return fmt.Errorf("failed to ensure database exists: %w", err)
	}

	// If tracing is enabled, wrap the postgres driver
	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := sql.Open(driverName, database.GetSystemDSN(dbCfg))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := database.InitializeDatabase(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	maxOpen, maxIdle, maxLifetime := database.GetConnectionPoolSettings(dbCfg, a.config.Environment)
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)

	a.db = db
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.pageRepo = repository.NewPageRepository(a.db)
	a.elementRepo = repository.NewElementRepository(a.db)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	if a.pageRepo == nil || a.elementRepo == nil {
		return fmt.Errorf("repositories must be initialized before services")
	}

	builder := a.config.Builder

	a.pageService = service.NewPageService(a.pageRepo, a.logger, builder.SlugMaxAttempts)

	a.styleCache = cache.NewInMemoryCache[*domain.ResolvedStyle](builder.StyleCacheCleanupInterval)
	a.elementStyleService = service.NewElementStyleService(service.ElementStyleServiceConfig{
		Repository:     a.elementRepo,
		PageRepository: a.pageRepo,
		Cache:          a.styleCache,
		CacheTTL:       builder.StyleCacheTTL,
		Breakpoints: styleset.Breakpoints{
			TabletMin:  builder.TabletMinWidth,
			DesktopMin: builder.DesktopMinWidth,
		},
		Logger: a.logger,
	})

	return nil
}

// InitHandlers initializes all HTTP handlers and routes
func (a *App) InitHandlers() error {
	if a.pageService == nil || a.elementStyleService == nil {
		return fmt.Errorf("services must be initialized before handlers")
	}

	// Create a new ServeMux to avoid route conflicts on restart
	a.mux = http.NewServeMux()

	httpHandler.NewPageHandler(a.pageService, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewElementHandler(a.elementStyleService, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewElementStyleHandler(a.elementStyleService, a.logger).RegisterRoutes(a.mux)

	a.mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	return nil
}

// handler wraps the mux with the server middleware chain
func (a *App) handler() http.Handler {
	var handler http.Handler = a.mux

	handler = a.gracefulShutdownMiddleware(handler)

	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
		a.logger.Info("OpenCensus tracing middleware enabled")
	}

	return middleware.NewCORSMiddleware(a.config.Server.CORSAllowOrigin)(handler)
}

// Start starts the HTTP server
func (a *App) Start() error {
	handler := a.handler()

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	if a.serverStarted != nil {
		select {
		case <-a.serverStarted:
		default:
			close(a.serverStarted)
		}
	}
	a.serverStarted = make(chan struct{})

	a.server = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server := a.server
	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	close(serverStarted)

	if a.config.Server.SSL.Enabled {
		a.logger.WithField("cert_file", a.config.Server.SSL.CertFile).Info("SSL enabled")
		return server.ListenAndServeTLS(a.config.Server.SSL.CertFile, a.config.Server.SSL.KeyFile)
	}

	return server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server == nil {
		a.logger.Info("No server to shutdown")
		return a.cleanupResources(ctx)
	}

	a.logger.WithField("active_requests", a.getActiveRequestCount()).Info("Active requests at shutdown start")

	shutdownTimeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < shutdownTimeout {
			shutdownTimeout = max(remaining-time.Second, 0)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	serverShutdownDone := make(chan error, 1)
	go func() {
		a.logger.WithField("timeout", shutdownTimeout.String()).Info("Starting HTTP server shutdown")
		serverShutdownDone <- server.Shutdown(shutdownCtx)
	}()

	requestsDone := make(chan struct{})
	go func() {
		a.requestWg.Wait()
		close(requestsDone)
	}()

	var shutdownErr error
	select {
	case err := <-serverShutdownDone:
		shutdownErr = err
		a.logger.Info("HTTP server shutdown completed")
	case <-shutdownCtx.Done():
		a.logger.Warn("Shutdown timeout reached")
		shutdownErr = fmt.Errorf("shutdown timeout exceeded")
	}

	if shutdownErr == nil {
		select {
		case <-requestsDone:
		case <-time.After(2 * time.Second):
			if activeCount := a.getActiveRequestCount(); activeCount > 0 {
				a.logger.WithField("active_requests", activeCount).Warn("Some requests still active, proceeding with shutdown")
			}
		}
	}

	if cleanupErr := a.cleanupResources(ctx); cleanupErr != nil {
		a.logger.WithField("error", cleanupErr.Error()).Error("Error during resource cleanup")
		if shutdownErr == nil {
			shutdownErr = cleanupErr
		}
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr.Error()).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}

	return shutdownErr
}

// cleanupResources stops the style cache, flushes exporters and closes the database
func (a *App) cleanupResources(ctx context.Context) error {
	a.logger.Info("Cleaning up resources...")

	if a.styleCache != nil {
		a.styleCache.Stop()
		stats := a.styleCache.Stats()
		a.logger.WithFields(map[string]interface{}{
			"cache_hits":   stats.Hits,
			"cache_misses": stats.Misses,
		}).Info("Style cache stopped")
	}

	if a.tracing != nil {
		if err := a.tracing.Shutdown(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Error("Failed to flush tracing exporters")
		}
	}

	if a.db != nil {
		if a.config.Tracing.Enabled {
			if err := ocsql.RecordStats(a.db, 5*time.Second); err != nil {
				a.logger.WithField("error", err.Error()).Error("Failed to record final database stats for tracing")
			}
		}

		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error closing database connection")
			return err
		}
	}

	a.logger.Info("Resource cleanup completed")
	return nil
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created.
// Returns false if ctx expires first.
func (a *App) WaitForServerStart(ctx context.Context) bool {
	for {
		a.serverMu.RLock()
		started := a.serverStarted
		created := a.server != nil
		a.serverMu.RUnlock()

		if created {
			return true
		}

		select {
		case <-started:
			if a.IsServerCreated() {
				return true
			}
		case <-ctx.Done():
			return false
		}
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting sitebuilder application")

	if err := a.InitTracing(); err != nil {
		return err
	}

	if err := a.InitDB(); err != nil {
		return err
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

func (a *App) GetPageRepository() domain.PageRepository {
	return a.pageRepo
}

func (a *App) GetElementRepository() domain.ElementRepository {
	return a.elementRepo
}

func (a *App) incrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, 1)
	a.requestWg.Add(1)
}

func (a *App) decrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, -1)
	a.requestWg.Done()
}

func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// GetActiveRequestCount returns the current number of active requests
func (a *App) GetActiveRequestCount() int64 {
	return a.getActiveRequestCount()
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
	a.logger.WithField("shutdown_timeout", timeout.String()).Info("Shutdown timeout configured")
}

// GetShutdownContext returns the context cancelled when shutdown starts
func (a *App) GetShutdownContext() context.Context {
	return a.shutdownCtx
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware tracks active requests and rejects new ones once shutdown starts
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			httpHandler.WriteJSONError(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		a.incrementActiveRequests()
		defer a.decrementActiveRequests()

		next.ServeHTTP(w, r)
	})
}

var _ AppInterface = (*App)(nil)
