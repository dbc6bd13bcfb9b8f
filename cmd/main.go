package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/multierr"

	"github.com/sbilibin2017/gw-training-log/docs"
	"github.com/sbilibin2017/gw-training-log/internal/facades"
	"github.com/sbilibin2017/gw-training-log/internal/handlers"
	"github.com/sbilibin2017/gw-training-log/internal/healthcheck"
	"github.com/sbilibin2017/gw-training-log/internal/jwt"
	"github.com/sbilibin2017/gw-training-log/internal/logger"
	"github.com/sbilibin2017/gw-training-log/internal/metrics"
	"github.com/sbilibin2017/gw-training-log/internal/middlewares"
	"github.com/sbilibin2017/gw-training-log/internal/migrations"
	"github.com/sbilibin2017/gw-training-log/internal/models"
	"github.com/sbilibin2017/gw-training-log/internal/repositories"
	"github.com/sbilibin2017/gw-training-log/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string
	logFile  string
	grpcPort string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	reportCacheTTL    time.Duration

	kafkaBrokers []string
	kafkaTopic   string

	jwtSecretKey string
	jwtExp       time.Duration

	credentialsFile string
}

// @title gw-training-log API
// @version 1.0.0
// @description Personal training log: exercise sets, body measurements, nutrition intake and trend reports
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath, healthProbe := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if healthProbe {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := probe(ctx, net.JoinHostPort("localhost", cfg.grpcPort)); err != nil {
			log.Fatalf("health check failed: %v", err)
		}
		return
	}

	printBuildInfo()

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// whether the process should only probe a running instance.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	h := flag.Bool("healthcheck", false, "Query the gRPC health service of a running instance and exit")
	flag.Parse()
	return *c, *h
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.logFile = getEnv("APP_LOG_FILE", "")
	cfg.grpcPort = getEnv("GRPC_PORT", "50051")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	ttl, err := getInt("REPORT_CACHE_TTL_SECOND", "60")
	if err != nil {
		return
	}
	cfg.reportCacheTTL = time.Duration(ttl) * time.Second

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "training-log.entries")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExp, err := getInt("JWT_EXP_SECOND", "3600")
	if err != nil {
		return
	}
	cfg.jwtExp = time.Duration(jwtExp) * time.Second

	cfg.credentialsFile = getEnv("CREDENTIALS_FILE", "credentials.yaml")

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, gRPC health server and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) (err error) {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel, cfg.logFile); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			err = multierr.Append(err, closers[i]())
		}
	}()

	// Static credentials
	credentials, err := repositories.LoadCredentialRepository(cfg.credentialsFile)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}

	// Metrics
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("training_log", "http", promRegistry)

	// gRPC health server
	healthServer := healthcheck.NewServer()

	// Connect to PostgreSQL. An unreachable store is logged and the service
	// keeps running; every store call then fails with 500.
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	closers = append(closers, db.Close)
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	dbReady := healthServer.Probe(pingCtx, db)
	cancelPing()
	if !dbReady {
		logger.Log.Errorw("PostgreSQL is unreachable, store operations will fail")
	} else if err := migrations.Apply(ctx, db); err != nil {
		logger.Log.Errorw("failed to apply migrations", "error", err)
		healthServer.SetServing(false)
	}

	// Connect to Redis. The report cache is skipped when Redis is unreachable.
	var (
		reportInvalidator services.ReportInvalidator
		reportCache       services.ReportCache
	)
	rdb := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.redisHost, strconv.Itoa(cfg.redisPort)),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	closers = append(closers, rdb.Close)
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis is unreachable, report cache disabled", "error", err)
	} else {
		cacheRepo := repositories.NewReportCacheRepository(rdb, cfg.reportCacheTTL)
		reportInvalidator = cacheRepo
		reportCache = cacheRepo
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.kafkaBrokers...),
			Topic:                  cfg.kafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		closers = append(closers, w.Close)
		kafkaWriter = w
		logger.Log.Infow("Kafka writer configured", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.jwtSecretKey), jwt.WithExpiration(cfg.jwtExp))

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	exerciseReadRepo := repositories.NewExerciseReadRepository(db, txGetter)
	measurementReadRepo := repositories.NewMeasurementReadRepository(db, txGetter)
	nutritionReadRepo := repositories.NewNutritionReadRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(credentials, tokens)
	entryService := services.NewEntryService(services.EntryRepositories{
		ExerciseWriter:    repositories.NewExerciseWriteRepository(db, txGetter),
		ExerciseReader:    exerciseReadRepo,
		MeasurementWriter: repositories.NewMeasurementWriteRepository(db, txGetter),
		MeasurementReader: measurementReadRepo,
		NutritionWriter:   repositories.NewNutritionWriteRepository(db, txGetter),
		NutritionReader:   nutritionReadRepo,
	}, reportInvalidator, kafkaWriter, services.WithAfterCommit(middlewares.AfterCommit))
	reportService := services.NewReportService(exerciseReadRepo, measurementReadRepo, nutritionReadRepo, reportCache)

	// Setup router
	r := chi.NewRouter()
	r.Use(middlewares.PanicRecovery(metricsManager))
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.RequestMetrics(metricsManager))

	// Public routes
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Get("/catalog", handlers.NewCatalogHandler(models.DefaultCatalog()))
	r.Get("/entries/{kind}/latest", handlers.NewLatestEntryHandler(entryService))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/entries/exercise", handlers.NewAddExerciseHandler(entryService))
		r.Post("/entries/measurement", handlers.NewAddMeasurementHandler(entryService))
		r.Post("/entries/nutrition", handlers.NewAddNutritionHandler(entryService))
	})

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Get("/report", handlers.NewReportHandler(reportService))
		r.Get("/report/charts", handlers.NewReportChartsHandler(reportService))
	})

	r.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))

	docs.SwaggerInfo.Host = net.JoinHostPort(cfg.appHost, cfg.appPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", docs.SwaggerInfo.Host)),
	))

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.appHost, cfg.appPort),
		Handler: r,
	}

	grpcLis, err := net.Listen("tcp", net.JoinHostPort(cfg.appHost, cfg.grpcPort))
	if err != nil {
		return fmt.Errorf("listen gRPC: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		if err := healthServer.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC health server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	metricsManager.GaugeLifeSignal.Set(1)

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
	}

	metricsManager.GaugeLifeSignal.Set(0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
		serveErr = multierr.Append(serveErr, err)
	}
	healthServer.Stop()

	logger.Log.Info("Servers stopped")
	return serveErr
}

// probe asks the gRPC health service at addr whether the service is serving.
func probe(ctx context.Context, addr string) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	serving, err := facades.NewHealthGRPCFacade(healthpb.NewHealthClient(conn)).IsServing(ctx, healthcheck.ServiceName)
	if err != nil {
		return err
	}
	if !serving {
		return errors.New("service is not serving")
	}
	return nil
}
