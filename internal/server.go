package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/gymsplit/internal/apperr"
	"github.com/2beens/gymsplit/internal/auth"
	"github.com/2beens/gymsplit/internal/config"
	"github.com/2beens/gymsplit/internal/customizations"
	"github.com/2beens/gymsplit/internal/db"
	"github.com/2beens/gymsplit/internal/exercises"
	"github.com/2beens/gymsplit/internal/middleware"
	"github.com/2beens/gymsplit/internal/misc"
	"github.com/2beens/gymsplit/internal/plan"
	"github.com/2beens/gymsplit/internal/schedule"
	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/internal/users"
	"github.com/2beens/gymsplit/internal/workouts"
)

const tokensCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config       *config.Config
	versionInfo  string
	dbPool       *pgxpool.Pool
	redisClient  *redis.Client
	tokenService *auth.TokenService

	// one template table shared by plan assembly and session start
	templates *schedule.Templates

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
	VersionInfo             string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	poolParams := db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	}

	if cfg.RunMigrations {
		if err := db.RunMigrations(db.ConnString(poolParams)); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		log.Debugln("db migrations done")
	}

	dbPool, err := db.NewDBPool(ctx, poolParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if cfg.RunMigrations {
		inserted, err := exercises.NewRepo(dbPool).Seed(ctx, exercises.Catalog())
		if err != nil {
			return nil, fmt.Errorf("seed exercise catalog: %w", err)
		}
		log.Debugf("exercise catalog seeded, %d new exercises", inserted)
	}

	promRegistry := metrics.SetupPrometheus(dbPool, cfg.PostgresDBName)
	metricsManager := metrics.NewManager("gymsplit", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymsplit-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:       cfg,
		versionInfo:  params.VersionInfo,
		dbPool:       dbPool,
		redisClient:  rdb,
		tokenService: auth.NewTokenService(cfg.AuthTokenTTL.Duration, rdb),
		templates:    schedule.DefaultTemplates(),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymsplit-router"))

	misc.NewHandler(s.versionInfo).SetupRoutes(r)

	usersRepo := users.NewRepo(s.dbPool)
	splitDaysRepo := schedule.NewRepo(s.dbPool)
	customizationsService := customizations.NewService(customizations.NewRepo(s.dbPool))

	api := r.PathPrefix("/api").Subrouter()

	usersHandler := users.NewHandler(
		users.NewService(usersRepo, s.tokenService, s.metricsManager),
	)
	usersHandler.SetupRoutes(
		api.PathPrefix("/auth").Subrouter(),
		middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"auth",
			s.config.LoginRateLimitAllowedPerMin,
			s.metricsManager,
		),
	)

	exercisesHandler := exercises.NewHandler(
		exercises.NewCachedRepo(exercises.NewRepo(s.dbPool)),
	)
	exercisesHandler.SetupRoutes(api.PathPrefix("/exercises").Subrouter())

	userRouter := api.PathPrefix("/user").Subrouter()
	planHandler := plan.NewHandler(
		plan.NewService(usersRepo, splitDaysRepo, customizationsService, s.templates),
	)
	planHandler.SetupRoutes(userRouter)
	customizations.NewHandler(customizationsService).SetupRoutes(userRouter)

	workoutsHandler := workouts.NewHandler(
		workouts.NewService(
			workouts.NewRepo(s.dbPool),
			splitDaysRepo,
			customizationsService,
			s.templates,
			s.metricsManager,
		),
	)
	workoutsHandler.SetupRoutes(api.PathPrefix("/workouts").Subrouter())

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(handleNotFound)

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenService)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.Timeout(s.config.RequestTimeout.Duration))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	apperr.WriteError(w, r, apperr.NotFound("Route not found"))
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	go s.cleanExpiredTokens(ctx)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) cleanExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(tokensCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tokenService.ScanAndClean(ctx)
		}
	}
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
