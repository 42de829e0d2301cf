package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"coliving/internal/auth"
	"coliving/internal/config"
	"coliving/internal/handler"
	"coliving/internal/matching"
	"coliving/internal/metrics"
	"coliving/internal/middleware"
	"coliving/internal/repository/postgres"
	"coliving/internal/service"
	serviceAuth "coliving/internal/service/auth"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create JWT verifier for Supabase authentication
	jwtVerifier, err := auth.NewJWTVerifier(ctx, cfg.SupabaseJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", postgres.MaxConns,
		"min_conns", postgres.MinConns,
	)

	// Repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	profileRepo := postgres.NewPreferenceProfileRepository(repoConfig)
	tenantDirectory := postgres.NewTenantDirectory(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)

	// Matching engine
	weights, err := matching.LoadWeights(cfg.MatchingWeightsFile)
	if err != nil {
		log.Fatalf("Failed to load matching weights: %v", err)
	}
	ranker := matching.NewRanker(matching.NewScorer(weights), cfg.ScoringWorkers)
	logger.Info("matching engine initialized",
		"weights_file", cfg.MatchingWeightsFile,
		"scoring_workers", cfg.ScoringWorkers,
	)

	// Services
	m := metrics.New(prometheus.DefaultRegisterer)
	authorizer := serviceAuth.NewDirectoryAuthorizer(tenantDirectory)
	profileService := service.NewPreferenceProfileService(profileRepo, txManager, m, logger)
	matchService := service.NewMatchService(profileRepo, txManager, ranker, m, logger)

	rateLimiter := middleware.NewRateLimiter(cfg.MatchRatePerSecond, cfg.MatchRateBurst, logger)

	router := &handler.Router{
		Health:      handler.NewHealthHandler(pool, logger),
		Preferences: handler.NewPreferenceProfileHandler(profileService, authorizer, logger),
		Matches:     handler.NewMatchHandler(matchService, authorizer, logger),
		Metrics:     promhttp.Handler(),
		Auth:        middleware.Auth(jwtVerifier, logger),
		RateLimit:   rateLimiter.Middleware,
	}

	logger.Info("services initialized")

	// Order: CORS → Logging → Recovery → Routes (auth applied per /api/ subtree)
	var h http.Handler = router.Handler()
	h = middleware.Recovery(logger)(h)
	h = middleware.Logging(logger)(h)

	// CORS - outermost so OPTIONS pre-flight requests never reach auth
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
