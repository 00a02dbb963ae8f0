package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	adminapp "github.com/dkellner85/poi-console-services/api/internal/admin/application"
	"github.com/dkellner85/poi-console-services/api/internal/auth"
	"github.com/dkellner85/poi-console-services/api/internal/config"
	"github.com/dkellner85/poi-console-services/api/internal/infrastructure/cache"
	mongodoc "github.com/dkellner85/poi-console-services/api/internal/infrastructure/mongo"
	"github.com/dkellner85/poi-console-services/api/internal/infrastructure/storage"
	adminhttp "github.com/dkellner85/poi-console-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/dkellner85/poi-console-services/api/internal/interfaces/http/common"
	publichttp "github.com/dkellner85/poi-console-services/api/internal/interfaces/http/public"
	publicapp "github.com/dkellner85/poi-console-services/api/internal/public/application"
)

// Server is the composition root. It owns the infrastructure clients,
// assembles the application services, and manages the HTTP lifecycle.
type Server struct {
	logger              *zap.SugaredLogger
	client              *mongo.Client
	database            *mongo.Database
	redis               *redis.Client
	photos              *storage.PhotoStore
	verifier            auth.TokenVerifier
	adminPOIService     adminapp.POIService
	adminSuggestions    adminapp.SuggestionService
	poiQueryService     publicapp.POIQueryService
	hoursQueryService   publicapp.HoursQueryService
	suggestionCommands  publicapp.SuggestionCommandService
	failedNotifications *mongo.Collection
	httpClient          *http.Client
	webhookEndpoint     string
	webhookChannel      string
	adminConsoleBaseURL string
	addr                string
	allowedOrigins      []string
	suggestionRateLimit int
}

// New assembles repositories, services, and handlers around the shared
// Mongo client. It is the only place infrastructure types meet application
// interfaces.
func New(cfg config.Config, client *mongo.Client, logger *zap.SugaredLogger) (*Server, error) {
	verifier, err := auth.NewJWTVerifier(cfg.JWTConfigs, cfg.JWTAudience)
	if err != nil {
		return nil, err
	}

	photos, err := storage.New(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.MinioBucket, cfg.UploadURLTTL)
	if err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	srv := &Server{
		logger:              logger,
		client:              client,
		database:            client.Database(cfg.MongoDatabase),
		redis:               redisClient,
		photos:              photos,
		verifier:            verifier,
		httpClient:          &http.Client{Timeout: cfg.WebhookTimeout},
		webhookEndpoint:     normaliseBaseURL(cfg.WebhookEndpoint),
		webhookChannel:      cfg.WebhookChannel,
		adminConsoleBaseURL: normaliseBaseURL(cfg.AdminConsoleBaseURL),
		addr:                cfg.Addr,
		allowedOrigins:      append([]string(nil), cfg.AllowedOrigins...),
		suggestionRateLimit: cfg.SuggestionRateLimit,
	}
	srv.failedNotifications = srv.database.Collection(cfg.FailedNotificationCollection)

	hoursCache := cache.New(redisClient, cfg.HoursCacheTTL)

	adminPOIRepo := mongodoc.NewAdminPOIRepository(srv.database, cfg.POICollection)
	srv.adminPOIService = adminapp.NewPOIService(adminPOIRepo, hoursCache, logger, cfg.Timezone)
	adminSuggestionRepo := mongodoc.NewAdminSuggestionRepository(srv.database, cfg.SuggestionCollection, cfg.POICollection)
	srv.adminSuggestions = adminapp.NewSuggestionService(adminSuggestionRepo)

	poiRepo := mongodoc.NewPOIRepository(srv.database, cfg.POICollection)
	srv.poiQueryService = publicapp.NewPOIQueryService(poiRepo)
	srv.hoursQueryService = publicapp.NewHoursQueryService(poiRepo, hoursCache, logger)
	suggestionRepo := mongodoc.NewSuggestionRepository(srv.database, cfg.SuggestionCollection, cfg.POICollection)
	srv.suggestionCommands = publicapp.NewSuggestionCommandService(poiRepo, suggestionRepo)

	return srv, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	if err := s.photos.EnsureBucket(context.Background()); err != nil {
		s.logger.Warnw("photo bucket check failed", "error", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:              s.logger,
		POIQueries:          s.poiQueryService,
		HoursQueries:        s.hoursQueryService,
		SuggestionCommands:  s.suggestionCommands,
		HTTPClient:          s.httpClient,
		WebhookEndpoint:     s.webhookEndpoint,
		WebhookChannel:      s.webhookChannel,
		AdminConsoleBaseURL: s.adminConsoleBaseURL,
		FailedNotifications: s.failedNotifications,
		SuggestionRateLimit: s.suggestionRateLimit,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:            s.logger,
		POIService:        s.adminPOIService,
		SuggestionService: s.adminSuggestions,
		Photos:            s.photos,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		adminHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Infow("HTTP server listening", "addr", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

func normaliseBaseURL(input string) string {
	trimmed := strings.TrimSpace(input)
	return strings.TrimRight(trimmed, "/")
}

// withCORS grants the configured origins access to the API.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler reports infrastructure reachability, not domain state.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// authMiddleware verifies the bearer token and stores the editor session in
// the request context. All admin routes sit behind it.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "a Bearer token is required")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "access token is empty")
			return
		}

		session, err := s.verifier.Verify(tokenString)
		if err != nil {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "invalid access token")
			return
		}

		ctx := commonhttp.ContextWithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// shutdown disconnects the infrastructure clients with a bounded timeout.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Errorw("MongoDB disconnect failed", "error", err)
	}
	if err := s.redis.Close(); err != nil {
		s.logger.Errorw("Redis close failed", "error", err)
	}
}

// waitForShutdown watches ListenAndServe and OS signals and drives the
// graceful stop.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalw("server exited unexpectedly", "error", err)
		}
	case sig := <-sigChan:
		srv.logger.Infow("signal received, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Errorw("server shutdown failed", "error", err)
		}
	}

	srv.shutdown(context.Background())
}
