package public

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	publicapp "github.com/dkellner85/poi-console-services/api/internal/public/application"
)

// defaultSuggestionRateLimit caps suggestion submissions per client IP and
// minute when no explicit limit is configured.
const defaultSuggestionRateLimit = 5

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger              *zap.SugaredLogger
	poiQueries          publicapp.POIQueryService
	hoursQueries        publicapp.HoursQueryService
	suggestionCommands  publicapp.SuggestionCommandService
	httpClient          *http.Client
	webhookEndpoint     string
	webhookChannel      string
	adminConsoleBaseURL string
	failedNotifications *mongo.Collection
	suggestionRateLimit int
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger              *zap.SugaredLogger
	POIQueries          publicapp.POIQueryService
	HoursQueries        publicapp.HoursQueryService
	SuggestionCommands  publicapp.SuggestionCommandService
	HTTPClient          *http.Client
	WebhookEndpoint     string
	WebhookChannel      string
	AdminConsoleBaseURL string
	FailedNotifications *mongo.Collection
	SuggestionRateLimit int
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	rateLimit := cfg.SuggestionRateLimit
	if rateLimit <= 0 {
		rateLimit = defaultSuggestionRateLimit
	}
	return &Handler{
		logger:              cfg.Logger,
		poiQueries:          cfg.POIQueries,
		hoursQueries:        cfg.HoursQueries,
		suggestionCommands:  cfg.SuggestionCommands,
		httpClient:          cfg.HTTPClient,
		webhookEndpoint:     cfg.WebhookEndpoint,
		webhookChannel:      cfg.WebhookChannel,
		adminConsoleBaseURL: cfg.AdminConsoleBaseURL,
		failedNotifications: cfg.FailedNotifications,
		suggestionRateLimit: rateLimit,
	}
}

// Register mounts all public routes onto the router. The suggestion endpoint
// is the only unauthenticated write, so it sits behind a per-IP throttle.
func (h *Handler) Register(r chi.Router) {
	r.Get("/pois", h.poiListHandler())
	r.Get("/pois/{slug}", h.poiDetailHandler())
	r.Get("/pois/{slug}/hours/today", h.hoursTodayHandler())
	r.With(httprate.LimitByIP(h.suggestionRateLimit, time.Minute)).
		Post("/pois/{slug}/suggestions", h.suggestionCreateHandler())
}
