package admin

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	adminapp "github.com/dkellner85/poi-console-services/api/internal/admin/application"
	"github.com/dkellner85/poi-console-services/api/internal/infrastructure/storage"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger            *zap.SugaredLogger
	poiService        adminapp.POIService
	suggestionService adminapp.SuggestionService
	photos            *storage.PhotoStore
	validate          *validator.Validate
}

// Config provides dependencies for Handler.
type Config struct {
	Logger            *zap.SugaredLogger
	POIService        adminapp.POIService
	SuggestionService adminapp.SuggestionService
	Photos            *storage.PhotoStore
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:            cfg.Logger,
		poiService:        cfg.POIService,
		suggestionService: cfg.SuggestionService,
		photos:            cfg.Photos,
		validate:          validator.New(),
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/pois", h.poiListHandler())
	r.Post("/pois", h.poiCreateHandler())
	r.Get("/pois/form-schema", h.formSchemaHandler())
	r.Get("/pois/{id}", h.poiDetailHandler())
	r.Put("/pois/{id}", h.poiUpdateHandler())
	r.Put("/pois/{id}/hours", h.hoursReplaceHandler())
	r.Get("/pois/{id}/hours/resolve", h.hoursResolveHandler())
	r.Post("/pois/{id}/photos/upload-url", h.photoUploadURLHandler())
	r.Get("/suggestions", h.suggestionListHandler())
	r.Delete("/suggestions/{id}", h.suggestionDismissHandler())
}
