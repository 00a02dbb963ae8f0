package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	adminapp "github.com/dkellner85/poi-console-services/api/internal/admin/application"
	"github.com/dkellner85/poi-console-services/api/internal/interfaces/http/common"
)

func (h *Handler) suggestionListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		queryValues := r.URL.Query()
		limit, _ := common.ParsePositiveInt(queryValues.Get("limit"), 50)
		page, _ := common.ParsePositiveInt(queryValues.Get("page"), 1)

		suggestions, err := h.suggestionService.List(ctx, adminapp.Paging{Page: page, Limit: limit})
		if err != nil {
			h.logger.Errorw("admin suggestion list failed", "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to list suggestions")
			return
		}

		items := make([]adminSuggestionResponse, 0, len(suggestions))
		for _, suggestion := range suggestions {
			items = append(items, adminSuggestionDomainToResponse(suggestion))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, adminSuggestionListResponse{Items: items})
	}
}

func (h *Handler) suggestionDismissHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid suggestion id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.suggestionService.Dismiss(ctx, idParam); err != nil {
			h.logger.Errorw("admin suggestion dismiss failed", "suggestionId", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"dismissed": true})
	}
}
