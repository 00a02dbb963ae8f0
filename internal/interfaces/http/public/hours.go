package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
	"github.com/dkellner85/poi-console-services/api/internal/interfaces/http/common"
)

// hoursTodayHandler serves the effective hours for a calendar day. Without a
// date parameter the query service answers for the current day in the POI's
// own timezone.
func (h *Handler) hoursTodayHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "slug is required")
			return
		}

		var date hours.Date
		if dateParam := strings.TrimSpace(r.URL.Query().Get("date")); dateParam != "" {
			parsed, err := hours.ParseDate(dateParam)
			if err != nil {
				common.WriteError(h.logger, w, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
				return
			}
			date = parsed
		}

		day, err := h.hoursQueries.EffectiveDay(ctx, slug, date)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "POI not found")
				return
			}
			h.logger.Errorw("public hours fetch failed", "slug", slug, "date", date.String(), "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to resolve hours")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, day)
	}
}
