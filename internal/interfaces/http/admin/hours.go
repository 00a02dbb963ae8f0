package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
	"github.com/dkellner85/poi-console-services/api/internal/interfaces/http/common"
)

// hoursReplaceHandler swaps the whole hours document. Partial edits happen
// client side; the server only ever sees and validates the full document.
func (h *Handler) hoursReplaceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid POI id")
			return
		}

		var doc hours.HoursDocument
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&doc); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed hours document")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		fieldErrs, err := h.poiService.ReplaceHours(ctx, idParam, doc)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "POI not found")
				return
			}
			h.logger.Errorw("admin hours replace failed", "poiId", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to save hours")
			return
		}
		if len(fieldErrs) > 0 {
			common.WriteJSON(h.logger, w, http.StatusUnprocessableEntity, hoursValidationResponse{Errors: fieldErrs})
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"saved": true})
	}
}

// hoursResolveHandler answers the console's preview question: what are the
// effective hours on this date, and which layer decided them.
func (h *Handler) hoursResolveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid POI id")
			return
		}

		dateParam := strings.TrimSpace(r.URL.Query().Get("date"))
		date, err := hours.ParseDate(dateParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resolution, err := h.poiService.ResolveDay(ctx, idParam, date)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "POI not found")
				return
			}
			h.logger.Errorw("admin hours resolve failed", "poiId", idParam, "date", dateParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to resolve hours")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, resolution)
	}
}
