package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dkellner85/poi-console-services/api/internal/interfaces/http/common"
	publicapp "github.com/dkellner85/poi-console-services/api/internal/public/application"
)

func (h *Handler) suggestionCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "slug is required")
			return
		}

		var req suggestionCreateRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		suggestion, err := h.suggestionCommands.Submit(ctx, publicapp.SubmitSuggestionCommand{
			POISlug:     slug,
			Field:       req.Field,
			Message:     req.Message,
			ContactMail: req.ContactMail,
			ClientIP:    clientIP(r),
		})
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "POI not found")
				return
			}
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		go h.notifySuggestionReceived(context.Background(), *suggestion)

		common.WriteJSON(h.logger, w, http.StatusCreated, suggestionCreateResponse{
			ID:          suggestion.ID,
			POISlug:     suggestion.POISlug,
			Field:       suggestion.Field,
			SubmittedAt: suggestion.SubmittedAt,
		})
	}
}

// clientIP prefers the first forwarded address so suggestions keep their
// origin behind the reverse proxy.
func clientIP(r *http.Request) string {
	if forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
