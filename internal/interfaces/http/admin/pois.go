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

	adminapp "github.com/dkellner85/poi-console-services/api/internal/admin/application"
	admindomain "github.com/dkellner85/poi-console-services/api/internal/admin/domain"
	"github.com/dkellner85/poi-console-services/api/internal/interfaces/http/common"
)

func (h *Handler) poiListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		queryValues := r.URL.Query()
		poiType, err := common.NormalizePOIType(queryValues.Get("type"))
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}
		category := common.CanonicalCategoryCode(queryValues.Get("category"))
		keyword := strings.TrimSpace(queryValues.Get("keyword"))
		limit, _ := common.ParsePositiveInt(queryValues.Get("limit"), 20)

		filter := adminapp.POIFilter{Type: poiType, Category: category, Keyword: keyword}
		paging := adminapp.Paging{Limit: limit}

		pois, err := h.poiService.List(ctx, filter, paging)
		if err != nil {
			h.logger.Errorw("admin poi list failed", "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to list POIs")
			return
		}

		items := make([]adminPOIResponse, 0, len(pois))
		for _, poi := range pois {
			items = append(items, adminPOIDomainToResponse(poi))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, adminPOIListResponse{Items: items})
	}
}

func (h *Handler) poiDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid POI id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		poi, err := h.poiService.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "POI not found")
				return
			}
			h.logger.Errorw("admin poi detail fetch failed", "poiId", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to fetch POI")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, adminPOIDomainToResponse(*poi))
	}
}

func (h *Handler) poiCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertPOIRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}

		cmd, err := h.buildPOICommand(req)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		poi, err := h.poiService.Create(ctx, cmd)
		if err != nil {
			h.logger.Errorw("admin poi create failed", "error", err)
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, adminPOIDomainToResponse(*poi))
	}
}

func (h *Handler) poiUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid POI id")
			return
		}

		var req upsertPOIRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}

		cmd, err := h.buildPOICommand(req)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		poi, err := h.poiService.Update(ctx, idParam, cmd)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "POI not found")
				return
			}
			h.logger.Errorw("admin poi update failed", "poiId", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, adminPOIDomainToResponse(*poi))
	}
}

func (h *Handler) formSchemaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		poiType, err := common.NormalizePOIType(r.URL.Query().Get("type"))
		if err != nil || poiType == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "a valid type query parameter is required")
			return
		}

		sections, err := adminapp.FormSchema(admindomain.POIType(poiType))
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"type": poiType, "sections": sections})
	}
}

func (h *Handler) photoUploadURLHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if _, err := primitive.ObjectIDFromHex(idParam); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid POI id")
			return
		}

		var req photoUploadURLRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}
		if err := h.validate.Struct(req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if _, err := h.poiService.Detail(ctx, idParam); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "POI not found")
				return
			}
			h.logger.Errorw("admin photo upload-url poi fetch failed", "poiId", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to fetch POI")
			return
		}

		ticket, err := h.photos.UploadURL(ctx, idParam, req.ContentType)
		if err != nil {
			h.logger.Errorw("admin photo upload-url issue failed", "poiId", idParam, "error", err)
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, ticket)
	}
}
