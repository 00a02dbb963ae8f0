package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dkellner85/poi-console-services/api/internal/interfaces/http/common"
	publicapp "github.com/dkellner85/poi-console-services/api/internal/public/application"
)

func (h *Handler) poiListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		poiType, err := common.NormalizePOIType(query.Get("type"))
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}
		category := common.CanonicalCategoryCode(query.Get("category"))
		tag := strings.ToLower(strings.TrimSpace(query.Get("tag")))
		keyword := strings.TrimSpace(query.Get("keyword"))
		sortKey := strings.TrimSpace(query.Get("sort"))

		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 20)

		filter := publicapp.POIFilter{
			Type:     poiType,
			Category: category,
			Tag:      tag,
			Keyword:  keyword,
		}
		paging := publicapp.Paging{Page: page, Limit: limit, Sort: sortKey}

		pois, err := h.poiQueries.List(ctx, filter, paging)
		if err != nil {
			h.logger.Errorw("public poi list failed", "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to list POIs")
			return
		}

		items := make([]poiSummaryResponse, 0, len(pois))
		for _, poi := range pois {
			items = append(items, buildPOISummaryResponse(poi))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, poiListResponse{
			Items: items,
			Page:  page,
			Limit: limit,
			Total: len(items),
		})
	}
}

func (h *Handler) poiDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "slug is required")
			return
		}

		poi, err := h.poiQueries.Detail(ctx, slug)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				common.WriteError(h.logger, w, http.StatusNotFound, "POI not found")
				return
			}
			h.logger.Errorw("public poi detail fetch failed", "slug", slug, "error", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to fetch POI")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, poiDomainToDetailResponse(*poi))
	}
}
