package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hqvuong/microshop/shared/web"
	"github.com/redis/go-redis/v9"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if !web.CheckContext(r.Context(), h.logger) {
		web.RespondWithError(w, h.logger, http.StatusRequestTimeout, web.ReqCancelledMsg)
		return
	}

	cached, err := h.cache.Get(r.Context(), productsCacheKey).Result()
	if err == nil {
		var responses []productResponse
		if err := json.Unmarshal([]byte(cached), &responses); err == nil {
			web.RespondWithJSON(w, h.logger, http.StatusOK, responses)
			return
		}
		h.logger.Warn("failed to decode cached products", "error", err)
	} else if err != redis.Nil {
		h.logger.Warn("failed to read products cache", "error", err)
	}

	products, err := h.queries.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	responses, err := toProductResponses(products)
	if err != nil {
		h.logger.Error("failed to convert products", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	if data, err := json.Marshal(responses); err == nil {
		if err := h.cache.Set(r.Context(), productsCacheKey, data, productsCacheTTL).Err(); err != nil {
			h.logger.Warn("failed to write products cache", "error", err)
		}
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, responses)
}
