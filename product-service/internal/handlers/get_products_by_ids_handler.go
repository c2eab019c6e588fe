package handlers

import (
	"net/http"
	"strings"

	"github.com/hqvuong/microshop/shared/web"
	"github.com/jackc/pgx/v5/pgtype"
)

// GetProductsByIDs serves batch lookups for other services. Ids that do not
// match any product, including ones that are not valid uuids, are left out of
// the response rather than failing the whole request; callers that need
// completeness compare against what they asked for.
func (h *Handler) GetProductsByIDs(w http.ResponseWriter, r *http.Request) {
	if !web.CheckContext(r.Context(), h.logger) {
		web.RespondWithError(w, h.logger, http.StatusRequestTimeout, web.ReqCancelledMsg)
		return
	}

	rawIDs := strings.Split(r.URL.Query().Get("ids"), ",")
	ids := make([]pgtype.UUID, 0, len(rawIDs))
	for _, rawID := range rawIDs {
		rawID = strings.TrimSpace(rawID)
		if rawID == "" {
			continue
		}
		var id pgtype.UUID
		if err := id.Scan(rawID); err != nil {
			h.logger.Debug("skipping malformed product id", "id", rawID)
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		web.RespondWithJSON(w, h.logger, http.StatusOK, []productResponse{})
		return
	}

	products, err := h.queries.GetProductsByIDs(r.Context(), ids)
	if err != nil {
		h.logger.Error("failed to get products by ids", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	responses, err := toProductResponses(products)
	if err != nil {
		h.logger.Error("failed to convert products", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, responses)
}
