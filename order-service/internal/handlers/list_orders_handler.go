package handlers

import (
	"net/http"

	"github.com/hqvuong/microshop/shared/middlewares"
	"github.com/hqvuong/microshop/shared/web"
)

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if !web.CheckContext(r.Context(), h.logger) {
		web.RespondWithError(w, h.logger, http.StatusRequestTimeout, web.ReqCancelledMsg)
		return
	}

	claims, ok := middlewares.GetUserClaims(r)
	if !ok {
		web.RespondWithError(w, h.logger, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	orders, err := h.store.ListOrdersByUsername(r.Context(), claims.Username)
	if err != nil {
		h.logger.Error("failed to list orders", "error", err, "username", claims.Username)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		items, err := h.store.GetOrderItemsByOrderID(r.Context(), order.ID)
		if err != nil {
			h.logger.Error("failed to get order items", "error", err, "orderId", order.ID.String())
			web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
			return
		}

		lines, err := toOrderLineResponses(items)
		if err != nil {
			h.logger.Error("failed to convert order items", "error", err)
			web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
			return
		}

		resp, err := toOrderResponse(order, lines)
		if err != nil {
			h.logger.Error("failed to convert order", "error", err)
			web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
			return
		}
		responses = append(responses, resp)
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, responses)
}
