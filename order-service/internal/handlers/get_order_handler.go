package handlers

import (
	"errors"
	"net/http"

	"github.com/hqvuong/microshop/shared/middlewares"
	"github.com/hqvuong/microshop/shared/web"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	if !web.CheckContext(r.Context(), h.logger) {
		web.RespondWithError(w, h.logger, http.StatusRequestTimeout, web.ReqCancelledMsg)
		return
	}

	claims, ok := middlewares.GetUserClaims(r)
	if !ok {
		web.RespondWithError(w, h.logger, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var orderID pgtype.UUID
	if err := orderID.Scan(r.PathValue("id")); err != nil {
		web.RespondWithError(w, h.logger, http.StatusNotFound, orderNotFoundMsg)
		return
	}

	order, err := h.store.GetOrderByID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			web.RespondWithError(w, h.logger, http.StatusNotFound, orderNotFoundMsg)
			return
		}
		h.logger.Error("failed to get order", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	// Orders are private to the user who placed them.
	if order.Username != claims.Username {
		web.RespondWithError(w, h.logger, http.StatusNotFound, orderNotFoundMsg)
		return
	}

	items, err := h.store.GetOrderItemsByOrderID(r.Context(), order.ID)
	if err != nil {
		h.logger.Error("failed to get order items", "error", err)
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

	web.RespondWithJSON(w, h.logger, http.StatusOK, resp)
}
