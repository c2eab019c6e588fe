package handlers

import (
	"errors"
	"net/http"

	"github.com/hqvuong/microshop/shared/middlewares"
	"github.com/hqvuong/microshop/shared/web"
	"github.com/jackc/pgx/v5"
)

func (h *Handler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !web.CheckContext(ctx, h.logger) {
		web.RespondWithError(w, h.logger, http.StatusRequestTimeout, requestTimeoutMsg)
		return
	}

	claims, ok := middlewares.GetUserClaims(r)
	if !ok {
		web.RespondWithError(w, h.logger, http.StatusUnauthorized, unauthorizedMsg)
		return
	}

	user, err := h.queries.GetUserByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			web.RespondWithError(w, h.logger, http.StatusBadRequest, userNotFoundMsg)
			return
		}
		h.logger.Error("failed to get user by username", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, user)
}
