package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hqvuong/microshop/shared/web"
)

type DeleteUserRequest struct {
	Username string `json:"username"`
}

func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !web.CheckContext(ctx, h.logger) {
		web.RespondWithError(w, h.logger, http.StatusRequestTimeout, requestTimeoutMsg)
		return
	}

	var req DeleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request body", "error", err)
		web.RespondWithError(w, h.logger, http.StatusBadRequest, invalidRequestBodyMsg)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		web.RespondWithError(w, h.logger, http.StatusBadRequest, missingDeleteUsernameMsg)
		return
	}

	deleted, err := h.queries.DeleteUserByUsername(ctx, req.Username)
	if err != nil {
		h.logger.Error("failed to delete user", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	if deleted == 0 {
		web.RespondWithError(w, h.logger, http.StatusBadRequest, userNotFoundMsg)
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": deleteUserSuccessMsg})
}
