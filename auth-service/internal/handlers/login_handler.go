package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/hqvuong/microshop/shared/web"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// LoginUserHandler exchanges valid credentials for a signed token. Unknown
// username and wrong password produce the identical response so a caller
// cannot probe which usernames exist.
func (h *Handler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !web.CheckContext(ctx, h.logger) {
		web.RespondWithError(w, h.logger, http.StatusRequestTimeout, requestTimeoutMsg)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request body", "error", err)
		web.RespondWithError(w, h.logger, http.StatusBadRequest, invalidRequestBodyMsg)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)

	user, err := h.queries.GetUserByUsername(ctx, req.Username)
	if err != nil {
		h.logger.Warn("login failed: user lookup", "username", req.Username, "error", err)
		web.RespondWithError(w, h.logger, http.StatusBadRequest, invalidCredentialsMsg)
		return
	}

	match, err := argon2id.ComparePasswordAndHash(req.Password, user.Password)
	if err != nil || !match {
		h.logger.Warn("login failed: password mismatch", "username", req.Username)
		web.RespondWithError(w, h.logger, http.StatusBadRequest, invalidCredentialsMsg)
		return
	}

	token, err := h.jwtManager.Issue(user.ID.String(), user.Username)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, LoginResponse{Token: token})
}
