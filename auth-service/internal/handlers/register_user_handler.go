package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/hqvuong/microshop/auth-service/internal/repository"
	"github.com/hqvuong/microshop/shared/web"
	"github.com/jackc/pgx/v5/pgconn"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !web.CheckContext(ctx, h.logger) {
		web.RespondWithError(w, h.logger, http.StatusRequestTimeout, requestTimeoutMsg)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request body", "error", err)
		web.RespondWithError(w, h.logger, http.StatusBadRequest, invalidRequestBodyMsg)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	if req.Username == "" || req.Password == "" {
		web.RespondWithError(w, h.logger, http.StatusBadRequest, missingCredentialsMsg)
		return
	}

	hashedPassword, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	user, err := h.queries.CreateUser(ctx, repository.CreateUserParams{
		Username: req.Username,
		Password: hashedPassword,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationSQLState {
			web.RespondWithError(w, h.logger, http.StatusBadRequest, duplicateUsernameMsg)
			return
		}
		h.logger.Error("failed to create user", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusCreated, user)
}
