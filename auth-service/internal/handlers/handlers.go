package handlers

import (
	"github.com/hqvuong/microshop/auth-service/internal/repository"
	"github.com/hqvuong/microshop/shared/auth"
	"github.com/hqvuong/microshop/shared/logs"
)

const (
	requestTimeoutMsg         = "Request timeout"
	internalServerErrorMsg    = "Internal server error"
	invalidRequestBodyMsg     = "Invalid request body"
	invalidCredentialsMsg     = "Invalid username or password"
	duplicateUsernameMsg      = "username is exist"
	missingCredentialsMsg     = "username and password are required"
	userNotFoundMsg           = "User not found"
	deleteUserSuccessMsg      = "Delete user success"
	dashboardWelcomeMsg       = "Welcome to dashboard"
	missingDeleteUsernameMsg  = "username is required"
	unauthorizedMsg           = "Unauthorized"
	uniqueViolationSQLState   = "23505"
)

type Handler struct {
	queries    repository.Querier
	jwtManager *auth.JWTManager
	logger     logs.Logger
}

func NewHandler(queries repository.Querier, jwtManager *auth.JWTManager, logger logs.Logger) *Handler {
	return &Handler{
		queries:    queries,
		jwtManager: jwtManager,
		logger:     logger,
	}
}
