package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hqvuong/microshop/product-service/internal/repository"
	"github.com/hqvuong/microshop/shared/web"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if !web.CheckContext(r.Context(), h.logger) {
		web.RespondWithError(w, h.logger, http.StatusRequestTimeout, web.ReqCancelledMsg)
		return
	}

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondWithError(w, h.logger, http.StatusBadRequest, invalidRequestBodyMsg)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Price <= 0 {
		web.RespondWithError(w, h.logger, http.StatusBadRequest, missingNameOrPriceMsg)
		return
	}

	var price pgtype.Numeric
	if err := price.Scan(fmt.Sprintf("%.2f", req.Price)); err != nil {
		h.logger.Error("failed to convert price", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	var description pgtype.Text
	if req.Description != "" {
		description = pgtype.Text{String: req.Description, Valid: true}
	}

	product, err := h.queries.CreateProduct(r.Context(), repository.CreateProductParams{
		Name:        req.Name,
		Description: description,
		Price:       price,
	})
	if err != nil {
		h.logger.Error("failed to create product", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	// The list cache is stale now. Dropping the key is enough, the next
	// list request repopulates it.
	if err := h.cache.Del(r.Context(), productsCacheKey).Err(); err != nil {
		h.logger.Warn("failed to invalidate products cache", "error", err)
	}

	resp, err := toProductResponse(product)
	if err != nil {
		h.logger.Error("failed to convert product", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusCreated, resp)
}
