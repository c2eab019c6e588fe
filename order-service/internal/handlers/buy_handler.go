package handlers

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/hqvuong/microshop/order-service/internal/repository"
	"github.com/hqvuong/microshop/shared/middlewares"
	"github.com/hqvuong/microshop/shared/web"
)

// purchaseLine uses pointers so a missing field can be told apart from a
// zero value.
type purchaseLine struct {
	ID       *string  `json:"_id"`
	Quantity *float64 `json:"quantity"`
}

func (h *Handler) Buy(w http.ResponseWriter, r *http.Request) {
	if !web.CheckContext(r.Context(), h.logger) {
		web.RespondWithError(w, h.logger, http.StatusRequestTimeout, web.ReqCancelledMsg)
		return
	}

	claims, ok := middlewares.GetUserClaims(r)
	if !ok {
		web.RespondWithError(w, h.logger, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var lines []purchaseLine
	if err := json.NewDecoder(r.Body).Decode(&lines); err != nil || len(lines) == 0 {
		web.RespondWithError(w, h.logger, http.StatusBadRequest, invalidProductsDataMsg)
		return
	}

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.ID == nil || *line.ID == "" || line.Quantity == nil {
			web.RespondWithError(w, h.logger, http.StatusBadRequest, missingIDOrQuantityMsg)
			return
		}
		// Quantities are whole units; a fractional value would be silently
		// truncated on persistence and break the stored total.
		quantity := *line.Quantity
		if quantity < 1 || quantity != math.Trunc(quantity) || quantity > math.MaxInt32 {
			web.RespondWithError(w, h.logger, http.StatusBadRequest, nonPositiveQuantityMsg)
			return
		}
		ids = append(ids, *line.ID)
	}

	products, err := h.products.FetchProducts(r.Context(), ids)
	if err != nil {
		h.logger.Error("failed to fetch products", "error", err)
		web.RespondWithError(w, h.logger, http.StatusBadGateway, catalogUnavailableMsg)
		return
	}

	// Every requested line must resolve to a known product, a partial
	// order is never placed.
	var totalPrice float64
	items := make([]repository.OrderItemArgs, 0, len(lines))
	responseLines := make([]orderLineResponse, 0, len(lines))
	for _, line := range lines {
		product, ok := products[*line.ID]
		if !ok {
			web.RespondWithError(w, h.logger, http.StatusBadRequest, productNotFoundMsg)
			return
		}

		quantity := *line.Quantity
		totalPrice += quantity * product.Price
		items = append(items, repository.OrderItemArgs{
			ProductID: product.ID,
			Quantity:  int32(quantity),
			Price:     product.Price,
		})
		responseLines = append(responseLines, orderLineResponse{
			ID:       product.ID,
			Quantity: quantity,
			Price:    product.Price,
		})
	}

	order, err := h.store.CreateOrder(r.Context(), repository.CreateOrderArgs{
		Username:   claims.Username,
		TotalPrice: totalPrice,
		Items:      items,
	})
	if err != nil {
		h.logger.Error("failed to create order", "error", err, "username", claims.Username)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	resp, err := toOrderResponse(order, responseLines)
	if err != nil {
		h.logger.Error("failed to convert order", "error", err)
		web.RespondWithError(w, h.logger, http.StatusInternalServerError, internalServerErrorMsg)
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusCreated, resp)
}
