package handlers

import (
	"net/http"

	"github.com/hqvuong/microshop/shared/web"
)

func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	web.RespondWithJSON(w, h.logger, http.StatusOK, map[string]string{"message": dashboardWelcomeMsg})
}
