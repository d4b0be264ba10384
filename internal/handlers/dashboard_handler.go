package handlers

import (
	"net/http"
	"strconv"

	"posyandu-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard DashboardProvider
}

func NewDashboardHandler(dashboard DashboardProvider) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetDashboard menampilkan ringkasan, riwayat aktivitas dan grafik pertumbuhan
// GET /admins/:id/dashboard?year=2024
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	adminID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "ID admin tidak valid", nil)
		return
	}

	var year *int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y <= 0 {
			utils.APIResponse(c, http.StatusBadRequest, false, "Tahun tidak valid", nil)
			return
		}
		year = &y
	}

	summary, err := h.dashboard.Summary(c.Request.Context(), adminID, year)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data dashboard", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Data Dashboard Admin", summary)
}
