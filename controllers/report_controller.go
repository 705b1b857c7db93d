package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luk14236/food-advice-agent/services"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Svc: svc}
}

// GET /reports/stats?rows=N[&strictVeg=true]
func (h *ReportController) Stats(c *gin.Context) {
	rowsStr := c.Query("rows")
	if rowsStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter 'rows'"})
		return
	}
	rows, err := strconv.Atoi(rowsStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'rows' must be an integer"})
		return
	}
	strictVeg := c.DefaultQuery("strictVeg", "false") == "true"

	stats, err := h.Svc.Stats(c.Request.Context(), rows, strictVeg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
