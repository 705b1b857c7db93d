package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luk14236/food-advice-agent/services"
)

type SimulationController struct {
	Svc *services.SimulationService
}

func NewSimulationController(svc *services.SimulationService) *SimulationController {
	return &SimulationController{Svc: svc}
}

// POST /simulate  { "runs": 3 }
func (h *SimulationController) Simulate(c *gin.Context) {
	var req struct {
		Runs int `json:"runs"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: 'runs' must be an integer"})
		return
	}

	result, err := h.Svc.Run(c.Request.Context(), req.Runs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":            true,
		"runs":          result.Runs,
		"inserted_rows": result.InsertedRows,
	})
}
