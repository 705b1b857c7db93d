package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/luk14236/food-advice-agent/services"
)

type AskController struct {
	Svc *services.AskService
}

func NewAskController(svc *services.AskService) *AskController {
	return &AskController{Svc: svc}
}

// POST /ask  { "answer": "Dish1; Dish2; Dish3" }
func (h *AskController) Ask(c *gin.Context) {
	var req struct {
		Answer string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Answer) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'answer' in body"})
		return
	}

	foods, err := h.Svc.ParseAnswer(c.Request.Context(), req.Answer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite_foods": foods})
}
