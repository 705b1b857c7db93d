package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luk14236/food-advice-agent/services"
)

type AnswerController struct {
	Svc *services.AnswerService
}

func NewAnswerController(svc *services.AnswerService) *AnswerController {
	return &AnswerController{Svc: svc}
}

// POST /answer  { "question": "..." }
// The question is optional; an empty body falls back to the default one.
func (h *AnswerController) Answer(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
	}

	answer, err := h.Svc.GenerateAnswer(c.Request.Context(), req.Question)
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, answer)
}
