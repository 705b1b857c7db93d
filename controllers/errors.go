package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luk14236/food-advice-agent/services"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrParse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrUpstreamService):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrStore):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}
