package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"staybook-backend/services"
	"staybook-backend/utils"
)

// respondServiceError maps service-layer errors to transport status codes.
// Unexpected errors are logged server-side and surface as a generic 500 so
// internal detail never reaches clients.
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(c, http.StatusBadRequest, "this email is already in use")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unexpected error")
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
