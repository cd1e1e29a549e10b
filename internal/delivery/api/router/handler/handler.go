// Package handler contains the echo handlers of the public API.
package handler

import (
	"net/http"

	"github.com/46h1/buzzer/internal/delivery/api/response"
	"github.com/46h1/buzzer/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

func validationFailed(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Request validation failed", validator.FieldErrors(err))
}
