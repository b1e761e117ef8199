package weather

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nazarious-ucu/weather-report/internal/models"
	serviceWeather "github.com/Nazarious-ucu/weather-report/internal/services/weather"
)

const timeoutDuration = 10 * time.Second

type weatherGetterService interface {
	GetByCity(ctx context.Context, city string) (models.WeatherReport, error)
}

type Handler struct {
	service weatherGetterService
}

func NewHandler(svc weatherGetterService) *Handler {
	return &Handler{service: svc}
}

// GetWeather
// @Summary Get current weather
// @Description Returns the current weather for a given city
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} models.WeatherReport
// @Failure 400 {object} map[string]string "Invalid city name or API key"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 500 {object} map[string]string "Internal error"
// @Failure 502 {object} map[string]string "Upstream API failure"
// @Router /weather [get]
func (h *Handler) GetWeather(c *gin.Context) {
	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	data, err := h.service.GetByCity(ctxWithTimeout, c.Query("city"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, data)
}

func statusFor(err error) int {
	var (
		vErr   *serviceWeather.ValidationError
		apiErr *serviceWeather.APIError
	)
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case serviceWeather.IsNotFound(err):
		return http.StatusNotFound
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	if serviceWeather.IsNotFound(err) {
		return "City not found"
	}
	return err.Error()
}
