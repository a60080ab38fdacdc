package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
)

const (
	healthRoute = "/health"
	configRoute = "/api/config"
)

func RegisterSystemRoutes(router *Router) {
	router.routes.GET(healthRoute, router.GetHealth)
	router.routes.GET(configRoute, router.GetConfig)
}

// @Summary Health check
// @Description Report whether the service is up and how fresh the cached readings are
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (r *Router) GetHealth(context *gin.Context) {
	response := HealthResponse{
		Status:               "healthy",
		Timestamp:            time.Now(),
		ManualControlsActive: r.controls.ManualActive(),
	}

	readings, err := r.store.LatestReadings(context)
	if err == nil {
		response.ReadingsCached = len(readings)
		for _, reading := range readings {
			if reading.Timestamp.After(response.LastReading) {
				response.LastReading = reading.Timestamp
			}
		}
	}

	context.JSON(http.StatusOK, response)
}

// @Summary Get tank configurations
// @Description Get the static configuration of every simulated tank
// @Produce json
// @Success 200 {object} ConfigResponse
// @Router /api/config [get]
func (r *Router) GetConfig(context *gin.Context) {
	configurations := make(map[string]model.TankConfig, len(r.configs))
	for id, config := range r.configs {
		configurations[string(id)] = config
	}

	context.JSON(http.StatusOK, ConfigResponse{
		Success:        true,
		Timestamp:      time.Now(),
		Configurations: configurations,
	})
}
