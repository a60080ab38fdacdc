package routes

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
	"github.com/asadas-tsadiglo/tank-telemetry/src/storage"
)

const (
	tankIDParam = "tankId"

	readingsRoute = "/api/readings"
	tankRoute     = "/api/tank/:" + tankIDParam
	statusRoute   = "/api/status"
	historyRoute  = "/api/history"

	defaultHistoryHours = 24
)

func RegisterMonitoringRoutes(router *Router) {
	router.routes.GET(readingsRoute, router.GetReadings)
	router.routes.GET(tankRoute, router.GetTank)
	router.routes.GET(statusRoute, router.GetStatus)
	router.routes.GET(historyRoute, router.GetHistory)
}

// @Summary Get current readings of all tanks
// @Description Get the freshest simulated reading of every tank together with the active control modes
// @Produce json
// @Success 200 {object} ReadingsResponse
// @Failure 500 {object} ErrorResponse "error message"
// @Router /api/readings [get]
func (r *Router) GetReadings(context *gin.Context) {
	readings, err := r.store.LatestReadings(context)
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	context.JSON(http.StatusOK, ReadingsResponse{
		Success:    true,
		Timestamp:  time.Now(),
		Readings:   readings,
		TanksCount: len(readings),
		ControlModes: ControlModes{
			PumpMode:        r.controls.Pump().Mode,
			ChlorinatorMode: r.controls.Chlorinator().Mode,
		},
	})
}

// @Summary Get the current reading of one tank
// @Description Get the freshest simulated reading of a single tank
// @Produce json
// @Param tankId path string true "tank id (tank_a or tank_b)"
// @Success 200 {object} TankResponse
// @Failure 400 {object} ErrorResponse "error message"
// @Failure 404 {object} ErrorResponse "error message"
// @Failure 500 {object} ErrorResponse "error message"
// @Router /api/tank/{tankId} [get]
func (r *Router) GetTank(context *gin.Context) {
	id, err := model.ParseTankID(context.Param(tankIDParam))
	if err != nil {
		context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	reading, err := r.store.LatestReading(context, id)
	if err != nil {
		if errors.Is(err, storage.ErrNoReading) {
			context.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}

		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	context.JSON(http.StatusOK, TankResponse{
		Success:   true,
		Timestamp: time.Now(),
		Tank:      reading,
	})
}

// @Summary Get persisted readings for charting
// @Description Get the readings persisted during the last N hours, newest first
// @Produce json
// @Param hours query int false "window in hours, capped at 168"
// @Param tank query string false "restrict to one tank id"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse "error message"
// @Failure 500 {object} ErrorResponse "error message"
// @Router /api/history [get]
func (r *Router) GetHistory(context *gin.Context) {
	hours := defaultHistoryHours
	if hoursQ := context.Query("hours"); hoursQ != "" {
		parsed, err := strconv.Atoi(hoursQ)
		if err != nil || parsed <= 0 {
			context.JSON(http.StatusBadRequest, ErrorResponse{Error: "hours must be a positive integer"})
			return
		}

		hours = parsed
	}
	if hours > storage.MaxHistoryHours {
		hours = storage.MaxHistoryHours
	}

	opts := make([]storage.ConditionOption, 0, 1)
	if tankQ := context.Query("tank"); tankQ != "" {
		id, err := model.ParseTankID(tankQ)
		if err != nil {
			context.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		opts = append(opts, storage.WithTank(id))
	}

	data, err := r.store.History(hours, opts...)
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	context.JSON(http.StatusOK, HistoryResponse{
		Success:        true,
		Timestamp:      time.Now(),
		HoursRequested: hours,
		DataPoints:     len(data),
		Data:           data,
	})
}
