package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
)

const criticalWaterPercentTankB = 25.0

// @Summary Get system status with alerts
// @Description Get the latest readings condensed into a tank summary plus the threshold alerts they trigger
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} ErrorResponse "error message"
// @Router /api/status [get]
func (r *Router) GetStatus(context *gin.Context) {
	readings, err := r.store.LatestReadings(context)
	if err != nil {
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	response := StatusResponse{
		Success:           true,
		Timestamp:         time.Now(),
		SystemOperational: true,
		TanksOnline:       len(readings),
		Alerts:            make([]Alert, 0, 4),
		TankSummary:       make(map[string]*TankSummary, len(readings)),
	}

	for _, reading := range readings {
		if reading.Timestamp.After(response.LastReading) {
			response.LastReading = reading.Timestamp
		}

		response.Alerts = append(response.Alerts, alertsFor(reading)...)
		response.TankSummary[string(reading.TankID)] = r.summarize(reading)
	}

	response.AlertsCount = len(response.Alerts)

	context.JSON(http.StatusOK, response)
}

func (r *Router) summarize(reading model.Reading) *TankSummary {
	summary := &TankSummary{
		Name:         reading.TankName,
		LevelPercent: reading.WaterLevelPercent,
		LevelCm:      reading.WaterLevelCm,
		VolumeM3:     reading.WaterVolumeM3,
	}

	if reading.TankID == model.TankA {
		running := reading.PumpStatus
		summary.PumpRunning = &running
		summary.PumpMode = r.controls.Pump().Mode
	}

	if reading.ChlorinePpm != nil {
		summary.ChlorinePpm = reading.ChlorinePpm
		summary.ChlorineStatus = reading.ChlorineStatus
		summary.ChlorinatorRunning = reading.ChlorinatorStatus
		summary.ChlorinatorMode = r.controls.Chlorinator().Mode
	}

	return summary
}

func alertsFor(reading model.Reading) []Alert {
	alerts := make([]Alert, 0, 2)

	switch reading.TankID {
	case model.TankA:
		if reading.WaterLevelPercent < model.LowWaterPercent {
			alerts = append(alerts, Alert{
				Type:           string(model.StatusLowWater),
				Tank:           string(reading.TankID),
				Severity:       "high",
				Message:        fmt.Sprintf("low level in %s: %.1f%%", reading.TankName, reading.WaterLevelPercent),
				ActionRequired: "check the captación water intakes",
			})
		} else if reading.WaterLevelPercent > model.HighWaterPercent {
			alerts = append(alerts, Alert{
				Type:           string(model.StatusHighWater),
				Tank:           string(reading.TankID),
				Severity:       "medium",
				Message:        fmt.Sprintf("%s almost full: %.1f%%", reading.TankName, reading.WaterLevelPercent),
				ActionRequired: "pump should engage automatically",
			})
		}
	case model.TankB:
		if reading.WaterLevelPercent < criticalWaterPercentTankB {
			alerts = append(alerts, Alert{
				Type:           string(model.StatusLowWater),
				Tank:           string(reading.TankID),
				Severity:       "critical",
				Message:        fmt.Sprintf("critical level in %s: %.1f%%", reading.TankName, reading.WaterLevelPercent),
				ActionRequired: "switch the pump on manually if needed",
			})
		}
	}

	if reading.ChlorinePpm != nil {
		if *reading.ChlorinePpm < model.LowChlorinePpm {
			alerts = append(alerts, Alert{
				Type:           string(model.StatusLowChlorine),
				Tank:           string(reading.TankID),
				Severity:       "high",
				Message:        fmt.Sprintf("low chlorine: %.3f ppm", *reading.ChlorinePpm),
				ActionRequired: "switch the chlorinator on manually",
			})
		} else if *reading.ChlorinePpm > model.HighChlorinePpm {
			alerts = append(alerts, Alert{
				Type:           string(model.StatusHighChlorine),
				Tank:           string(reading.TankID),
				Severity:       "medium",
				Message:        fmt.Sprintf("high chlorine: %.3f ppm", *reading.ChlorinePpm),
				ActionRequired: "stop the chlorinator temporarily",
			})
		}
	}

	return alerts
}
