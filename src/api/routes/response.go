package routes

import (
	"time"

	"github.com/asadas-tsadiglo/tank-telemetry/src/control"
	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
)

// swagger:model
type ControlModes struct {
	PumpMode        control.Mode `json:"pump_mode"`
	ChlorinatorMode control.Mode `json:"chlorinator_mode"`
}

// swagger:model
type ReadingsResponse struct {
	Success      bool            `json:"success"`
	Timestamp    time.Time       `json:"timestamp"`
	Readings     []model.Reading `json:"readings"`
	TanksCount   int             `json:"tanks_count"`
	ControlModes ControlModes    `json:"control_modes"`
}

// swagger:model
type TankResponse struct {
	Success   bool          `json:"success"`
	Timestamp time.Time     `json:"timestamp"`
	Tank      model.Reading `json:"tank"`
}

// swagger:model
type Alert struct {
	Type           string `json:"type"`
	Tank           string `json:"tank"`
	Severity       string `json:"severity"`
	Message        string `json:"message"`
	ActionRequired string `json:"action_required"`
}

// swagger:model
type TankSummary struct {
	Name         string  `json:"name"`
	LevelPercent float64 `json:"level_percent"`
	LevelCm      float64 `json:"level_cm"`
	VolumeM3     float64 `json:"volume_m3"`

	PumpRunning *bool        `json:"pump_running,omitempty"`
	PumpMode    control.Mode `json:"pump_mode,omitempty"`

	ChlorinePpm        *float64     `json:"chlorine_ppm,omitempty"`
	ChlorineStatus     string       `json:"chlorine_status,omitempty"`
	ChlorinatorRunning *bool        `json:"chlorinator_running,omitempty"`
	ChlorinatorMode    control.Mode `json:"chlorinator_mode,omitempty"`
}

// swagger:model
type StatusResponse struct {
	Success           bool                    `json:"success"`
	Timestamp         time.Time               `json:"timestamp"`
	SystemOperational bool                    `json:"system_operational"`
	TanksOnline       int                     `json:"tanks_online"`
	LastReading       time.Time               `json:"last_reading"`
	Alerts            []Alert                 `json:"alerts"`
	AlertsCount       int                     `json:"alerts_count"`
	TankSummary       map[string]*TankSummary `json:"tank_summary"`
}

// swagger:model
type ControlActionResponse struct {
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Equipment string    `json:"equipment"`
	State     string    `json:"state"`
	Mode      string    `json:"mode"`
	Note      string    `json:"note"`
}

// swagger:model
type CurrentStates struct {
	PumpRunning        bool `json:"pump_running"`
	ChlorinatorRunning bool `json:"chlorinator_running"`
}

// swagger:model
type ControlStatusResponse struct {
	Success       bool              `json:"success"`
	Timestamp     time.Time         `json:"timestamp"`
	Pump          control.Equipment `json:"pump"`
	Chlorinator   control.Equipment `json:"chlorinator"`
	CurrentStates CurrentStates     `json:"current_states"`
	Modes         ControlModes      `json:"modes"`
}

// swagger:model
type HistoryResponse struct {
	Success        bool            `json:"success"`
	Timestamp      time.Time       `json:"timestamp"`
	HoursRequested int             `json:"hours_requested"`
	DataPoints     int             `json:"data_points"`
	Data           []model.Reading `json:"data"`
}

// swagger:model
type ConfigResponse struct {
	Success        bool                        `json:"success"`
	Timestamp      time.Time                   `json:"timestamp"`
	Configurations map[string]model.TankConfig `json:"configurations"`
}

// swagger:model
type HealthResponse struct {
	Status               string    `json:"status"`
	Timestamp            time.Time `json:"timestamp"`
	ReadingsCached       int       `json:"readings_cached"`
	LastReading          time.Time `json:"last_reading"`
	ManualControlsActive bool      `json:"manual_controls_active"`
}

// swagger:model
type ErrorResponse struct {
	Error string `json:"error"`
}
