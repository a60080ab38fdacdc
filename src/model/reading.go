package model

import "time"

type Status string

const (
	StatusNormal       Status = "normal"
	StatusLowWater     Status = "low_water"
	StatusHighWater    Status = "high_water"
	StatusLowChlorine  Status = "low_chlorine"
	StatusHighChlorine Status = "high_chlorine"
)

const (
	ChlorineLow    = "low"
	ChlorineNormal = "normal"
	ChlorineHigh   = "high"
)

// Alert thresholds shared by the status derivation and the API layer.
const (
	LowWaterPercent  = 20.0
	HighWaterPercent = 90.0
	LowChlorinePpm   = 0.5
	HighChlorinePpm  = 2.0
)

// Reading is one measured snapshot of a tank. Field names are part of the
// wire format consumed by the dashboard and must not change.
type Reading struct {
	TankID    TankID    `json:"tank_id"`
	TankName  string    `json:"tank_name"`
	Timestamp time.Time `json:"timestamp"`

	WaterLevelCm      float64 `json:"water_level_cm"`
	WaterLevelPercent float64 `json:"water_level_percent"`
	WaterVolumeM3     float64 `json:"water_volume_m3"`

	PumpStatus bool `json:"pump_status"`

	ChlorinePpm       *float64 `json:"chlorine_ppm,omitempty"`
	ChlorineStatus    string   `json:"chlorine_status,omitempty"`
	ChlorinatorStatus *bool    `json:"chlorinator_status,omitempty"`

	Status       Status `json:"status"`
	SensorStatus string `json:"sensor_status"`
	DataSource   string `json:"data_source"`
}

// DeriveStatus maps a reading's measured values to its status tag. Water
// level conditions take precedence over chlorine conditions.
func DeriveStatus(levelPercent float64, chlorinePpm *float64) Status {
	switch {
	case levelPercent < LowWaterPercent:
		return StatusLowWater
	case levelPercent > HighWaterPercent:
		return StatusHighWater
	}

	if chlorinePpm != nil {
		switch {
		case *chlorinePpm < LowChlorinePpm:
			return StatusLowChlorine
		case *chlorinePpm > HighChlorinePpm:
			return StatusHighChlorine
		}
	}

	return StatusNormal
}

func ChlorineStatusFor(ppm float64) string {
	switch {
	case ppm < LowChlorinePpm:
		return ChlorineLow
	case ppm > HighChlorinePpm:
		return ChlorineHigh
	}

	return ChlorineNormal
}
