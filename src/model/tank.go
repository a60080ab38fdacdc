package model

import (
	"errors"
	"fmt"
)

type TankID string

const (
	// TankA is the cistern fed by the captación springs.
	TankA TankID = "tank_a"
	// TankB is the 150m³ distribution tank with chlorination.
	TankB TankID = "tank_b"
)

var ErrUnknownTank = errors.New("unknown tank")

func ParseTankID(s string) (TankID, error) {
	switch TankID(s) {
	case TankA, TankB:
		return TankID(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownTank, s)
}

// TankConfig holds the physical constants of one tank. Configs are fixed for
// the lifetime of the process.
type TankConfig struct {
	TankID      TankID  `json:"tank_id"`
	Name        string  `json:"name"`
	CapacityM3  float64 `json:"capacity_m3"`
	MaxHeightCm float64 `json:"max_height_cm"`
	MinHeightCm float64 `json:"min_height_cm"`

	HasChlorineSensor bool `json:"has_chlorine_sensor"`

	// NormalConsumptionRate is the baseline community draw in m³/hour,
	// relevant only for the distribution tank.
	NormalConsumptionRate float64 `json:"normal_consumption_rate"`
}

// BaseAreaM2 is the cross-sectional area, assuming a cylindrical tank.
func (c TankConfig) BaseAreaM2() float64 {
	return c.CapacityM3 / (c.MaxHeightCm / 100)
}

// CmPerM3 converts a volume delta in m³ to a level delta in cm.
func (c TankConfig) CmPerM3() float64 {
	return 100 / c.BaseAreaM2()
}

func (c TankConfig) VolumeM3AtLevel(levelCm float64) float64 {
	return (levelCm / 100) * c.BaseAreaM2()
}

func (c TankConfig) LevelPercent(levelCm float64) float64 {
	return levelCm / c.MaxHeightCm * 100
}

// DefaultConfigs returns the installation's tank configurations. The caller
// owns the returned map.
func DefaultConfigs() map[TankID]TankConfig {
	return map[TankID]TankConfig{
		TankA: {
			TankID:                TankA,
			Name:                  "Cisterna",
			CapacityM3:            50.0,
			MaxHeightCm:           180.0,
			MinHeightCm:           20.0,
			HasChlorineSensor:     false,
			NormalConsumptionRate: 0,
		},
		TankB: {
			TankID:                TankB,
			Name:                  "Tanque 150",
			CapacityM3:            150.0,
			MaxHeightCm:           300.0,
			MinHeightCm:           30.0,
			HasChlorineSensor:     true,
			NormalConsumptionRate: 2.0,
		},
	}
}
