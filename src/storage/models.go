package storage

import (
	"time"

	"gorm.io/gorm"

	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
)

const TankReadingTable = "tank_readings"

// TankReading is the persisted form of a model.Reading.
type TankReading struct {
	gorm.Model

	Timestamp time.Time `gorm:"index"`

	TankID   string `gorm:"size:10;index"`
	TankName string `gorm:"size:50"`

	WaterLevelCm      float64
	WaterLevelPercent float64
	WaterVolumeM3     float64

	ChlorinePpm    *float64
	ChlorineStatus string `gorm:"size:20"`

	PumpStatus        bool
	ChlorinatorStatus bool

	Status       string `gorm:"size:20"`
	SensorStatus string `gorm:"size:20"`
	DataSource   string `gorm:"size:20"`
}

func rowFromReading(reading model.Reading) *TankReading {
	row := &TankReading{
		Timestamp:         reading.Timestamp,
		TankID:            string(reading.TankID),
		TankName:          reading.TankName,
		WaterLevelCm:      reading.WaterLevelCm,
		WaterLevelPercent: reading.WaterLevelPercent,
		WaterVolumeM3:     reading.WaterVolumeM3,
		ChlorinePpm:       reading.ChlorinePpm,
		ChlorineStatus:    reading.ChlorineStatus,
		PumpStatus:        reading.PumpStatus,
		Status:            string(reading.Status),
		SensorStatus:      reading.SensorStatus,
		DataSource:        reading.DataSource,
	}

	if reading.ChlorinatorStatus != nil {
		row.ChlorinatorStatus = *reading.ChlorinatorStatus
	}

	return row
}

func (r *TankReading) toReading() model.Reading {
	reading := model.Reading{
		TankID:            model.TankID(r.TankID),
		TankName:          r.TankName,
		Timestamp:         r.Timestamp,
		WaterLevelCm:      r.WaterLevelCm,
		WaterLevelPercent: r.WaterLevelPercent,
		WaterVolumeM3:     r.WaterVolumeM3,
		PumpStatus:        r.PumpStatus,
		Status:            model.Status(r.Status),
		SensorStatus:      r.SensorStatus,
		DataSource:        r.DataSource,
	}

	if r.ChlorinePpm != nil {
		ppm := *r.ChlorinePpm
		running := r.ChlorinatorStatus
		reading.ChlorinePpm = &ppm
		reading.ChlorineStatus = r.ChlorineStatus
		reading.ChlorinatorStatus = &running
	}

	return reading
}
