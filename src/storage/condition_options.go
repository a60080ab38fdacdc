package storage

import (
	"time"

	"gorm.io/gorm"

	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
)

type ConditionOption func(table, field string, tx *gorm.DB)

func WithFrom(from time.Time) ConditionOption {
	return func(table, field string, tx *gorm.DB) {
		tx.Where(table+"."+field+" >= ?", from)
	}
}

func WithTill(till time.Time) ConditionOption {
	return func(table, field string, tx *gorm.DB) {
		tx.Where(table+"."+field+" <= ?", till)
	}
}

func WithTank(id model.TankID) ConditionOption {
	return func(table, _ string, tx *gorm.DB) {
		tx.Where(table+".tank_id = ?", string(id))
	}
}
