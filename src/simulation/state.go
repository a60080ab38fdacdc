package simulation

import "time"

// TankState is the ground truth the engine evolves for one tank. The engine
// is its only writer; collaborators get copies via Snapshot.
type TankState struct {
	CurrentLevelCm float64

	// PumpRunning is meaningful for the cistern, ChlorinatorRunning and
	// ChlorinePpm for the distribution tank.
	PumpRunning        bool
	ChlorinatorRunning bool
	ChlorinePpm        float64

	// LastEquipmentChange is stamped only on a running-flag transition made
	// by the automatic hysteresis.
	LastEquipmentChange time.Time
}
