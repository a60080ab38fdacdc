package control

// Overrider is the slice of the simulation engine the arbiter drives.
type Overrider interface {
	OverridePump(running bool)
	ReleasePump()
	OverrideChlorinator(running bool)
	ReleaseChlorinator()
}

// Arbiter reconciles operator commands with automatic control. It runs at
// the start of every refresh tick, before the engine steps.
type Arbiter struct{}

// Apply forces every equipment in manual mode to its desired state and
// releases the rest back to automatic hysteresis. It writes running flags
// only; LastEquipmentChange stays untouched.
func (Arbiter) Apply(state *State, engine Overrider) {
	if pump := state.Pump(); pump.Mode == ModeManual {
		engine.OverridePump(pump.Desired)
	} else {
		engine.ReleasePump()
	}

	if chlorinator := state.Chlorinator(); chlorinator.Mode == ModeManual {
		engine.OverrideChlorinator(chlorinator.Desired)
	} else {
		engine.ReleaseChlorinator()
	}
}
