package control

import (
	"sync"
	"time"
)

type Mode string

const (
	ModeAutomatic Mode = "automatic"
	ModeManual    Mode = "manual"
)

type Action string

const (
	ActionTurnOn       Action = "turn_on"
	ActionTurnOff      Action = "turn_off"
	ActionSetAutomatic Action = "set_automatic"
)

type LastAction struct {
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// Equipment is the operator-facing control slot for one device. Desired is
// meaningful only in manual mode.
type Equipment struct {
	Mode       Mode        `json:"mode"`
	Desired    bool        `json:"desired_state"`
	LastAction *LastAction `json:"last_action,omitempty"`
}

// State holds the pending operator commands for the pump and the
// chlorinator. HTTP handlers write it, the refresh tick reads it; commands
// take effect on the next tick rather than synchronously.
type State struct {
	mu  sync.RWMutex
	now func() time.Time

	pump        Equipment
	chlorinator Equipment
}

type Option func(s *State)

func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

func NewState(opts ...Option) *State {
	state := &State{
		now:         time.Now,
		pump:        Equipment{Mode: ModeAutomatic},
		chlorinator: Equipment{Mode: ModeAutomatic},
	}

	for _, opt := range opts {
		opt(state)
	}

	return state
}

func (s *State) SetPumpManual(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pump.Mode = ModeManual
	s.pump.Desired = running
	s.pump.LastAction = &LastAction{Action: actionFor(running), Timestamp: s.now()}
}

func (s *State) SetChlorinatorManual(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chlorinator.Mode = ModeManual
	s.chlorinator.Desired = running
	s.chlorinator.LastAction = &LastAction{Action: actionFor(running), Timestamp: s.now()}
}

// SetAutomatic returns both equipments to automatic control.
func (s *State) SetAutomatic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := &LastAction{Action: ActionSetAutomatic, Timestamp: s.now()}
	s.pump.Mode = ModeAutomatic
	s.pump.LastAction = stamp
	s.chlorinator.Mode = ModeAutomatic
	s.chlorinator.LastAction = stamp
}

func (s *State) Pump() Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pump
}

func (s *State) Chlorinator() Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.chlorinator
}

func (s *State) ManualActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pump.Mode == ModeManual || s.chlorinator.Mode == ModeManual
}

func actionFor(running bool) Action {
	if running {
		return ActionTurnOn
	}

	return ActionTurnOff
}
