package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
)

// All flows are computed in m³/hour and converted to level deltas through
// the tank's cross-sectional area.
const (
	captationInflowMinM3h = 0.8
	captationInflowMaxM3h = 1.6
	seasonalAmplitude     = 0.3

	// ≈6-8 cm/h drawdown on the cistern.
	pumpTransferMinM3h = 1.7
	pumpTransferMaxM3h = 2.2

	chlorineDecayMinPpmH = 0.05
	chlorineDecayMaxPpmH = 0.1
	chlorineDoseMinPpmH  = 0.3
	chlorineDoseMaxPpmH  = 0.5
	chlorineMaxPpm       = 3.0

	pumpOnFraction    = 0.85
	pumpOffFraction   = 0.60
	chlorinatorOnPpm  = 0.8
	chlorinatorOffPpm = 1.5

	levelNoiseTankACm = 2.0
	levelNoiseTankBCm = 3.0
	chlorineNoisePpm  = 0.05

	demandJitter = 0.2
)

const (
	seedLevelTankACm   = 120.0
	seedLevelTankBCm   = 200.0
	seedChlorinePpm    = 1.2
	secondsPerDay      = 24 * 3600
	sensorStatusActive = "active"
	dataSourceSim      = "simulation"
)

// Engine advances the physical state of both tanks. It is safe for
// concurrent use: control commands and the refresh tick run on different
// goroutines.
type Engine struct {
	mu      sync.Mutex
	random  *rand.Rand
	now     func() time.Time
	configs map[model.TankID]model.TankConfig
	profile ConsumptionProfile
	states  map[model.TankID]*TankState

	// manual-mode latches set by the override arbiter; while set, the
	// automatic hysteresis leaves the corresponding running flag alone
	pumpManual        bool
	chlorinatorManual bool
}

type Option func(e *Engine)

// WithRand injects the random source so tests can be made deterministic.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.random = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithConfigs(configs map[model.TankID]model.TankConfig) Option {
	return func(e *Engine) {
		e.configs = configs
	}
}

func WithProfile(profile ConsumptionProfile) Option {
	return func(e *Engine) {
		e.profile = profile
	}
}

func New(opts ...Option) *Engine {
	engine := &Engine{
		random:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
		configs: model.DefaultConfigs(),
		profile: DefaultConsumptionProfile(),
	}

	for _, opt := range opts {
		opt(engine)
	}

	seeded := engine.now()
	engine.states = map[model.TankID]*TankState{
		model.TankA: {
			CurrentLevelCm:      seedLevelTankACm,
			LastEquipmentChange: seeded,
		},
		model.TankB: {
			CurrentLevelCm:      seedLevelTankBCm,
			ChlorinePpm:         seedChlorinePpm,
			LastEquipmentChange: seeded,
		},
	}

	return engine
}

// Step advances one tank by elapsedMinutes and returns a Reading with sensor
// noise applied to the reported values only.
func (e *Engine) Step(id model.TankID, elapsedMinutes float64) (model.Reading, error) {
	if elapsedMinutes <= 0 {
		return model.Reading{}, fmt.Errorf("elapsed minutes must be positive, got %v", elapsedMinutes)
	}

	config, ok := e.configs[id]
	if !ok {
		return model.Reading{}, fmt.Errorf("%w: %q", model.ErrUnknownTank, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	hours := elapsedMinutes / 60

	if id == model.TankA {
		return e.stepTankA(config, hours, now), nil
	}

	return e.stepTankB(config, hours, now), nil
}

// Snapshot returns a read-only copy of a tank's state.
func (e *Engine) Snapshot(id model.TankID) (TankState, error) {
	if _, ok := e.configs[id]; !ok {
		return TankState{}, fmt.Errorf("%w: %q", model.ErrUnknownTank, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return *e.states[id], nil
}

// OverridePump forces the pump and suppresses its automatic hysteresis until
// ReleasePump. Overrides never stamp LastEquipmentChange.
func (e *Engine) OverridePump(running bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pumpManual = true
	e.states[model.TankA].PumpRunning = running
}

// ReleasePump hands the pump back to the automatic hysteresis. Takes effect
// on the next step, with no re-arming delay.
func (e *Engine) ReleasePump() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pumpManual = false
}

func (e *Engine) OverrideChlorinator(running bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.chlorinatorManual = true
	e.states[model.TankB].ChlorinatorRunning = running
}

func (e *Engine) ReleaseChlorinator() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.chlorinatorManual = false
}

// stepTankA fills the cistern from the captación springs and drains it while
// the transfer pump runs.
func (e *Engine) stepTankA(config model.TankConfig, hours float64, now time.Time) model.Reading {
	state := e.states[model.TankA]

	if !e.pumpManual {
		// deadband between the thresholds keeps the pump from chattering
		if !state.PumpRunning && state.CurrentLevelCm >= config.MaxHeightCm*pumpOnFraction {
			state.PumpRunning = true
			state.LastEquipmentChange = now
		} else if state.PumpRunning && state.CurrentLevelCm <= config.MaxHeightCm*pumpOffFraction {
			state.PumpRunning = false
			state.LastEquipmentChange = now
		}
	}

	season := 1.0 + seasonalAmplitude*math.Sin(float64(now.Unix())/secondsPerDay)
	inflow := e.uniform(captationInflowMinM3h, captationInflowMaxM3h) * season

	outflow := 0.0
	if state.PumpRunning {
		outflow = e.uniform(pumpTransferMinM3h, pumpTransferMaxM3h)
	}

	state.CurrentLevelCm = clamp(
		state.CurrentLevelCm+(inflow-outflow)*hours*config.CmPerM3(),
		config.MinHeightCm,
		config.MaxHeightCm,
	)

	return e.buildReading(config, state, levelNoiseTankACm, now)
}

// stepTankB receives the cistern's pump transfer while the pump runs, drains
// through community consumption and evolves the chlorine concentration.
func (e *Engine) stepTankB(config model.TankConfig, hours float64, now time.Time) model.Reading {
	state := e.states[model.TankB]

	inflow := 0.0
	if e.states[model.TankA].PumpRunning {
		inflow = e.uniform(pumpTransferMinM3h, pumpTransferMaxM3h)
	}

	multiplier := e.profile.Multiplier(now.Hour()) * e.uniform(1-demandJitter, 1+demandJitter)
	outflow := config.NormalConsumptionRate * multiplier

	state.CurrentLevelCm = clamp(
		state.CurrentLevelCm+(inflow-outflow)*hours*config.CmPerM3(),
		config.MinHeightCm,
		config.MaxHeightCm,
	)

	state.ChlorinePpm -= e.uniform(chlorineDecayMinPpmH, chlorineDecayMaxPpmH) * hours

	if !e.chlorinatorManual {
		if !state.ChlorinatorRunning && state.ChlorinePpm < chlorinatorOnPpm {
			state.ChlorinatorRunning = true
			state.LastEquipmentChange = now
		} else if state.ChlorinatorRunning && state.ChlorinePpm > chlorinatorOffPpm {
			state.ChlorinatorRunning = false
			state.LastEquipmentChange = now
		}
	}

	if state.ChlorinatorRunning {
		state.ChlorinePpm += e.uniform(chlorineDoseMinPpmH, chlorineDoseMaxPpmH) * hours
	}

	state.ChlorinePpm = clamp(state.ChlorinePpm, 0, chlorineMaxPpm)

	return e.buildReading(config, state, levelNoiseTankBCm, now)
}

func (e *Engine) buildReading(config model.TankConfig, state *TankState, noiseCm float64, now time.Time) model.Reading {
	measuredLevel := state.CurrentLevelCm + e.uniform(-noiseCm, noiseCm)
	if measuredLevel < 0 {
		measuredLevel = 0
	}

	reading := model.Reading{
		TankID:            config.TankID,
		TankName:          config.Name,
		Timestamp:         now,
		WaterLevelCm:      round(measuredLevel, 2),
		WaterLevelPercent: round(config.LevelPercent(measuredLevel), 1),
		WaterVolumeM3:     round(config.VolumeM3AtLevel(measuredLevel), 2),
		PumpStatus:        state.PumpRunning,
		SensorStatus:      sensorStatusActive,
		DataSource:        dataSourceSim,
	}

	if config.HasChlorineSensor {
		measuredChlorine := state.ChlorinePpm + e.uniform(-chlorineNoisePpm, chlorineNoisePpm)
		if measuredChlorine < 0 {
			measuredChlorine = 0
		}

		ppm := round(measuredChlorine, 3)
		running := state.ChlorinatorRunning
		reading.ChlorinePpm = &ppm
		reading.ChlorineStatus = model.ChlorineStatusFor(ppm)
		reading.ChlorinatorStatus = &running
	}

	reading.Status = model.DeriveStatus(reading.WaterLevelPercent, reading.ChlorinePpm)

	return reading
}

func (e *Engine) uniform(min, max float64) float64 {
	return min + e.random.Float64()*(max-min)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}

	return v
}

func round(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))

	return math.Round(v*pow) / pow
}
