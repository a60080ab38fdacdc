package simulation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
)

var testClock = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine(opts ...Option) *Engine {
	defaults := []Option{
		WithRand(rand.New(rand.NewSource(42))),
		WithClock(func() time.Time { return testClock }),
	}

	return New(append(defaults, opts...)...)
}

func TestStepValidation(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.Step(model.TankA, 0)
	assert.Error(t, err)

	_, err = engine.Step(model.TankA, -1)
	assert.Error(t, err)

	_, err = engine.Step(model.TankID("tank_z"), 30)
	assert.ErrorIs(t, err, model.ErrUnknownTank)

	_, err = engine.Snapshot(model.TankID("tank_z"))
	assert.ErrorIs(t, err, model.ErrUnknownTank)
}

func TestPumpHysteresis(t *testing.T) {
	current := testClock
	engine := New(
		WithRand(rand.New(rand.NewSource(42))),
		WithClock(func() time.Time { return current }),
	)

	// 170cm of 180cm is above the 85% switch-on threshold
	engine.states[model.TankA].CurrentLevelCm = 170
	current = current.Add(time.Minute)

	_, err := engine.Step(model.TankA, 30)
	require.NoError(t, err)

	state, err := engine.Snapshot(model.TankA)
	require.NoError(t, err)
	assert.True(t, state.PumpRunning)
	assert.Equal(t, current, state.LastEquipmentChange, "switching on must stamp the change time")

	// below the 60% switch-off threshold
	engine.states[model.TankA].CurrentLevelCm = 100

	_, err = engine.Step(model.TankA, 30)
	require.NoError(t, err)

	state, err = engine.Snapshot(model.TankA)
	require.NoError(t, err)
	assert.False(t, state.PumpRunning)
}

func TestPumpDeadband(t *testing.T) {
	engine := newTestEngine()

	// between 60% and 85% neither threshold fires
	engine.states[model.TankA].CurrentLevelCm = 130
	engine.states[model.TankA].PumpRunning = true
	stamp := engine.states[model.TankA].LastEquipmentChange

	_, err := engine.Step(model.TankA, 30)
	require.NoError(t, err)

	state, err := engine.Snapshot(model.TankA)
	require.NoError(t, err)
	assert.True(t, state.PumpRunning, "pump must keep running inside the deadband")
	assert.Equal(t, stamp, state.LastEquipmentChange)

	engine.states[model.TankA].CurrentLevelCm = 130
	engine.states[model.TankA].PumpRunning = false

	_, err = engine.Step(model.TankA, 30)
	require.NoError(t, err)

	state, err = engine.Snapshot(model.TankA)
	require.NoError(t, err)
	assert.False(t, state.PumpRunning, "pump must stay off inside the deadband")
}

func TestLevelStaysInsideBounds(t *testing.T) {
	engine := newTestEngine()
	configs := model.DefaultConfigs()

	for i := 0; i < 500; i++ {
		for _, id := range []model.TankID{model.TankA, model.TankB} {
			_, err := engine.Step(id, 30)
			require.NoError(t, err)

			state, err := engine.Snapshot(id)
			require.NoError(t, err)

			config := configs[id]
			assert.GreaterOrEqual(t, state.CurrentLevelCm, config.MinHeightCm)
			assert.LessOrEqual(t, state.CurrentLevelCm, config.MaxHeightCm)
		}
	}
}

func TestChlorineBoundsAndHysteresis(t *testing.T) {
	engine := newTestEngine()

	engine.states[model.TankB].ChlorinePpm = 0.5
	engine.states[model.TankB].ChlorinatorRunning = false

	_, err := engine.Step(model.TankB, 30)
	require.NoError(t, err)

	state, err := engine.Snapshot(model.TankB)
	require.NoError(t, err)
	assert.True(t, state.ChlorinatorRunning, "chlorinator must engage below 0.8 ppm")

	engine.states[model.TankB].ChlorinePpm = 1.8

	_, err = engine.Step(model.TankB, 30)
	require.NoError(t, err)

	state, err = engine.Snapshot(model.TankB)
	require.NoError(t, err)
	assert.False(t, state.ChlorinatorRunning, "chlorinator must stop above 1.5 ppm")

	for i := 0; i < 500; i++ {
		_, err = engine.Step(model.TankB, 30)
		require.NoError(t, err)

		state, err = engine.Snapshot(model.TankB)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, state.ChlorinePpm, 0.0)
		assert.LessOrEqual(t, state.ChlorinePpm, chlorineMaxPpm)
	}
}

func TestManualOverrideSuppressesHysteresis(t *testing.T) {
	engine := newTestEngine()

	// force the pump on at a level where automatic control would stop it
	engine.states[model.TankA].CurrentLevelCm = 100
	stamp := engine.states[model.TankA].LastEquipmentChange
	engine.OverridePump(true)

	_, err := engine.Step(model.TankA, 30)
	require.NoError(t, err)

	state, err := engine.Snapshot(model.TankA)
	require.NoError(t, err)
	assert.True(t, state.PumpRunning, "manual override must win over the hysteresis")
	assert.Equal(t, stamp, state.LastEquipmentChange, "overrides never stamp the equipment change")

	// releasing hands the decision back on the very next step
	engine.ReleasePump()

	_, err = engine.Step(model.TankA, 30)
	require.NoError(t, err)

	state, err = engine.Snapshot(model.TankA)
	require.NoError(t, err)
	assert.False(t, state.PumpRunning)
}

func TestManualChlorinatorOverride(t *testing.T) {
	engine := newTestEngine()

	engine.states[model.TankB].ChlorinePpm = 2.5
	engine.OverrideChlorinator(true)

	_, err := engine.Step(model.TankB, 30)
	require.NoError(t, err)

	state, err := engine.Snapshot(model.TankB)
	require.NoError(t, err)
	assert.True(t, state.ChlorinatorRunning, "manual dosing must keep running above the off threshold")
}

func TestPumpTransferCouplesTanks(t *testing.T) {
	// a zero profile isolates the transfer: no community draw on the tank
	engine := newTestEngine(WithProfile(ConsumptionProfile{}))

	engine.states[model.TankA].PumpRunning = false
	before := engine.states[model.TankB].CurrentLevelCm

	_, err := engine.Step(model.TankB, 30)
	require.NoError(t, err)

	state, err := engine.Snapshot(model.TankB)
	require.NoError(t, err)
	assert.Equal(t, before, state.CurrentLevelCm, "no transfer while the pump is off")

	engine.OverridePump(true)
	before = state.CurrentLevelCm

	_, err = engine.Step(model.TankB, 30)
	require.NoError(t, err)

	state, err = engine.Snapshot(model.TankB)
	require.NoError(t, err)
	assert.Greater(t, state.CurrentLevelCm, before, "transfer must raise the tank while the pump runs")
}

func TestReadingShape(t *testing.T) {
	engine := newTestEngine()

	cistern, err := engine.Step(model.TankA, 30)
	require.NoError(t, err)

	assert.Equal(t, model.TankA, cistern.TankID)
	assert.Equal(t, "Cisterna", cistern.TankName)
	assert.Equal(t, testClock, cistern.Timestamp)
	assert.Equal(t, sensorStatusActive, cistern.SensorStatus)
	assert.Equal(t, dataSourceSim, cistern.DataSource)
	assert.Nil(t, cistern.ChlorinePpm, "the cistern has no chlorine sensor")
	assert.Nil(t, cistern.ChlorinatorStatus)
	assert.Empty(t, cistern.ChlorineStatus)

	tank, err := engine.Step(model.TankB, 30)
	require.NoError(t, err)

	require.NotNil(t, tank.ChlorinePpm)
	require.NotNil(t, tank.ChlorinatorStatus)
	assert.Equal(t, model.ChlorineStatusFor(*tank.ChlorinePpm), tank.ChlorineStatus)
	assert.Equal(t, model.DeriveStatus(tank.WaterLevelPercent, tank.ChlorinePpm), tank.Status)
}

func TestReadingNoiseIsReportedOnly(t *testing.T) {
	engine := newTestEngine()

	reading, err := engine.Step(model.TankA, 30)
	require.NoError(t, err)

	state, err := engine.Snapshot(model.TankA)
	require.NoError(t, err)

	// rounding of the reported value can push it just past the noise band
	assert.InDelta(t, state.CurrentLevelCm, reading.WaterLevelCm, levelNoiseTankACm+0.01,
		"reported level must stay within the sensor noise band of the true level")
}

func TestReadingRounding(t *testing.T) {
	engine := newTestEngine()

	reading, err := engine.Step(model.TankB, 30)
	require.NoError(t, err)

	assert.Equal(t, round(reading.WaterLevelCm, 2), reading.WaterLevelCm)
	assert.Equal(t, round(reading.WaterLevelPercent, 1), reading.WaterLevelPercent)
	assert.Equal(t, round(reading.WaterVolumeM3, 2), reading.WaterVolumeM3)
	require.NotNil(t, reading.ChlorinePpm)
	assert.Equal(t, round(*reading.ChlorinePpm, 3), *reading.ChlorinePpm)
}

func TestSnapshotReturnsCopy(t *testing.T) {
	engine := newTestEngine()

	state, err := engine.Snapshot(model.TankA)
	require.NoError(t, err)

	state.CurrentLevelCm = 0

	fresh, err := engine.Snapshot(model.TankA)
	require.NoError(t, err)
	assert.Equal(t, seedLevelTankACm, fresh.CurrentLevelCm)
}

func TestSeededState(t *testing.T) {
	engine := newTestEngine()

	cistern, err := engine.Snapshot(model.TankA)
	require.NoError(t, err)
	assert.Equal(t, seedLevelTankACm, cistern.CurrentLevelCm)

	tank, err := engine.Snapshot(model.TankB)
	require.NoError(t, err)
	assert.Equal(t, seedLevelTankBCm, tank.CurrentLevelCm)
	assert.Equal(t, seedChlorinePpm, tank.ChlorinePpm)
}
