package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConsumptionProfile(t *testing.T) {
	profile := DefaultConsumptionProfile()

	for hour := 0; hour < 24; hour++ {
		multiplier := profile.Multiplier(hour)
		assert.GreaterOrEqual(t, multiplier, 0.1)
		assert.LessOrEqual(t, multiplier, 1.0)
	}

	// morning, midday and evening peaks
	assert.Equal(t, 1.0, profile.Multiplier(7))
	assert.Equal(t, 1.0, profile.Multiplier(12))
	assert.Equal(t, 1.0, profile.Multiplier(18))

	// almost no draw overnight
	assert.Equal(t, 0.1, profile.Multiplier(2))
}

func TestMultiplierOutOfRange(t *testing.T) {
	profile := DefaultConsumptionProfile()

	assert.Equal(t, fallbackMultiplier, profile.Multiplier(-1))
	assert.Equal(t, fallbackMultiplier, profile.Multiplier(24))
}
