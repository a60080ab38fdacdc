package simulation

// ConsumptionProfile maps an hour of day (0-23) to a demand multiplier for
// the distribution tank. The curve follows a rural community's usage: almost
// nothing overnight, peaks in the morning, at midday and in the evening.
type ConsumptionProfile [24]float64

const fallbackMultiplier = 0.5

func DefaultConsumptionProfile() ConsumptionProfile {
	return ConsumptionProfile{
		0.1, 0.1, 0.1, 0.1, 0.2, // madrugada
		0.5, 0.8, 1.0, 0.9, 0.7, // morning
		0.6, 0.8, 1.0, 0.9, // midday
		0.7, 0.6, 0.7, 0.9, // afternoon
		1.0, 0.9, 0.8, 0.6, // evening
		0.4, 0.2, // late night
	}
}

// Multiplier returns the demand multiplier for the given hour. The caller is
// responsible for applying any random jitter on top of it.
func (p ConsumptionProfile) Multiplier(hour int) float64 {
	if hour < 0 || hour > 23 {
		return fallbackMultiplier
	}

	return p[hour]
}
