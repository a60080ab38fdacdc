package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ppm(v float64) *float64 {
	return &v
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name         string
		levelPercent float64
		chlorinePpm  *float64
		expected     Status
	}{
		{"normal without chlorine sensor", 55, nil, StatusNormal},
		{"normal with chlorine sensor", 55, ppm(1.2), StatusNormal},
		{"low water", 15, nil, StatusLowWater},
		{"high water", 95, nil, StatusHighWater},
		{"low chlorine", 55, ppm(0.3), StatusLowChlorine},
		{"high chlorine", 55, ppm(2.4), StatusHighChlorine},
		{"water beats chlorine", 15, ppm(0.3), StatusLowWater},
		{"high water beats high chlorine", 95, ppm(2.4), StatusHighWater},
		{"boundaries are inclusive-normal", 20, ppm(0.5), StatusNormal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, DeriveStatus(test.levelPercent, test.chlorinePpm))
		})
	}
}

func TestChlorineStatusFor(t *testing.T) {
	assert.Equal(t, ChlorineLow, ChlorineStatusFor(0.49))
	assert.Equal(t, ChlorineNormal, ChlorineStatusFor(0.5))
	assert.Equal(t, ChlorineNormal, ChlorineStatusFor(2.0))
	assert.Equal(t, ChlorineHigh, ChlorineStatusFor(2.01))
}
