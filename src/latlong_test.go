package taipower

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatitudeToDMS(t *testing.T) {
	tests := []struct {
		name     string
		lat      float64
		expected string
	}{
		{"G8150HD7812", 24.183680187199577, "24°11'01.25\"N"},
		{"B8146CC58", 25.06624792095287, "25°03'58.49\"N"},
		{"equator", 0, "0°00'00.00\"N"},
		{"south", -33.5, "33°30'00.00\"S"},
		{"seconds round up into next degree", 23.9999999999, "24°00'00.00\"N"},
		{"tiny negative rounds to zero", -0.0000000001, "0°00'00.00\"N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LatitudeToDMS(tt.lat))
		})
	}
}

func TestLongitudeToDMS(t *testing.T) {
	assert.Equal(t, "120°51'28.72\"E", LongitudeToDMS(120.85797824316032))
	assert.Equal(t, "121°38'41.20\"E", LongitudeToDMS(121.64477731698736))
	assert.Equal(t, "71°21'56.00\"W", LongitudeToDMS(-71.365555555555))
}

func TestGeoCoordDMS(t *testing.T) {
	var g = GeoCoord{Lat: 24.183680187199577, Lon: 120.85797824316032}
	assert.Equal(t, "24°11'01.25\"N 120°51'28.72\"E", g.DMS())
}
