package taipower

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// Mean earth radius, for turning s2 angles into metres.
const earthRadiusMetres = 6371010.0

func TestTM2ToGeodetic(t *testing.T) {
	tests := []struct {
		name string
		c    TM2Coord
		lat  float64
		lon  float64
	}{
		{"G8150HD7812", TM2Coord{Easting: 235571, Northing: 2675382}, 24.183680187199577, 120.85797824316032},
		{"B8146CC58", TM2Coord{Easting: 315050, Northing: 2773280}, 25.06624792095287, 121.64477731698736},
		{"south west corner of grid", TM2Coord{Easting: 90000, Northing: 2400000}, 21.68962915352984, 119.45387553332678},
		{"north east corner of grid", TM2Coord{Easting: 409999, Northing: 2799999}, 25.300309736217702, 122.5888383041587},
		{"central meridian", TM2Coord{Easting: 250000, Northing: 2500000}, 22.600002689118426, 121.0},
		{"false origin", TM2Coord{Easting: 250000, Northing: 0}, 0, 121.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g = TM2ToGeodetic(tt.c)
			assert.InDelta(t, tt.lat, g.Lat, 1e-9, "latitude")
			assert.InDelta(t, tt.lon, g.Lon, 1e-9, "longitude")
		})
	}
}

func TestProjectorParams(t *testing.T) {
	var p = DefaultProjector.Params()

	assert.InDelta(t, 6378160.0, p.SemiMajorAxis, 0)
	assert.InDelta(t, 1/298.25, p.Flattening, 0)
	assert.InDelta(t, 0.9999, p.ScaleFactor, 0)
	assert.InDelta(t, 250000.0, p.FalseEasting, 0)
	assert.InDelta(t, 0.0, p.FalseNorthing, 0)
	assert.InDelta(t, 121.0, p.CentralMeridian.Degrees(), 1e-12)
}

func TestProjectorFarOutsideDomainDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		TM2ToGeodetic(TM2Coord{Easting: math.MaxInt32, Northing: math.MinInt32})
		TM2ToGeodetic(TM2Coord{Easting: -5000000, Northing: 20000000})
	})
}

func TestGeoCoordLatLng(t *testing.T) {
	var g = GeoCoord{Lat: 24.183680187199577, Lon: 120.85797824316032}
	var ll = g.LatLng()

	assert.True(t, ll.IsValid())
	assert.InDelta(t, g.Lat, ll.Lat.Degrees(), 1e-12)
	assert.InDelta(t, g.Lon, ll.Lng.Degrees(), 1e-12)
	assert.Equal(t, "latitude = 24.183680, longitude = 120.857978", g.String())
}

// One metre on the plane is about 9 microdegrees of latitude in Taiwan.
// Neighbouring points must stay close, in the right direction.
func Test_projectionIsContinuous(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var c = TM2Coord{
			Easting:  rapid.IntRange(90000, 409998).Draw(t, "easting"),
			Northing: rapid.IntRange(2400000, 2799998).Draw(t, "northing"),
		}

		var here = TM2ToGeodetic(c)
		var east = TM2ToGeodetic(TM2Coord{Easting: c.Easting + 1, Northing: c.Northing})
		var north = TM2ToGeodetic(TM2Coord{Easting: c.Easting, Northing: c.Northing + 1})

		assert.Greater(t, east.Lon, here.Lon)
		assert.Less(t, east.Lon-here.Lon, 2e-5)
		assert.Less(t, math.Abs(east.Lat-here.Lat), 1e-6)

		assert.Greater(t, north.Lat, here.Lat)
		assert.Less(t, north.Lat-here.Lat, 2e-5)
		assert.Less(t, math.Abs(north.Lon-here.Lon), 1e-6)

		var stepEast = s2.LatLng.Distance(here.LatLng(), east.LatLng()).Radians() * earthRadiusMetres
		var stepNorth = s2.LatLng.Distance(here.LatLng(), north.LatLng()).Radians() * earthRadiusMetres

		assert.InDelta(t, 1.0, stepEast, 0.02)
		assert.InDelta(t, 1.0, stepNorth, 0.02)
	})
}

func Test_gridCodesLandInTaiwan(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var g = drawGridCode(t)

		var conv, err = Convert(g.String())
		if !assert.NoError(t, err) {
			return
		}

		assert.GreaterOrEqual(t, conv.Latitude, 21.0)
		assert.LessOrEqual(t, conv.Latitude, 26.0)
		assert.GreaterOrEqual(t, conv.Longitude, 119.0)
		assert.LessOrEqual(t, conv.Longitude, 123.0)
	})
}
