package taipower

/*------------------------------------------------------------------
 *
 * Purpose:	TWD67 TM2 easting/northing to TWD67 latitude/longitude.
 *
 * Description:	Inverse Transverse Mercator, Redfearn series, as given in
 *		EPSG Guidance Note 7 part 2.  The footpoint latitude series
 *		runs through sin(8 mu).  Latitude corrections go to D^6 and
 *		longitude corrections to D^5.  Do not add or drop terms,
 *		published TWD67 tables are computed at exactly these orders.
 *
 * References:	https://en.wikipedia.org/wiki/Transverse_Mercator_projection
 *		http://www.sunriver.com.tw/grid_tm2.htm
 *		http://www.ihsenergy.com/epsg/guid7.pdf
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// TM2Params describe an ellipsoid and a transverse Mercator zone on it.
type TM2Params struct {
	SemiMajorAxis   float64 // a, metres
	Flattening      float64 // f
	ScaleFactor     float64 // k0 on the central meridian
	FalseEasting    float64 // FE, metres
	FalseNorthing   float64 // FN, metres
	CentralMeridian s1.Angle
}

// TWD67TM2 is the 2 degree zone centred on 121E used by the Taipower grid.
var TWD67TM2 = TM2Params{
	SemiMajorAxis:   6378160,
	Flattening:      1 / 298.25,
	ScaleFactor:     0.9999,
	FalseEasting:    250000,
	FalseNorthing:   0,
	CentralMeridian: 121 * s1.Degree,
}

// GeoCoord is a geographic position in decimal degrees.
type GeoCoord struct {
	Lat float64
	Lon float64
}

func (g GeoCoord) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(g.Lat, g.Lon)
}

func (g GeoCoord) String() string {
	return fmt.Sprintf("latitude = %.6f, longitude = %.6f", g.Lat, g.Lon)
}

// Projector converts TM2 coordinates to geographic ones. It holds no
// mutable state.
type Projector struct {
	params TM2Params
}

func NewProjector(params TM2Params) *Projector {
	return &Projector{params: params}
}

// DefaultProjector uses TWD67TM2.
var DefaultProjector = NewProjector(TWD67TM2)

func (p *Projector) Params() TM2Params {
	return p.params
}

/*------------------------------------------------------------------
 *
 * Function:	ToGeodetic
 *
 * Purpose:	Inverse projection.
 *
 * Inputs:	c	- Easting/northing in metres.
 *
 * Returns:	Latitude/longitude in degrees.
 *
 * Limitations:	No error return.  Far outside Taiwan the series stops
 *		converging and the result is meaningless, but it is
 *		computed without panicking.
 *
 *------------------------------------------------------------------*/

func (p *Projector) ToGeodetic(c TM2Coord) GeoCoord {
	var (
		a  = p.params.SemiMajorAxis
		f  = p.params.Flattening
		k0 = p.params.ScaleFactor
		FE = p.params.FalseEasting
		FN = p.params.FalseNorthing
	)

	var E = float64(c.Easting)
	var N = float64(c.Northing)

	var e2 = 2*f - f*f
	var e4 = e2 * e2
	var e6 = e4 * e2
	var e1 = (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))
	var ep2 = e2 / (1 - e2) // second eccentricity squared

	// Meridional arc.  The TWD67 TM2 origin is on the equator so M0 = 0.
	var M0 = 0.0
	var M1 = M0 + (N-FN)/k0

	// Footpoint latitude.
	var mu1 = M1 / (a * (1 - e2/4 - 3*e4/64 - 5*e6/256))

	var phi1 = mu1 +
		(3*e1/2-27*math.Pow(e1, 3)/32)*math.Sin(2*mu1) +
		(21*e1*e1/16-55*math.Pow(e1, 4)/32)*math.Sin(4*mu1) +
		(151*math.Pow(e1, 3)/96)*math.Sin(6*mu1) +
		(1097*math.Pow(e1, 4)/512)*math.Sin(8*mu1)

	var sinPhi1 = math.Sin(phi1)
	var cosPhi1 = math.Cos(phi1)
	var tanPhi1 = math.Tan(phi1)

	var v1 = a / math.Sqrt(1-e2*sinPhi1*sinPhi1)                  // prime vertical
	var rho1 = a * (1 - e2) / math.Pow(1-e2*sinPhi1*sinPhi1, 1.5) // meridian
	var T1 = tanPhi1 * tanPhi1
	var C1 = ep2 * cosPhi1 * cosPhi1
	var D = (E - FE) / (v1 * k0)

	var D2 = D * D
	var D3 = D2 * D
	var D4 = D3 * D
	var D5 = D4 * D
	var D6 = D5 * D

	var phi = phi1 - (v1*tanPhi1/rho1)*(D2/2-
		(5+3*T1+10*C1-4*C1*C1-9*ep2)*D4/24+
		(61+90*T1+298*C1+45*T1*T1-252*ep2-3*C1*C1)*D6/720)

	var lambda = p.params.CentralMeridian.Radians() + (D-
		(1+2*T1+C1)*D3/6+
		(5-2*C1+28*T1-3*C1*C1+8*ep2+24*T1*T1)*D5/120)/cosPhi1

	return GeoCoord{
		Lat: s1.Angle(phi).Degrees(),
		Lon: s1.Angle(lambda).Degrees(),
	}
}

// TM2ToGeodetic projects with DefaultProjector.
func TM2ToGeodetic(c TM2Coord) GeoCoord {
	return DefaultProjector.ToGeodetic(c)
}
