package taipower

/*------------------------------------------------------------------
 *
 * Purpose:   	Text forms of latitude and longitude.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"math"
)

/*------------------------------------------------------------------
 *
 * Function:	degreesToDMS
 *
 * Purpose:	Split decimal degrees into degrees, minutes, seconds.
 *
 * Inputs:	d	- Decimal degrees, any sign.
 *		pos	- Hemisphere letter for d >= 0.
 *		neg	- Hemisphere letter for d < 0.
 *
 * Returns:	String like 24°11'01.25"N
 *
 * Description:	Round once, in hundredths of a second, and split the
 *		integer.  Rounding seconds separately could produce
 *		59'60.00" which nobody wants to see.
 *
 *---------------------------------------------------------------*/

func degreesToDMS(d float64, pos, neg byte) string {
	var hundredths = int64(math.Round(math.Abs(d) * 360000))

	var hemi = pos
	if d < 0 && hundredths != 0 {
		hemi = neg
	}

	var deg = hundredths / 360000
	var mins = hundredths % 360000 / 6000
	var sec = float64(hundredths%6000) / 100

	return fmt.Sprintf("%d°%02d'%05.2f\"%c", deg, mins, sec, hemi)
}

func LatitudeToDMS(dlat float64) string {
	return degreesToDMS(dlat, 'N', 'S')
}

func LongitudeToDMS(dlon float64) string {
	return degreesToDMS(dlon, 'E', 'W')
}

// DMS renders g as latitude then longitude in degrees, minutes, seconds.
func (g GeoCoord) DMS() string {
	return LatitudeToDMS(g.Lat) + " " + LongitudeToDMS(g.Lon)
}
