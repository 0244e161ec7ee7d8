package taipower

/* TWD67 TM2 to Latitude / Longitude conversion */

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

func TM2LLMain() {
	if len(os.Args) != 3 {
		tm2llUsage()
		os.Exit(1)
	}

	var c, err = parseTM2Args(os.Args[1], os.Args[2])
	if err != nil {
		fmt.Printf("%s\n\n", err)
		tm2llUsage()
		os.Exit(1)
	}

	var geo = TM2ToGeodetic(c)

	fmt.Printf("from TM2, latitude = %.6f, longitude = %.6f\n", geo.Lat, geo.Lon)
	fmt.Printf("from TM2, %s\n", geo.DMS())
}

func parseTM2Args(eastingStr, northingStr string) (TM2Coord, error) {
	var easting, eErr = strconv.Atoi(eastingStr)
	if eErr != nil {
		return TM2Coord{}, errors.Errorf("easting %q is not a whole number of metres", eastingStr)
	}

	var northing, nErr = strconv.Atoi(northingStr)
	if nErr != nil {
		return TM2Coord{}, errors.Errorf("northing %q is not a whole number of metres", northingStr)
	}

	return TM2Coord{Easting: easting, Northing: northing}, nil
}

func tm2llUsage() {
	fmt.Println("TWD67 TM2 to Latitude / Longitude conversion")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("\ttm2ll  easting  northing")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\teasting is x coordinate in meters")
	fmt.Println("\tnorthing is y coordinate in meters")
	fmt.Println("")
	fmt.Println("Example:")
	fmt.Println("\ttm2ll 235571 2675382")
}
