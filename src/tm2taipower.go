package taipower

/* TWD67 TM2 to Taipower grid code conversion */

import (
	"fmt"
	"os"
)

func TM2TaipowerMain() {
	if len(os.Args) != 3 {
		tm2taipowerUsage()
		os.Exit(1)
	}

	var c, err = parseTM2Args(os.Args[1], os.Args[2])
	if err != nil {
		fmt.Printf("%s\n\n", err)
		tm2taipowerUsage()
		os.Exit(1)
	}

	var g, encodeErr = EncodeGridCode(c)
	if encodeErr != nil {
		fmt.Printf("Conversion to Taipower grid failed:\n%s\n\n", encodeErr)
		os.Exit(1)
	}

	fmt.Printf("Taipower grid = %s\n", g)
}

func tm2taipowerUsage() {
	fmt.Println("TWD67 TM2 to Taipower grid code conversion")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("\ttm2taipower  easting  northing")
	fmt.Println("")
	fmt.Println("where,")
	fmt.Println("\teasting is x coordinate in meters")
	fmt.Println("\tnorthing is y coordinate in meters")
	fmt.Println("")
	fmt.Println("Example:")
	fmt.Println("\ttm2taipower 235571 2675382")
}
