package taipower

// Conversion is the result of taking one grid code all the way to TWD67
// latitude/longitude.
type Conversion struct {
	Grid      string  `yaml:"grid"`
	Easting   int     `yaml:"easting"`
	Northing  int     `yaml:"northing"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

func (c Conversion) TM2() TM2Coord {
	return TM2Coord{Easting: c.Easting, Northing: c.Northing}
}

func (c Conversion) Geo() GeoCoord {
	return GeoCoord{Lat: c.Latitude, Lon: c.Longitude}
}

// Converter chains a Decoder and a Projector. Nil fields use the defaults.
type Converter struct {
	Decoder   *Decoder
	Projector *Projector
}

// Convert decodes code and projects the result. A decode error fails the
// whole conversion.
func (cv *Converter) Convert(code string) (Conversion, error) {
	var g, tm2, err = cv.Decoder.decode(code)
	if err != nil {
		return Conversion{}, err
	}

	var projector = cv.Projector
	if projector == nil {
		projector = DefaultProjector
	}

	var geo = projector.ToGeodetic(tm2)

	return Conversion{
		Grid:      g.String(),
		Easting:   tm2.Easting,
		Northing:  tm2.Northing,
		Latitude:  geo.Lat,
		Longitude: geo.Lon,
	}, nil
}

// Convert uses the default tables and TWD67TM2.
func Convert(code string) (Conversion, error) {
	return (&Converter{}).Convert(code)
}
