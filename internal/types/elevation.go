package types

const FeetToMeters = 0.3048

type Elevation struct {
	Feet   float64 `json:"feet"`
	Meters float64 `json:"meters"`
}

// NewElevationFromMeters builds an Elevation from a value in meters, the unit
// the lookup service reports.
func NewElevationFromMeters(meters float64) Elevation {
	return Elevation{
		Meters: meters,
		Feet:   meters / FeetToMeters,
	}
}
