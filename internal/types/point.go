package types

// Point is a validated geographic coordinate tied back to the input record it
// was resolved from. Index is the position of that record in the input
// sequence.
type Point struct {
	Coordinates Coords
	Index       int
}

func NewPoint(index int, latitude, longitude float64) Point {
	return Point{
		Coordinates: NewCoords(latitude, longitude),
		Index:       index,
	}
}
