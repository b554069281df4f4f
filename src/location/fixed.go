package location

import "context"

// Demo location of the field client: Digha beach, West Bengal.
const (
	DemoArea = "DIGHA, WB, INDIA"
)

// Digha returns the fixed demo coordinates 21°37'39.94"N 87°31'10.74"E.
func Digha() Coordinates {
	lat, _ := FromDMS(21, 37, 39.94, 'N')
	lon, _ := FromDMS(87, 31, 10.74, 'E')
	return Coordinates{Latitude: lat, Longitude: lon, Area: DemoArea}
}

// Fixed always reports the same position.
type Fixed struct {
	Coordinates Coordinates
}

// NewFixed returns a Fixed service for the demo location.
func NewFixed() *Fixed { return &Fixed{Coordinates: Digha()} }

func (f *Fixed) Fetch(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	return f.Coordinates, nil
}
