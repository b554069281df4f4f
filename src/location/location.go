// Package location resolves where a sample was taken and keeps the tags that
// attach a position to an analysis result.
package location

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// Coordinates is a WGS84 position with a human readable area name.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Area      string  `json:"area,omitempty"`
}

// Service fetches the current sample location.
type Service interface {
	Fetch(ctx context.Context) (Coordinates, error)
}

// FromDMS converts degrees, minutes and seconds into decimal degrees.
// Hemisphere is one of N, S, E or W; S and W yield negative values.
func FromDMS(deg, min int, sec float64, hemisphere byte) (float64, error) {
	if deg < 0 || min < 0 || min >= 60 || sec < 0 || sec >= 60 {
		return 0, fmt.Errorf("invalid DMS %d° %d' %g\"", deg, min, sec)
	}
	v := float64(deg) + float64(min)/60 + sec/3600
	switch hemisphere {
	case 'N', 'E':
	case 'S', 'W':
		v = -v
	default:
		return 0, fmt.Errorf("invalid hemisphere %q", hemisphere)
	}
	return v, nil
}

// formatDMS renders v as 21° 37' 39.94" N. Seconds that round up to 60 carry
// into the minutes.
func formatDMS(v float64, pos, neg string) string {
	hemi := pos
	if v < 0 {
		hemi = neg
		v = -v
	}
	deg := int(v)
	rest := (v - float64(deg)) * 60
	min := int(rest)
	sec := math.Round((rest-float64(min))*60*100) / 100
	if sec >= 60 {
		sec -= 60
		min++
	}
	if min >= 60 {
		min -= 60
		deg++
	}
	return fmt.Sprintf("%d° %d' %.2f\" %s", deg, min, sec, hemi)
}

// LatitudeDMS formats the latitude in degrees, minutes and seconds.
func (c Coordinates) LatitudeDMS() string { return formatDMS(c.Latitude, "N", "S") }

// LongitudeDMS formats the longitude in degrees, minutes and seconds.
func (c Coordinates) LongitudeDMS() string { return formatDMS(c.Longitude, "E", "W") }

// FormatDMS returns the multi-line block shown in the location panel.
func (c Coordinates) FormatDMS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Latitude: %s\nLongitude: %s", c.LatitudeDMS(), c.LongitudeDMS())
	if c.Area != "" {
		fmt.Fprintf(&b, "\nArea: %s", c.Area)
	}
	return b.String()
}

// Decimal formats the position as 21.63°N, 87.52°E.
func (c Coordinates) Decimal() string {
	ns, ew := "N", "E"
	lat, lon := c.Latitude, c.Longitude
	if lat < 0 {
		ns, lat = "S", -lat
	}
	if lon < 0 {
		ew, lon = "W", -lon
	}
	return fmt.Sprintf("%.2f°%s, %.2f°%s", lat, ns, lon, ew)
}

// Valid reports whether the position lies within WGS84 bounds.
func (c Coordinates) Valid() bool {
	return !math.IsNaN(c.Latitude) && !math.IsNaN(c.Longitude) &&
		c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}
