package location

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
)

// DefaultCityDBPaths are probed when no database path is configured.
var DefaultCityDBPaths = []string{
	"/usr/share/GeoIP/GeoLite2-City.mmdb",
	"/usr/local/share/GeoIP/GeoLite2-City.mmdb",
	"/var/lib/GeoIP/GeoLite2-City.mmdb",
}

// ErrNoDatabase is returned when no GeoLite2-City database could be opened.
var ErrNoDatabase = errors.New("geoip: no city database available")

// GeoIP resolves the position of a public IP address from a GeoLite2-City
// database. The database is opened per lookup so a replaced file is picked up.
type GeoIP struct {
	DBPath string
	IP     string
}

func (g *GeoIP) open() (*geoip2.Reader, error) {
	if g.DBPath != "" {
		db, err := geoip2.Open(g.DBPath)
		if err != nil {
			return nil, fmt.Errorf("geoip: open %s: %w", g.DBPath, err)
		}
		return db, nil
	}
	for _, p := range DefaultCityDBPaths {
		if db, err := geoip2.Open(p); err == nil {
			return db, nil
		}
	}
	return nil, ErrNoDatabase
}

func (g *GeoIP) Fetch(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	ip := net.ParseIP(strings.TrimSpace(g.IP))
	if ip == nil {
		return Coordinates{}, fmt.Errorf("geoip: invalid public IP %q", g.IP)
	}
	db, err := g.open()
	if err != nil {
		return Coordinates{}, err
	}
	defer db.Close()
	rec, err := db.City(ip)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geoip: lookup %s: %w", ip, err)
	}
	c := Coordinates{
		Latitude:  rec.Location.Latitude,
		Longitude: rec.Location.Longitude,
		Area:      areaName(rec.City.Names["en"], subdivision(rec), rec.Country.IsoCode),
	}
	if c.Latitude == 0 && c.Longitude == 0 {
		return Coordinates{}, fmt.Errorf("geoip: no position for %s", ip)
	}
	return c, nil
}

func subdivision(rec *geoip2.City) string {
	if len(rec.Subdivisions) == 0 {
		return ""
	}
	if code := rec.Subdivisions[0].IsoCode; code != "" {
		return code
	}
	return rec.Subdivisions[0].Names["en"]
}

// areaName joins the non-empty parts upper-cased, e.g. "DIGHA, WB, IN".
func areaName(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return strings.Join(out, ", ")
}
