package analysis

import (
	"fmt"
	"strings"
)

// TimeLayout is used for the report timestamp, e.g. 2025-09-25 1:48pm.
const TimeLayout = "2006-01-02 3:04pm"

// Report renders the result block shown after an analysis completes.
func Report(r *Result) string {
	if r == nil {
		return ""
	}
	s := r.Summary
	var b strings.Builder
	line := func(format string, args ...interface{}) {
		b.WriteString("• ")
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\n")
	}
	b.WriteString("SAND TYPE ANALYSIS COMPLETE:\n\n")
	line("Beach Zone: %s", r.BeachZone)
	line("Location: %s", r.BeachZoneDetail)
	line("Sand Size: %s", s.Classification)
	line("Median (d50): %.2f mm", s.D50)
	line("Mean Grain Size: %.2f mm", s.Mean)
	line("Range (d10–d90): %.2f – %.2f mm", s.D10, s.D90)
	line("Beach Type: %s", r.BeachType)
	b.WriteString("\n")
	line("Category: %s → %s", className(s.Classification), BeachZoneShort)
	if r.Location != nil {
		line("GPS: %s", r.Location.Decimal())
	} else {
		line("GPS: unavailable")
	}
	line("Time: %s", r.At.Format(TimeLayout))
	line("Image: %s", r.ImagePath)
	return strings.TrimRight(b.String(), "\n")
}

// className drops the size range, "Medium Sand (0.25–0.5 mm)" -> "Medium Sand".
func className(c string) string {
	if i := strings.Index(c, " ("); i > 0 {
		return c[:i]
	}
	return c
}
