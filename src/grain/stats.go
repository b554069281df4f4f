package grain

import "fmt"

// Summary condenses a distribution into the figures printed in the analysis report.
type Summary struct {
	D10            float64
	D50            float64
	D90            float64
	Mean           float64
	Total          int
	Classification string
}

// Percentile returns the diameter at which the cumulative curve reaches p
// percent, interpolating linearly between bin points. Values at or below the
// first point return the first diameter.
func (d Dataset) Percentile(p float64) (float64, error) {
	cum, err := d.Cumulative()
	if err != nil {
		return 0, err
	}
	if p < 0 || p > 100 {
		return 0, fmt.Errorf("percentile %.2f out of range [0,100]", p)
	}
	if p <= cum[0] {
		return d[0].DiameterMM, nil
	}
	for i := 1; i < len(cum); i++ {
		if p > cum[i] {
			continue
		}
		span := cum[i] - cum[i-1]
		if span == 0 {
			return d[i].DiameterMM, nil
		}
		frac := (p - cum[i-1]) / span
		return d[i-1].DiameterMM + frac*(d[i].DiameterMM-d[i-1].DiameterMM), nil
	}
	return d[len(d)-1].DiameterMM, nil
}

// Mean returns the count-weighted mean diameter.
func (d Dataset) Mean() (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	var sum float64
	for _, b := range d {
		sum += b.DiameterMM * float64(b.Count)
	}
	return sum / float64(d.Total()), nil
}

// Summarize computes d10, d50, d90, the mean and the Wentworth class of d50.
func (d Dataset) Summarize() (Summary, error) {
	var s Summary
	var err error
	if s.D10, err = d.Percentile(10); err != nil {
		return Summary{}, err
	}
	if s.D50, err = d.Percentile(50); err != nil {
		return Summary{}, err
	}
	if s.D90, err = d.Percentile(90); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = d.Mean(); err != nil {
		return Summary{}, err
	}
	s.Total = d.Total()
	s.Classification = Classify(s.D50)
	return s, nil
}

type wentworthClass struct {
	upperMM float64
	name    string
	rangeMM string
}

var wentworth = []wentworthClass{
	{0.0625, "Silt", "< 0.0625 mm"},
	{0.125, "Very Fine Sand", "0.0625–0.125 mm"},
	{0.25, "Fine Sand", "0.125–0.25 mm"},
	{0.5, "Medium Sand", "0.25–0.5 mm"},
	{1, "Coarse Sand", "0.5–1 mm"},
	{2, "Very Coarse Sand", "1–2 mm"},
}

// Classify names the Wentworth size class of a diameter, e.g. "Medium Sand (0.25–0.5 mm)".
func Classify(diameterMM float64) string {
	for _, c := range wentworth {
		if diameterMM < c.upperMM {
			return fmt.Sprintf("%s (%s)", c.name, c.rangeMM)
		}
	}
	return "Granule (> 2 mm)"
}
