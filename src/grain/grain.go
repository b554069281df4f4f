// Package grain holds the grain-size distribution model: bins of particle
// counts keyed by diameter, the derived cumulative curve and summary
// statistics used by the report and the charts.
package grain

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// Bin is one grain-size interval and the number of particles observed in it.
type Bin struct {
	DiameterMM float64 `json:"diameter_mm"`
	Count      int     `json:"count"`
}

// Dataset is an ordered sequence of bins, diameters strictly increasing.
type Dataset []Bin

// DefaultDataset returns the reference distribution shown by the client until a
// real analysis backend provides one. Counts sum to 101, not 100.
func DefaultDataset() Dataset {
	return Dataset{
		{0.25, 5}, {0.30, 10}, {0.35, 20}, {0.40, 25}, {0.45, 20},
		{0.50, 10}, {0.55, 5}, {0.60, 3}, {0.65, 2}, {0.70, 1},
	}
}

// DegenerateDatasetError reports a dataset that cannot be scaled or plotted.
// Err carries every violated invariant.
type DegenerateDatasetError struct {
	Err error
}

func (e *DegenerateDatasetError) Error() string {
	return fmt.Sprintf("degenerate dataset: %v", e.Err)
}

func (e *DegenerateDatasetError) Unwrap() error { return e.Err }

// Validate checks the dataset invariants and returns a *DegenerateDatasetError
// listing all problems, or nil.
func (d Dataset) Validate() error {
	if len(d) == 0 {
		return &DegenerateDatasetError{Err: fmt.Errorf("no bins")}
	}
	var merr *multierror.Error
	for i, b := range d {
		if math.IsNaN(b.DiameterMM) || math.IsInf(b.DiameterMM, 0) {
			merr = multierror.Append(merr, fmt.Errorf("bin %d: diameter is not finite", i))
		}
		if b.Count < 0 {
			merr = multierror.Append(merr, fmt.Errorf("bin %d: negative count %d", i, b.Count))
		}
		if i > 0 && !(b.DiameterMM > d[i-1].DiameterMM) {
			merr = multierror.Append(merr, fmt.Errorf("bin %d: diameter %.4g not greater than %.4g", i, b.DiameterMM, d[i-1].DiameterMM))
		}
	}
	if d.Total() == 0 {
		merr = multierror.Append(merr, fmt.Errorf("all counts are zero"))
	}
	if err := merr.ErrorOrNil(); err != nil {
		return &DegenerateDatasetError{Err: err}
	}
	return nil
}

// Total returns the sum of all counts.
func (d Dataset) Total() int {
	total := 0
	for _, b := range d {
		total += b.Count
	}
	return total
}

// MaxCount returns the largest bin count (0 for an empty dataset).
func (d Dataset) MaxCount() int {
	maxCount := 0
	for _, b := range d {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	return maxCount
}

// DiameterRange returns the first and last diameter.
func (d Dataset) DiameterRange() (float64, float64) {
	if len(d) == 0 {
		return 0, 0
	}
	return d[0].DiameterMM, d[len(d)-1].DiameterMM
}

// Normalized maps a diameter to [0,1] within the dataset range. A dataset with a
// single distinct diameter maps everything to 0.
func (d Dataset) Normalized(diameter float64) float64 {
	lo, hi := d.DiameterRange()
	if hi <= lo {
		return 0
	}
	return (diameter - lo) / (hi - lo)
}

// Cumulative returns the cumulative percentage passing at each bin: the running
// count divided by the total, times 100. The running sum is kept as an integer
// so the last value is exactly 100.
func (d Dataset) Cumulative() ([]float64, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	total := float64(d.Total())
	out := make([]float64, len(d))
	running := 0
	for i, b := range d {
		running += b.Count
		out[i] = float64(running) * 100 / total
	}
	return out, nil
}

// Clone returns an independent copy.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}
