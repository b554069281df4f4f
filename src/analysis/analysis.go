// Package analysis turns an uploaded sand sample photo into a grain-size
// result and the report text shown next to the charts.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/iafilius/GrainEye/src/applog"
	"github.com/iafilius/GrainEye/src/grain"
	"github.com/iafilius/GrainEye/src/location"
)

// DefaultDelay mimics the processing time of the field client.
const DefaultDelay = 1200 * time.Millisecond

// Fixed beach classification reported for every sample until a real
// classifier exists.
const (
	BeachZone       = "Intertidal Zone (Foreshore / Swash Zone)"
	BeachZoneDetail = "Area between high tide and low tide"
	BeachType       = "Typical sandy beach, dissipative"
	BeachZoneShort  = "Intertidal"
)

// Result is the outcome of one analysis.
type Result struct {
	ID              uuid.UUID             `json:"id"`
	ImagePath       string                `json:"image_path"`
	Dataset         grain.Dataset         `json:"dataset"`
	Summary         grain.Summary         `json:"summary"`
	BeachZone       string                `json:"beach_zone"`
	BeachZoneDetail string                `json:"beach_zone_detail"`
	BeachType       string                `json:"beach_type"`
	Location        *location.Coordinates `json:"location,omitempty"`
	At              time.Time             `json:"at"`
}

// Service analyses one image.
type Service interface {
	Analyze(ctx context.Context, imagePath string) (*Result, error)
}

// Simulated produces results from a dataset provider after a fixed delay.
// Location, if set, is resolved and attached to each result; a failing
// lookup is logged and the result carries no position.
type Simulated struct {
	Delay    time.Duration
	Provider grain.DatasetProvider
	Location location.Service
	Clock    func() time.Time
}

// NewSimulated returns a Simulated service over the default dataset.
func NewSimulated() *Simulated {
	return &Simulated{Delay: DefaultDelay, Provider: grain.NewFixed(nil)}
}

func (s *Simulated) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *Simulated) Analyze(ctx context.Context, imagePath string) (*Result, error) {
	defer applog.TimeTrack(time.Now(), "analyze")
	if imagePath == "" {
		return nil, fmt.Errorf("analyze: no image selected: %w", os.ErrNotExist)
	}
	fi, err := os.Stat(imagePath)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("analyze: %s is a directory", imagePath)
	}

	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	provider := s.Provider
	if provider == nil {
		provider = grain.NewFixed(nil)
	}
	ds, err := provider.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze: dataset: %w", err)
	}
	sum, err := ds.Summarize()
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	res := &Result{
		ID:              uuid.New(),
		ImagePath:       imagePath,
		Dataset:         ds,
		Summary:         sum,
		BeachZone:       BeachZone,
		BeachZoneDetail: BeachZoneDetail,
		BeachType:       BeachType,
		At:              s.now(),
	}
	if s.Location != nil {
		c, err := s.Location.Fetch(ctx)
		switch {
		case err == nil:
			res.Location = &c
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		default:
			applog.Warnf("location lookup failed: %v", err)
		}
	}
	applog.Infof("analysis %s: d50=%.3f mm class=%q", res.ID, sum.D50, sum.Classification)
	return res, nil
}
