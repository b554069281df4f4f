package analysis

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/iafilius/GrainEye/src/grain"
	"github.com/iafilius/GrainEye/src/location"
)

func writeImage(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "sample.jpg")
	if err := os.WriteFile(p, []byte("not really a jpeg"), 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	return p
}

var fixedTime = time.Date(2025, 9, 25, 13, 48, 0, 0, time.UTC)

func TestSimulatedAnalyze(t *testing.T) {
	img := writeImage(t)
	svc := &Simulated{
		Provider: grain.NewFixed(nil),
		Location: location.NewFixed(),
		Clock:    func() time.Time { return fixedTime },
	}
	res, err := svc.Analyze(context.Background(), img)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.ID == uuid.Nil {
		t.Fatalf("result has no id")
	}
	if res.ImagePath != img || !res.At.Equal(fixedTime) {
		t.Fatalf("unexpected result header: %+v", res)
	}
	if len(res.Dataset) != 10 || res.Summary.Total != 101 {
		t.Fatalf("unexpected dataset: %v (total %d)", res.Dataset, res.Summary.Total)
	}
	if res.BeachZone != BeachZone || res.BeachType != BeachType {
		t.Fatalf("beach classification = %q / %q", res.BeachZone, res.BeachType)
	}
	if res.Location == nil || res.Location.Area != location.DemoArea {
		t.Fatalf("location not attached: %+v", res.Location)
	}
}

func TestSimulatedMissingImage(t *testing.T) {
	svc := &Simulated{}
	_, err := svc.Analyze(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	_, err = svc.Analyze(context.Background(), "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist for empty path, got %v", err)
	}
}

func TestSimulatedHonoursCancellation(t *testing.T) {
	img := writeImage(t)
	svc := &Simulated{Delay: time.Hour}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := svc.Analyze(ctx, img)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Fatalf("cancellation not honoured promptly")
	}
}

type failingProvider struct{}

func (failingProvider) Dataset(context.Context) (grain.Dataset, error) {
	return grain.Dataset{{DiameterMM: 0.3, Count: 0}}, nil
}

func TestSimulatedDegenerateDataset(t *testing.T) {
	svc := &Simulated{Provider: failingProvider{}}
	_, err := svc.Analyze(context.Background(), writeImage(t))
	var de *grain.DegenerateDatasetError
	if !errors.As(err, &de) {
		t.Fatalf("expected DegenerateDatasetError, got %v", err)
	}
}

type brokenLocation struct{}

func (brokenLocation) Fetch(context.Context) (location.Coordinates, error) {
	return location.Coordinates{}, errors.New("no fix")
}

func TestSimulatedLocationFailureIsNotFatal(t *testing.T) {
	svc := &Simulated{Location: brokenLocation{}}
	res, err := svc.Analyze(context.Background(), writeImage(t))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Location != nil {
		t.Fatalf("expected no location, got %+v", res.Location)
	}
}

func TestReport(t *testing.T) {
	img := writeImage(t)
	svc := &Simulated{Location: location.NewFixed(), Clock: func() time.Time { return fixedTime }}
	res, err := svc.Analyze(context.Background(), img)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	rep := Report(res)
	for _, want := range []string{
		"SAND TYPE ANALYSIS COMPLETE:",
		"• Beach Zone: Intertidal Zone (Foreshore / Swash Zone)",
		"• Location: Area between high tide and low tide",
		"• Sand Size: Medium Sand (0.25–0.5 mm)",
		"• Median (d50): 0.38 mm",
		"• Mean Grain Size: 0.41 mm",
		"• Range (d10–d90): 0.28 – 0.51 mm",
		"• Beach Type: Typical sandy beach, dissipative",
		"• Category: Medium Sand → Intertidal",
		"• GPS: 21.63°N, 87.52°E",
		"• Time: 2025-09-25 1:48pm",
		"• Image: " + img,
	} {
		if !strings.Contains(rep, want) {
			t.Errorf("report missing %q\n%s", want, rep)
		}
	}
	if Report(nil) != "" {
		t.Errorf("nil result must render empty")
	}

	res.Location = nil
	if !strings.Contains(Report(res), "GPS: unavailable") {
		t.Errorf("missing GPS fallback")
	}
}
