package grain

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultDatasetInvariants(t *testing.T) {
	ds := DefaultDataset()
	if err := ds.Validate(); err != nil {
		t.Fatalf("default dataset invalid: %v", err)
	}
	if len(ds) != 10 {
		t.Fatalf("expected 10 bins, got %d", len(ds))
	}
	if ds.Total() != 101 {
		t.Fatalf("total = %d, want 101", ds.Total())
	}
	if ds.MaxCount() != 25 {
		t.Fatalf("max count = %d, want 25", ds.MaxCount())
	}
	lo, hi := ds.DiameterRange()
	if lo != 0.25 || hi != 0.70 {
		t.Fatalf("range = [%v,%v]", lo, hi)
	}
}

func TestCumulativeFixedDataset(t *testing.T) {
	// Running sums 5,15,35,60,80,90,95,98,100,101 over a total of 101.
	want := []float64{4.95, 14.85, 34.65, 59.41, 79.21, 89.11, 94.06, 97.03, 99.01, 100.0}
	cum, err := DefaultDataset().Cumulative()
	if err != nil {
		t.Fatalf("cumulative: %v", err)
	}
	for i := range want {
		if math.Abs(cum[i]-want[i]) > 0.01 {
			t.Fatalf("cum[%d] = %.4f want ≈ %.2f", i, cum[i], want[i])
		}
		if i > 0 && cum[i] < cum[i-1] {
			t.Fatalf("cumulative decreased at %d: %v < %v", i, cum[i], cum[i-1])
		}
	}
	if cum[len(cum)-1] != 100 {
		t.Fatalf("last cumulative point = %v, want exactly 100", cum[len(cum)-1])
	}
}

func TestCumulativeNonDecreasingWithZeroBins(t *testing.T) {
	ds := Dataset{{0.1, 0}, {0.2, 3}, {0.3, 0}, {0.4, 0}, {0.5, 7}}
	cum, err := ds.Cumulative()
	if err != nil {
		t.Fatalf("cumulative: %v", err)
	}
	for i := 1; i < len(cum); i++ {
		if cum[i] < cum[i-1] {
			t.Fatalf("not monotone: %v", cum)
		}
	}
}

func TestValidateDegenerate(t *testing.T) {
	cases := []struct {
		name string
		ds   Dataset
		want []string
	}{
		{"empty", Dataset{}, []string{"no bins"}},
		{"nil", nil, []string{"no bins"}},
		{"all zero", Dataset{{0.1, 0}, {0.2, 0}}, []string{"all counts are zero"}},
		{"negative", Dataset{{0.1, -1}, {0.2, 4}}, []string{"negative count"}},
		{"not increasing", Dataset{{0.2, 1}, {0.2, 4}, {0.1, 1}}, []string{"bin 1", "bin 2"}},
		{"nan", Dataset{{math.NaN(), 1}}, []string{"not finite"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.ds.Validate()
			var de *DegenerateDatasetError
			if !errors.As(err, &de) {
				t.Fatalf("expected DegenerateDatasetError, got %v", err)
			}
			for _, w := range c.want {
				if !strings.Contains(err.Error(), w) {
					t.Fatalf("error %q missing %q", err, w)
				}
			}
			if _, err := c.ds.Cumulative(); !errors.As(err, &de) {
				t.Fatalf("Cumulative should refuse degenerate dataset, got %v", err)
			}
		})
	}
}

func TestNormalized(t *testing.T) {
	ds := DefaultDataset()
	if got := ds.Normalized(0.25); got != 0 {
		t.Fatalf("normalized(min) = %v", got)
	}
	if got := ds.Normalized(0.70); math.Abs(got-1) > 1e-12 {
		t.Fatalf("normalized(max) = %v", got)
	}
	single := Dataset{{0.3, 4}}
	if got := single.Normalized(0.3); got != 0 {
		t.Fatalf("single-bin normalized = %v", got)
	}
}

func TestSummarizeDefault(t *testing.T) {
	s, err := DefaultDataset().Summarize()
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"d10", s.D10, 0.2755},
		{"d50", s.D50, 0.3810},
		{"d90", s.D90, 0.5090},
		{"mean", s.Mean, 0.4139},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 0.001 {
			t.Fatalf("%s = %.4f, want ≈ %.4f", c.name, c.got, c.want)
		}
	}
	if !(s.D10 < s.D50 && s.D50 < s.D90) {
		t.Fatalf("percentiles out of order: %+v", s)
	}
	if s.Classification != "Medium Sand (0.25–0.5 mm)" {
		t.Fatalf("classification = %q", s.Classification)
	}
}

func TestPercentileBounds(t *testing.T) {
	ds := DefaultDataset()
	if d, _ := ds.Percentile(0); d != 0.25 {
		t.Fatalf("p0 = %v", d)
	}
	if d, _ := ds.Percentile(100); math.Abs(d-0.70) > 1e-9 {
		t.Fatalf("p100 = %v", d)
	}
	if _, err := ds.Percentile(101); err == nil {
		t.Fatalf("expected error for p>100")
	}
}

func TestClassify(t *testing.T) {
	cases := map[float64]string{
		0.03: "Silt (< 0.0625 mm)",
		0.1:  "Very Fine Sand (0.0625–0.125 mm)",
		0.2:  "Fine Sand (0.125–0.25 mm)",
		0.25: "Medium Sand (0.25–0.5 mm)",
		0.75: "Coarse Sand (0.5–1 mm)",
		1.5:  "Very Coarse Sand (1–2 mm)",
		3:    "Granule (> 2 mm)",
	}
	for d, want := range cases {
		if got := Classify(d); got != want {
			t.Fatalf("Classify(%v) = %q want %q", d, got, want)
		}
	}
}

func TestFixedProviderReturnsCopies(t *testing.T) {
	p := NewFixed(nil)
	a, err := p.Dataset(context.Background())
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	a[0].Count = 999
	b, _ := p.Dataset(context.Background())
	if b[0].Count != 5 {
		t.Fatalf("provider leaked mutable state: %d", b[0].Count)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Dataset(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bins.jsonl")
	content := "// sample from sieve run 3\n" +
		`{"diameter_mm":0.25,"count":4}` + "\n\n" +
		`{"diameter_mm":0.5,"count":6}` + "\n" +
		`{"diameter_mm":1.0,"count":2}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ds, err := (&FileProvider{Path: path}).Dataset(context.Background())
	if err != nil {
		t.Fatalf("file provider: %v", err)
	}
	if len(ds) != 3 || ds[2].DiameterMM != 1.0 || ds.Total() != 12 {
		t.Fatalf("unexpected dataset %+v", ds)
	}
}

func TestFileProviderErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := (&FileProvider{Path: filepath.Join(dir, "missing.jsonl")}).Dataset(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	bad := filepath.Join(dir, "bad.jsonl")
	os.WriteFile(bad, []byte("{\"diameter_mm\":0.2,\"count\":1}\nnot json\n"), 0o644)
	if _, err := (&FileProvider{Path: bad}).Dataset(context.Background()); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 parse error, got %v", err)
	}
	zero := filepath.Join(dir, "zero.jsonl")
	os.WriteFile(zero, []byte("{\"diameter_mm\":0.2,\"count\":0}\n"), 0o644)
	var de *DegenerateDatasetError
	if _, err := (&FileProvider{Path: zero}).Dataset(context.Background()); !errors.As(err, &de) {
		t.Fatalf("expected degenerate dataset error, got %v", err)
	}
}

func TestProviderFor(t *testing.T) {
	if _, ok := ProviderFor("").(*Fixed); !ok {
		t.Fatalf("empty path should give the fixed provider")
	}
	fp, ok := ProviderFor("bins.jsonl").(*FileProvider)
	if !ok || fp.Path != "bins.jsonl" {
		t.Fatalf("unexpected provider %#v", fp)
	}
}
