package main

import (
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iafilius/GrainEye/src/config"
)

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}

func TestRunScreenshotsMode(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.Delay = 0
	out := t.TempDir()

	img := filepath.Join(t.TempDir(), "sample.png")
	if err := os.WriteFile(img, []byte("stub"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	start := time.Now()
	if err := RunScreenshotsMode(cfg, img, out); err != nil {
		t.Fatalf("screenshots: %v", err)
	}
	if time.Since(start) > 30*time.Second {
		t.Fatalf("screenshots mode too slow")
	}

	for _, name := range []string{"grain_size_distribution.png", "cumulative_curve.png"} {
		w, h := decodeSize(t, filepath.Join(out, name))
		if w != cfg.Charts.Width || h != cfg.Charts.Height {
			t.Fatalf("%s is %dx%d", name, w, h)
		}
	}
	w, h := decodeSize(t, filepath.Join(out, "chart_pair.png"))
	if w != 2*cfg.Charts.Width+20 || h != cfg.Charts.Height {
		t.Fatalf("chart_pair.png is %dx%d", w, h)
	}
	rep, err := os.ReadFile(filepath.Join(out, "analysis_report.txt"))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.HasPrefix(string(rep), "SAND TYPE ANALYSIS COMPLETE:") {
		t.Fatalf("unexpected report:\n%s", rep)
	}
	if _, err := os.Stat(filepath.Join(out, "grain_size_distribution.svg")); !os.IsNotExist(err) {
		t.Fatalf("svg should not be written in screenshots mode")
	}
}

func TestRunScreenshotsModeWithoutImage(t *testing.T) {
	out := t.TempDir()
	if err := RunScreenshotsMode(config.Default(), "", out); err != nil {
		t.Fatalf("screenshots: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "analysis_report.txt")); !os.IsNotExist(err) {
		t.Fatalf("report written without an image")
	}
}

func TestRunScreenshotsModeBadDataset(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.DatasetFile = filepath.Join(t.TempDir(), "missing.jsonl")
	if err := RunScreenshotsMode(cfg, "", t.TempDir()); err == nil {
		t.Fatalf("expected error for missing dataset file")
	}
}
