package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/iafilius/GrainEye/src/analysis"
	"github.com/iafilius/GrainEye/src/chart"
	"github.com/iafilius/GrainEye/src/config"
	"github.com/iafilius/GrainEye/src/grain"
)

// RunScreenshotsMode renders the result charts and writes them as PNGs under outDir.
// When imagePath is set the analysis report for it is written as well.
// It runs headlessly without creating a UI window.
func RunScreenshotsMode(cfg *config.Config, imagePath, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	ctx := context.Background()
	ds, err := grain.ProviderFor(cfg.Analysis.DatasetFile).Dataset(ctx)
	if err != nil {
		return err
	}
	opts := chartOptions(cfg)
	if _, err := chart.ExportAll(outDir, ds, cfg.Charts.Width, cfg.Charts.Height, chart.PNG, opts...); err != nil {
		return err
	}

	cv, err := chart.RenderPair(chart.Allocator{Background: chart.DefaultTheme().Background}, cfg.Charts.Width, cfg.Charts.Height, ds, opts...)
	if err != nil {
		return err
	}
	defer cv.Close()
	var buf bytes.Buffer
	if err := png.Encode(&buf, cv.Image()); err != nil {
		return fmt.Errorf("png encode chart_pair.png: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "chart_pair.png"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write chart_pair.png: %w", err)
	}

	if imagePath == "" {
		return nil
	}
	svc := &analysis.Simulated{Provider: grain.NewFixed(ds), Location: newLocationService(cfg)}
	res, err := svc.Analyze(ctx, imagePath)
	if err != nil {
		return err
	}
	out := filepath.Join(outDir, "analysis_report.txt")
	if err := os.WriteFile(out, []byte(analysis.Report(res)+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
