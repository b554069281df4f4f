package main

import (
	"os"
	"path/filepath"

	"github.com/iafilius/GrainEye/cmd/graineye/uihelpers"
	"github.com/iafilius/GrainEye/src/analysis"
	"github.com/iafilius/GrainEye/src/chart"
	"github.com/iafilius/GrainEye/src/config"
	"github.com/iafilius/GrainEye/src/grain"
	"github.com/iafilius/GrainEye/src/location"
)

func newLocationService(cfg *config.Config) location.Service {
	if cfg.Location.Provider == config.ProviderGeoIP {
		return &location.GeoIP{DBPath: cfg.Location.GeoIPDB, IP: cfg.Location.PublicIP}
	}
	return location.NewFixed()
}

func newAnalyzer(cfg *config.Config, loc location.Service) analysis.Service {
	return &analysis.Simulated{
		Delay:    cfg.Analysis.Delay,
		Provider: grain.ProviderFor(cfg.Analysis.DatasetFile),
		Location: loc,
	}
}

func chartOptions(cfg *config.Config) []chart.Option {
	return []chart.Option{chart.WithTicks(cfg.Charts.Ticks)}
}

// leftColumnWidth is the space taken by the upload, preview and location cards.
const leftColumnWidth = 520

// chartSize returns the configured chart size, shrunk so both charts fit next
// to the left column of a window of the configured width.
func chartSize(cfg *config.Config) (int, int) {
	w, h := cfg.Charts.Width, cfg.Charts.Height
	avail := cfg.Window.Width - leftColumnWidth
	if 2*w+chart.PairGap <= avail {
		return w, h
	}
	return uihelpers.ComputeChartDimensions(avail, chart.PairGap)
}

// exportDir is where Save writes results; defaults to ~/Documents/GrainEye.
func exportDir(cfg *config.Config) string {
	if cfg.Export.Dir != "" {
		return cfg.Export.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "GrainEye"
	}
	return filepath.Join(home, "Documents", "GrainEye")
}
