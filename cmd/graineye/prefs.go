package main

import (
	"os"
	"strings"
)

const maxRecentImages = 10

// recent images helpers
func recentImages(state *uiState) []string {
	raw := state.app.Preferences().StringWithFallback("recentImages", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentImage(state *uiState, path string) {
	prefs := state.app.Preferences()
	filtered := []string{path}
	for _, f := range recentImages(state) {
		if f != path && len(filtered) < maxRecentImages {
			filtered = append(filtered, f)
		}
	}
	prefs.SetString("recentImages", strings.Join(filtered, "\n"))
	prefs.SetString("lastImage", path)
}

func clearRecentImages(state *uiState) {
	state.app.Preferences().SetString("recentImages", "")
}
