package uihelpers

// Control is the registry entry for one button.
type Control struct {
	State   ButtonState
	Enabled bool
	Hovered bool
	Pressed bool
	Style   Style
}

func (c *Control) resolve() {
	switch {
	case !c.Enabled:
		c.State = StateDisabled
	case c.Pressed:
		c.State = StatePressed
	case c.Hovered:
		c.State = StateHover
	default:
		c.State = StateNormal
	}
}

// Registry maps each button to its state and style. It is owned by the UI
// goroutine and not safe for concurrent use.
type Registry struct {
	controls map[ControlID]*Control
}

// NewRegistry registers every button with its initial enablement: only
// Upload and Fetch Location start enabled.
func NewRegistry() *Registry {
	labels := map[ControlID]string{
		Upload:        "📁 Upload Image",
		Analyze:       "🔍 Analyze",
		Save:          "💾 Save Results",
		Restart:       "🔄 Restart",
		FetchLocation: "📍 Fetch Location",
		Tag:           "🏷️ Tag",
	}
	r := &Registry{controls: make(map[ControlID]*Control, len(labels))}
	for _, id := range Controls {
		r.controls[id] = &Control{State: StateDisabled, Style: GreenStyle(labels[id])}
	}
	r.setEnabled(Upload, true)
	r.setEnabled(FetchLocation, true)
	return r
}

// Get returns the entry for id, or nil for an unknown control.
func (r *Registry) Get(id ControlID) *Control { return r.controls[id] }

// Enabled reports whether id accepts input.
func (r *Registry) Enabled(id ControlID) bool {
	c := r.controls[id]
	return c != nil && c.Enabled
}

// Colors returns the palette for id in its current state.
func (r *Registry) Colors(id ControlID) Palette {
	c := r.controls[id]
	if c == nil {
		return Palette{}
	}
	return c.Style.Colors(c.State)
}

func (r *Registry) setEnabled(id ControlID, on bool) {
	if c := r.controls[id]; c != nil {
		c.Enabled = on
		if !on {
			c.Pressed = false
		}
		c.resolve()
	}
}

// SetHovered and SetPressed track pointer interaction.
func (r *Registry) SetHovered(id ControlID, on bool) {
	if c := r.controls[id]; c != nil {
		c.Hovered = on
		if !on {
			c.Pressed = false
		}
		c.resolve()
	}
}

func (r *Registry) SetPressed(id ControlID, on bool) {
	if c := r.controls[id]; c != nil {
		c.Pressed = on && c.Enabled
		c.resolve()
	}
}

// ImageLoaded enables Analyze.
func (r *Registry) ImageLoaded() { r.setEnabled(Analyze, true) }

// AnalysisStarted blocks a second analysis while one is running.
func (r *Registry) AnalysisStarted() { r.setEnabled(Analyze, false) }

// AnalysisDone enables Save, Restart and Tag; Analyze becomes available again.
func (r *Registry) AnalysisDone() {
	for _, id := range []ControlID{Analyze, Save, Restart, Tag} {
		r.setEnabled(id, true)
	}
}

// AnalysisFailed re-enables Analyze so the user can retry.
func (r *Registry) AnalysisFailed() { r.setEnabled(Analyze, true) }

// LocationFetched enables Tag.
func (r *Registry) LocationFetched() { r.setEnabled(Tag, true) }

// Reset returns to the start-up state.
func (r *Registry) Reset() {
	for _, id := range []ControlID{Analyze, Save, Restart, Tag} {
		r.setEnabled(id, false)
	}
}
