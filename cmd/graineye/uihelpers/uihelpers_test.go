package uihelpers

import (
	"testing"
)

func TestInitialEnablement(t *testing.T) {
	r := NewRegistry()
	want := map[ControlID]bool{
		Upload: true, FetchLocation: true,
		Analyze: false, Save: false, Restart: false, Tag: false,
	}
	for id, on := range want {
		if r.Enabled(id) != on {
			t.Fatalf("%v enabled = %v, want %v", id, r.Enabled(id), on)
		}
		wantState := StateNormal
		if !on {
			wantState = StateDisabled
		}
		if r.Get(id).State != wantState {
			t.Fatalf("%v state = %v, want %v", id, r.Get(id).State, wantState)
		}
	}
}

func TestEnablementFlow(t *testing.T) {
	r := NewRegistry()
	r.ImageLoaded()
	if !r.Enabled(Analyze) {
		t.Fatalf("analyze should be enabled after upload")
	}
	r.AnalysisStarted()
	if r.Enabled(Analyze) {
		t.Fatalf("analyze should be blocked while running")
	}
	r.AnalysisDone()
	for _, id := range []ControlID{Analyze, Save, Restart, Tag} {
		if !r.Enabled(id) {
			t.Fatalf("%v should be enabled after analysis", id)
		}
	}
	r.Reset()
	for _, id := range []ControlID{Analyze, Save, Restart, Tag} {
		if r.Enabled(id) {
			t.Fatalf("%v should be disabled after restart", id)
		}
	}
	if !r.Enabled(Upload) || !r.Enabled(FetchLocation) {
		t.Fatalf("upload and fetch location must stay enabled")
	}

	r.LocationFetched()
	if !r.Enabled(Tag) || r.Enabled(Save) {
		t.Fatalf("fetch location should enable only tag")
	}
}

func TestButtonStates(t *testing.T) {
	r := NewRegistry()
	r.SetHovered(Upload, true)
	if r.Get(Upload).State != StateHover {
		t.Fatalf("expected hover state")
	}
	r.SetPressed(Upload, true)
	if got := r.Colors(Upload).Fill; got != greenActive {
		t.Fatalf("pressed fill = %v", got)
	}
	r.SetHovered(Upload, false)
	if r.Get(Upload).State != StateNormal {
		t.Fatalf("leaving the button must clear hover and press, got %v", r.Get(Upload).State)
	}

	// Disabled buttons ignore presses and keep the disabled palette.
	r.SetHovered(Save, true)
	r.SetPressed(Save, true)
	if r.Get(Save).State != StateDisabled || r.Colors(Save).Fill != disabledFill {
		t.Fatalf("disabled button reacted: %+v", r.Get(Save))
	}
	if r.Colors(ControlID(42)) != (Palette{}) {
		t.Fatalf("unknown control should have an empty palette")
	}
}

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		avail, wantW, wantH int
	}{
		{680, 330, 260},
		{100, 200, 157},
		{2000, 660, 520},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.avail, 20)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("avail %d => %dx%d, want %dx%d", c.avail, w, h, c.wantW, c.wantH)
		}
	}
}

func TestTruncatePath(t *testing.T) {
	if got := TruncatePath("/a/b.jpg", 60); got != "/a/b.jpg" {
		t.Fatalf("short path changed: %q", got)
	}
	got := TruncatePath("/home/user/pictures/beach/samples/2025/digha/IMG_0001.jpg", 30)
	if len(got) > 30 || got[len(got)-12:] != "IMG_0001.jpg" {
		t.Fatalf("truncated = %q", got)
	}
	if got := TruncatePath("/x/averyveryverylongfilename.jpeg", 20); got != "...averyveryverylongfilename.jpeg" {
		t.Fatalf("long base = %q", got)
	}
}
