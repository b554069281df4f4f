package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"

	"github.com/iafilius/GrainEye/cmd/graineye/uihelpers"
	"github.com/iafilius/GrainEye/src/analysis"
	"github.com/iafilius/GrainEye/src/applog"
	"github.com/iafilius/GrainEye/src/chart"
	"github.com/iafilius/GrainEye/src/config"
	"github.com/iafilius/GrainEye/src/location"
)

const (
	msgStart    = "Upload an image to begin analysis..."
	msgLoaded   = "Image loaded successfully. Click 'Analyze' to process."
	msgAnalyze  = "Analyzing image..."
	msgLocReady = "Location data ready for tagging."
)

var imageExtensions = []string{".bmp", ".jpg", ".jpeg", ".png"}

type uiState struct {
	app    fyne.App
	window fyne.Window
	cfg    *config.Config

	analyzer analysis.Service
	locator  location.Service
	tagger   *location.Tagger
	alloc    chart.Allocator
	registry *uihelpers.Registry

	imagePath string
	result    *analysis.Result
	location  *location.Coordinates
	cancel    context.CancelFunc

	// widgets
	buttons       map[uihelpers.ControlID]*modernButton
	fileLabel     *widget.Label
	previewImage  *canvas.Image
	previewHint   *widget.Label
	resultLabel   *widget.Label
	locationLabel *widget.Label
	chartImage    *canvas.Image
	chartCard     fyne.CanvasObject
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return color.NRGBA{R: 32, G: 32, B: 32, A: 255}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var (
		configFlag      string
		fileFlag        string
		screenshotsFlag bool
		outFlag         string
	)
	flag.StringVar(&configFlag, "config", "", "Path to graineye.yaml (optional)")
	flag.StringVar(&fileFlag, "file", "", "Image to load on start")
	flag.BoolVar(&screenshotsFlag, "screenshots", false, "Render charts headlessly and exit")
	flag.StringVar(&outFlag, "out", "screenshots", "Output directory for -screenshots")
	flag.Parse()

	cfg, err := config.Load(configFlag)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	applog.SetLogLevel(cfg.Logging.Level)
	applog.SetLogFormat(cfg.Logging.Format)

	if screenshotsFlag {
		if err := RunScreenshotsMode(cfg, fileFlag, outFlag); err != nil {
			applog.Errorf("screenshots: %v", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.graineye.desktop")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("GrainEye - Sand Grain Analyzer")
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	locator := newLocationService(cfg)
	state := &uiState{
		app:      a,
		window:   w,
		cfg:      cfg,
		analyzer: newAnalyzer(cfg, locator),
		locator:  locator,
		tagger:   &location.Tagger{},
		alloc:    chart.Allocator{Background: chart.DefaultTheme().Background},
		registry: uihelpers.NewRegistry(),
		buttons:  map[uihelpers.ControlID]*modernButton{},
	}
	w.SetContent(buildContent(state))
	buildMenus(state)
	w.SetOnClosed(func() {
		if state.cancel != nil {
			state.cancel()
		}
	})

	if fileFlag == "" {
		fileFlag = a.Preferences().StringWithFallback("lastImage", "")
		if _, err := os.Stat(fileFlag); err != nil {
			fileFlag = ""
		}
	}
	if fileFlag != "" {
		loadImage(state, fileFlag)
	}
	applog.Infof("graineye started (location=%s, dataset=%q)", cfg.Location.Provider, cfg.Analysis.DatasetFile)
	w.ShowAndRun()
}

func card(title string, content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(color.NRGBA{R: 43, G: 43, B: 43, A: 255})
	bg.CornerRadius = 12
	bg.StrokeColor = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	bg.StrokeWidth = 1
	var body fyne.CanvasObject = content
	if title != "" {
		head := canvas.NewText(title, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		head.TextSize = 15
		body = container.NewBorder(head, nil, nil, nil, content)
	}
	return container.NewStack(bg, container.NewPadded(body))
}

func buildContent(state *uiState) fyne.CanvasObject {
	for _, id := range uihelpers.Controls {
		id := id
		state.buttons[id] = newModernButton(state.registry, id, func() { onControl(state, id) })
	}
	title := canvas.NewText("Sand Grain Analyzer", color.NRGBA{R: 240, G: 240, B: 240, A: 255})
	title.TextSize = 36
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter
	subtitle := canvas.NewText("Version 1.03 - For Testing Purposes Only", color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	subtitle.Alignment = fyne.TextAlignCenter

	state.fileLabel = widget.NewLabel("")
	state.previewImage = canvas.NewImageFromImage(nil)
	state.previewImage.FillMode = canvas.ImageFillContain
	state.previewImage.SetMinSize(fyne.NewSize(420, 280))
	state.previewHint = widget.NewLabel("No image loaded")
	state.previewHint.Alignment = fyne.TextAlignCenter

	state.locationLabel = widget.NewLabel("Use 'Fetch Location' to get coordinates. Press 'Tag' to tag the location.")
	state.locationLabel.Wrapping = fyne.TextWrapWord

	state.resultLabel = widget.NewLabel(msgStart)
	state.resultLabel.Wrapping = fyne.TextWrapWord

	cw, ch := chartSize(state.cfg)
	state.chartImage = canvas.NewImageFromImage(nil)
	state.chartImage.FillMode = canvas.ImageFillContain
	state.chartImage.SetMinSize(fyne.NewSize(float32(2*cw+chart.PairGap), float32(ch)))
	state.chartCard = card("", state.chartImage)
	state.chartCard.Hide()

	b := state.buttons
	left := container.NewVBox(
		card("", container.NewGridWithColumns(2, b[uihelpers.Upload], b[uihelpers.Analyze])),
		card("Image Preview", container.NewStack(state.previewHint, state.previewImage)),
		state.fileLabel,
		card("Location Tagging", container.NewBorder(nil, nil,
			container.NewVBox(b[uihelpers.FetchLocation], b[uihelpers.Tag]), nil,
			state.locationLabel)),
		card("", container.NewGridWithColumns(2, b[uihelpers.Save], b[uihelpers.Restart])),
	)
	right := container.NewBorder(state.chartCard, nil, nil, nil,
		card("Analysis Results", container.NewVScroll(state.resultLabel)))
	header := container.NewVBox(title, subtitle)
	return container.NewBorder(header, nil, left, nil, right)
}

func buildMenus(state *uiState) {
	var items []*fyne.MenuItem
	for _, f := range recentImages(state) {
		f := f
		items = append(items, fyne.NewMenuItem(uihelpers.TruncatePath(f, 60), func() { loadImage(state, f) }))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentImages(state); buildMenus(state) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Upload Image…", func() { onControl(state, uihelpers.Upload) }),
		fyne.NewMenuItem("Save Results", func() { onControl(state, uihelpers.Save) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	canv := state.window.Canvas()
	if canv != nil {
		open := func(fyne.Shortcut) { onControl(state, uihelpers.Upload) }
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, open)
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, open)
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// onControl dispatches a button press. Disabled controls are ignored so menu
// items and shortcuts follow the same flow as the buttons.
func onControl(state *uiState, id uihelpers.ControlID) {
	if !state.registry.Enabled(id) {
		return
	}
	switch id {
	case uihelpers.Upload:
		openImageDialog(state)
	case uihelpers.Analyze:
		startAnalysis(state)
	case uihelpers.Save:
		saveResults(state)
	case uihelpers.Restart:
		restart(state)
	case uihelpers.FetchLocation:
		fetchLocation(state)
	case uihelpers.Tag:
		tagLocation(state)
	}
}

func refreshButtons(state *uiState) {
	for _, b := range state.buttons {
		b.Refresh()
	}
}

func openImageDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		_ = rc.Close()
		loadImage(state, path)
	}, state.window)
	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	d.Show()
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func loadImage(state *uiState, path string) {
	img, err := decodeImage(path)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.imagePath = path
	state.previewImage.Image = img
	state.previewImage.Refresh()
	state.previewHint.Hide()
	state.fileLabel.SetText(uihelpers.TruncatePath(path, 60))
	state.resultLabel.SetText(msgLoaded)
	state.registry.ImageLoaded()
	refreshButtons(state)
	addRecentImage(state, path)
	buildMenus(state)
	applog.Debugf("loaded image %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
}

func startAnalysis(state *uiState) {
	if state.imagePath == "" {
		return
	}
	state.resultLabel.SetText(msgAnalyze)
	state.registry.AnalysisStarted()
	refreshButtons(state)

	ctx, cancel := context.WithCancel(context.Background())
	state.cancel = cancel
	path := state.imagePath
	go func() {
		defer cancel()
		res, err := state.analyzer.Analyze(ctx, path)
		var pair image.Image
		if err == nil {
			pair, err = renderCharts(state, res)
		}
		fyne.Do(func() {
			if errors.Is(err, context.Canceled) || state.imagePath != path {
				return
			}
			if err != nil {
				state.registry.AnalysisFailed()
				refreshButtons(state)
				state.resultLabel.SetText(msgLoaded)
				dialog.ShowError(err, state.window)
				return
			}
			applyResult(state, res, pair)
		})
	}()
}

// renderCharts draws both charts off-screen; only the finished image is
// handed to the UI goroutine.
func renderCharts(state *uiState, res *analysis.Result) (image.Image, error) {
	defer applog.TimeTrack(time.Now(), "render charts")
	cw, ch := chartSize(state.cfg)
	cv, err := chart.RenderPair(state.alloc, cw, ch, res.Dataset, chartOptions(state.cfg)...)
	if err != nil {
		return nil, err
	}
	defer cv.Close()
	return cv.Image(), nil
}

func applyResult(state *uiState, res *analysis.Result, pair image.Image) {
	if res.Location == nil && state.location != nil {
		c := *state.location
		res.Location = &c
	}
	state.result = res
	state.resultLabel.SetText(analysis.Report(res))
	state.chartImage.Image = pair
	state.chartImage.Refresh()
	state.chartCard.Show()
	state.registry.AnalysisDone()
	refreshButtons(state)
}

func saveResults(state *uiState) {
	if state.result == nil {
		dialog.ShowInformation("Save", "Nothing to save yet.", state.window)
		return
	}
	dir := exportDir(state.cfg)
	paths, err := chart.ExportAll(dir, state.result.Dataset, state.cfg.Charts.Width, state.cfg.Charts.Height, chart.Both, chartOptions(state.cfg)...)
	if err == nil {
		report := filepath.Join(dir, "analysis_"+state.result.ID.String()[:8]+".txt")
		err = os.WriteFile(report, []byte(analysis.Report(state.result)+"\n"), 0o644)
		paths = append(paths, report)
	}
	if err != nil {
		dialog.ShowError(fmt.Errorf("save results: %w", err), state.window)
		return
	}
	applog.Infof("saved %d files to %s", len(paths), dir)
	dialog.ShowInformation("Save Complete", "Results and graphs saved to "+dir+".", state.window)
}

func restart(state *uiState) {
	if state.cancel != nil {
		state.cancel()
		state.cancel = nil
	}
	state.imagePath = ""
	state.result = nil
	state.location = nil
	state.previewImage.Image = nil
	state.previewImage.Refresh()
	state.previewHint.Show()
	state.fileLabel.SetText("")
	state.resultLabel.SetText(msgStart)
	state.locationLabel.SetText("")
	state.chartImage.Image = nil
	state.chartCard.Hide()
	state.tagger.Reset()
	state.registry.Reset()
	refreshButtons(state)
}

func fetchLocation(state *uiState) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		c, err := state.locator.Fetch(ctx)
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(fmt.Errorf("fetch location: %w", err), state.window)
				return
			}
			state.location = &c
			state.locationLabel.SetText(c.FormatDMS() + "\n" + msgLocReady)
			state.registry.LocationFetched()
			refreshButtons(state)
		})
	}()
}

// tagLocation prefers a freshly fetched location and falls back to the GPS
// recorded with the analysis result.
func tagLocation(state *uiState) {
	resultID := uuid.Nil
	coords := state.location
	if state.result != nil {
		resultID = state.result.ID
		if coords == nil {
			coords = state.result.Location
		}
	}
	tag, err := state.tagger.Tag(resultID, coords)
	if err != nil {
		dialog.ShowError(fmt.Errorf("tag location: %w", err), state.window)
		return
	}
	applog.Infof("tagged %s at %s", tag.ID, tag.Coordinates.Decimal())
	dialog.ShowInformation("Tagged", "Location has been tagged.", state.window)
}
