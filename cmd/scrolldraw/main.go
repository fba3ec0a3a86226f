package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"boxshooter/game"
	"boxshooter/scroll"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

const (
	wheelStep = 40.0
	keyStep   = 20.0
)

// scrollGame scrolls a virtual document and draws the path as it goes
type scrollGame struct {
	path    *scroll.Path
	tracker *scroll.Tracker
	style   scroll.Style
	log     zerolog.Logger

	pages  float64
	pos    float64
	width  int
	height int

	image    *ebiten.Image
	rendered float64
}

func (g *scrollGame) docHeight() float64 {
	return float64(g.height) * g.pages
}

func (g *scrollGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	_, dy := ebiten.Wheel()
	g.pos -= dy * wheelStep
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.pos += keyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.pos -= keyStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.pos += float64(g.height)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.pos -= float64(g.height)
	}
	g.pos = math.Max(0, math.Min(g.pos, g.docHeight()-float64(g.height)))

	offset := g.tracker.Scroll(g.pos, g.docHeight(), float64(g.height))
	if offset != g.rendered || g.image == nil {
		g.render()
	}
	return nil
}

func (g *scrollGame) render() {
	if g.width <= 0 || g.height <= 0 {
		return
	}
	img := scroll.Render(g.path, g.tracker.Visible(), g.width, g.height, g.style)
	if g.image != nil {
		g.image.Deallocate()
	}
	g.image = ebiten.NewImageFromImage(img)
	g.rendered = g.tracker.Offset()

	g.log.Trace().
		Float64("pos", g.pos).
		Float64("offset", g.rendered).
		Str("direction", g.tracker.Direction().String()).
		Msg("path redrawn")
}

func (g *scrollGame) Draw(screen *ebiten.Image) {
	if g.image != nil {
		screen.DrawImage(g.image, nil)
	}
	progress := scroll.Progress(g.pos, g.docHeight(), float64(g.height))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("scroll %3.0f%%  drawn %.0f / %.0f  (wheel, arrows, page up/down)",
		progress*100, g.tracker.Visible(), g.tracker.Length))
}

func (g *scrollGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.image = nil
	}
	return outsideWidth, outsideHeight
}

func loadPath(file string) (*scroll.Path, error) {
	if file == "" {
		return scroll.DefaultPath()
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scroll.LoadPath(f)
}

func main() {
	svgFile := flag.String("svg", "", "SVG file whose first path is drawn (default: built-in wave)")
	pages := flag.Float64("pages", 4, "virtual document height in viewport heights")
	stroke := flag.Float64("stroke", scroll.DefaultStyle.Width, "stroke width in SVG units")
	logLevel := flag.String("log-level", "info", "log level")
	export := flag.String("export", "", "write one frame to this PNG file and exit")
	at := flag.Float64("at", 0.25, "scroll progress of the exported frame, 0 to 1")
	flag.Parse()

	log, err := game.NewLogger(game.LogConfig{Level: *logLevel}, os.Stderr)
	if err != nil {
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		fallback.Fatal().Err(err).Msg("failed to create logger")
	}

	path, err := loadPath(*svgFile)
	if err != nil {
		log.Fatal().Err(err).Str("svg", *svgFile).Msg("failed to load path")
	}
	log.Info().Float64("length", path.Length()).Int("subpaths", len(path.Subpaths)).Msg("path loaded")

	style := scroll.DefaultStyle
	style.Width = *stroke

	if *export != "" {
		const width, height = 480, 720
		tracker := scroll.NewTracker(path.Length())
		doc := height * math.Max(*pages, 1)
		tracker.Scroll(*at*(doc-height), doc, height)
		img := scroll.Render(path, tracker.Visible(), width, height, style)
		if err := scroll.SavePNG(img, *export); err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
		log.Info().Str("file", *export).Float64("visible", tracker.Visible()).Msg("frame exported")
		return
	}

	g := &scrollGame{
		path:     path,
		tracker:  scroll.NewTracker(path.Length()),
		style:    style,
		log:      log,
		pages:    math.Max(*pages, 1),
		rendered: math.NaN(),
	}

	ebiten.SetWindowSize(480, 720)
	ebiten.SetWindowTitle("Scroll Draw")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Error().Err(err).Msg("scrolldraw exited with error")
	}
}
