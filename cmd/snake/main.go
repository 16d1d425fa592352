package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/snake/debugui"
	debugui_ebiten "github.com/plus3/snake/debugui/ebiten"
	"github.com/plus3/snake/game"
	"github.com/plus3/snake/render"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	Title        = "Snake"
)

// keyboard reads the arrow keys, unless the debug overlay has focus.
type keyboard struct {
	capture *debugui.ImguiInputState
}

var arrowKeys = map[game.Key]ebiten.Key{
	game.KeyLeft:  ebiten.KeyArrowLeft,
	game.KeyDown:  ebiten.KeyArrowDown,
	game.KeyUp:    ebiten.KeyArrowUp,
	game.KeyRight: ebiten.KeyArrowRight,
}

func (k *keyboard) Pressed(key game.Key) bool {
	if k.capture != nil && k.capture.WantCaptureKeyboard {
		return false
	}
	return ebiten.IsKeyPressed(arrowKeys[key])
}

type Game struct {
	game    *game.Game
	layout  render.Layout
	backend *debugui_ebiten.ImguiBackend
}

func main() {
	cfg := game.DefaultConfig()
	game.BindFlags(flag.CommandLine, &cfg)
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	flag.Parse()

	input := &keyboard{}
	g, err := game.New(cfg, input)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	log.Printf("Session %s on a %dx%d arena", g.ID(), cfg.Sim.Arena.Width, cfg.Sim.Arena.Height)

	app := &Game{
		game:   g,
		layout: render.Layout{Width: ScreenWidth, Height: ScreenHeight, Arena: cfg.Sim.Arena},
	}

	if *debug {
		app.backend = debugui_ebiten.NewImguiBackend(Title, ScreenWidth, ScreenHeight)
		input.capture = debugui.Install(g)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle(Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}

func (a *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if a.backend != nil {
		a.backend.BeginFrame()
	}
	a.game.Update(1.0 / float64(ebiten.TPS()))
	if a.backend != nil {
		a.backend.EndFrame()
	}
	return nil
}

func (a *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.BackgroundColor)

	if a.layout.Arena.Border > 0 {
		b := a.layout.Bounds()
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, render.TextColor, false)
	}

	snap := a.game.Snapshot()
	for _, s := range a.layout.Sprites(snap) {
		r := s.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), s.Color, false)
	}

	ebitenutil.DebugPrintAt(screen, render.ScoreText(snap), 10, 10)

	if a.backend != nil {
		a.backend.Draw(screen)
	}
}

func (a *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.layout.Width = float64(outsideWidth)
	a.layout.Height = float64(outsideHeight)
	if a.backend != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
