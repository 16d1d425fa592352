package main

import (
	"flag"
	"image/color"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/snake/game"
	"github.com/plus3/snake/render"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	FontSize     = 40
)

var arrowKeys = map[game.Key]int32{
	game.KeyLeft:  rl.KeyLeft,
	game.KeyDown:  rl.KeyDown,
	game.KeyUp:    rl.KeyUp,
	game.KeyRight: rl.KeyRight,
}

func keyboard(key game.Key) bool {
	return rl.IsKeyDown(arrowKeys[key])
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func main() {
	cfg := game.DefaultConfig()
	game.BindFlags(flag.CommandLine, &cfg)
	fps := flag.Int("fps", 60, "Target frames per second.")
	flag.Parse()

	g, err := game.New(cfg, game.InputFunc(keyboard))
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	log.Printf("Session %s on a %dx%d arena", g.ID(), cfg.Sim.Arena.Width, cfg.Sim.Arena.Height)

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(ScreenWidth, ScreenHeight, "Snake")
	rl.SetTargetFPS(int32(*fps))
	defer rl.CloseWindow()

	layout := render.Layout{Arena: cfg.Sim.Arena}
	lastTime := rl.GetTime()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		currentTime := rl.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		g.Update(deltaTime)

		layout.Width = float64(rl.GetScreenWidth())
		layout.Height = float64(rl.GetScreenHeight())
		draw(layout, g)
	}
}

func draw(layout render.Layout, g *game.Game) {
	snap := g.Snapshot()

	rl.BeginDrawing()
	rl.ClearBackground(toColor(render.BackgroundColor))

	if layout.Arena.Border > 0 {
		b := layout.Bounds()
		rl.DrawRectangleLines(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), toColor(render.TextColor))
	}

	for _, s := range layout.Sprites(snap) {
		r := s.Rect
		rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), toColor(s.Color))
	}

	rl.DrawText(render.ScoreText(snap), 10, 10, FontSize, toColor(render.TextColor))
	rl.EndDrawing()
}
