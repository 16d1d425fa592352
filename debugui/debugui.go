// Package debugui draws a Dear ImGui developer overlay on top of a running
// snake game: the board state, per-phase timings and live tuning.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/snake/engine"
	"github.com/plus3/snake/game"
)

// ImguiItem holds a Dear ImGui render function drawn once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether ImGui is consuming mouse or keyboard input.
// Frontends check it before forwarding keys to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the input capture state and defers every item's render
// function to the end of the frame, after the snake phases have run.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState *ImguiInputState
}

func (i *ImguiSystem) Execute(frame *engine.Frame) {
	if i.InputState != nil {
		i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Install registers the state, performance and tuning windows for g and
// returns the input capture state they keep current.
func Install(g *game.Game) *ImguiInputState {
	state := &ImguiInputState{}
	stateWindow := NewStateWindow()
	perfWindow := NewPerformanceWindow(120)
	tuningWindow := NewTuningWindow()
	timer := NewFrameTimer()

	g.Register(&ImguiSystem{
		InputState: state,
		Items: []ImguiItem{
			{Render: func() { stateWindow.Render(g.Snapshot(), g.Events()) }},
			{Render: func() { perfWindow.Render(g.Stats(), timer.GetDeltaTime()) }},
			{Render: func() { tuningWindow.Render("Tuning", g.Tuning()) }},
		},
	})
	return state
}
