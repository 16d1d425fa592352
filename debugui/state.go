package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/snake/game"
	"github.com/plus3/snake/snake"
)

// StateWindow shows the board: score, heading, food and every segment.
type StateWindow struct {
	lastEvent string
}

func NewStateWindow() *StateWindow {
	return &StateWindow{}
}

func (sw *StateWindow) Render(snap snake.Snapshot, events game.Events) {
	if !imgui.BeginV("Snake State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if ev := DescribeEvents(events); ev != "" {
		sw.lastEvent = ev
	}

	imgui.Text(fmt.Sprintf("Score: %d  Best: %d  Games: %d", snap.Score, snap.Best, snap.Games))
	imgui.Text(fmt.Sprintf("Heading: %s", snap.Direction))
	imgui.Text(fmt.Sprintf("Arena: %dx%d border %d", snap.Arena.Width, snap.Arena.Height, snap.Arena.Border))
	if sw.lastEvent != "" {
		imgui.Text(fmt.Sprintf("Last event: %s", sw.lastEvent))
	}

	imgui.Separator()
	if imgui.TreeNodeStr(fmt.Sprintf("Food (%d)", len(snap.Food))) {
		for _, f := range snap.Food {
			imgui.BulletText(f.String())
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Segments (%d)", len(snap.Segments))) {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SegmentsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("#")
			imgui.TableSetupColumn("Cell")
			imgui.TableHeadersRow()

			for i, c := range snap.Segments {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", i))
				imgui.TableNextColumn()
				imgui.Text(c.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// DescribeEvents summarises one frame's events, or returns "" when nothing
// happened.
func DescribeEvents(ev game.Events) string {
	switch {
	case len(ev.Collisions) > 1:
		return fmt.Sprintf("%d game overs, last (%s)", len(ev.Collisions), ev.Collision)
	case ev.GameOver:
		return fmt.Sprintf("game over (%s)", ev.Collision)
	case ev.Growths > 0:
		return fmt.Sprintf("ate %d", ev.Growths)
	case ev.FoodSpawned:
		return fmt.Sprintf("food at %s", ev.Food)
	}
	return ""
}
