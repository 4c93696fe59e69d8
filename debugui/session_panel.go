package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/puckstick/hockey"
)

// SessionPanel shows the live paddle, puck and session state and offers a
// reset button.
type SessionPanel struct {
	World *hockey.World
}

func (p *SessionPanel) Render() {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.End()
		return
	}

	snap := p.World.Snapshot()
	for _, line := range SessionLines(snap, p.World.Config().Collision) {
		imgui.Text(line)
	}

	imgui.Separator()
	if imgui.Button("Reset") {
		p.World.Reset()
	}

	imgui.End()
}

// SessionLines formats a snapshot for the session window.
func SessionLines(snap hockey.Snapshot, mode hockey.CollisionMode) []string {
	return []string{
		fmt.Sprintf("State: %s", snap.Session.State),
		fmt.Sprintf("Ticks: %d", snap.Session.Ticks),
		fmt.Sprintf("Bounces: %d wall, %d paddle", snap.Session.WallBounces, snap.Session.PaddleBounces),
		fmt.Sprintf("Paddle: x=%.1f dx=%+.1f", snap.Paddle.X, snap.Paddle.DX),
		fmt.Sprintf("Puck: (%.1f, %.1f) v=(%+.1f, %+.1f)", snap.Puck.X, snap.Puck.Y, snap.Puck.DX, snap.Puck.DY),
		fmt.Sprintf("Collision: %s", mode),
	}
}
