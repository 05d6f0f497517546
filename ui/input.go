package ui

import (
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type keyBinding struct {
	key int32
	dir types.Direction
}

// Checked in order; only the first accepted turn of a frame counts
var directionKeys = []keyBinding{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyW, types.Up},
	{rl.KeyS, types.Down},
	{rl.KeyA, types.Left},
	{rl.KeyD, types.Right},
}

var buttonDirections = map[layout.Button]types.Direction{
	layout.ButtonUp:    types.Up,
	layout.ButtonDown:  types.Down,
	layout.ButtonLeft:  types.Left,
	layout.ButtonRight: types.Right,
}

// Input turns keyboard, mouse and touch events into game commands
type Input struct {
	loop     *game.Loop
	ShowHelp bool
	touches  layout.TouchTracker
}

func NewInput(loop *game.Loop) *Input {
	return &Input{loop: loop}
}

// Poll reads this frame's events. The layout is needed to hit-test the
// on-screen buttons.
func (in *Input) Poll(l layout.Layout) {
	for _, kb := range directionKeys {
		if rl.IsKeyPressed(kb.key) {
			in.loop.Game.ChangeDirection(kb.dir)
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
		in.startOrRestart()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		in.loop.Restart()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		in.ShowHelp = !in.ShowHelp
	}

	for _, b := range in.pressedButtons(l) {
		if b == layout.ButtonStart {
			in.startOrRestart()
			continue
		}
		in.loop.Game.ChangeDirection(buttonDirections[b])
	}
}

func (in *Input) startOrRestart() {
	switch {
	case !in.loop.Game.Started():
		in.loop.Start()
	case in.loop.Game.Over():
		in.loop.Restart()
	}
}

// pressedButtons collects buttons hit by a new click or a newly landed
// touch. Desktop raylib also reports the mouse as a touch point, so a mouse
// click wins over touches in the same frame.
func (in *Input) pressedButtons(l layout.Layout) []layout.Button {
	count := rl.GetTouchPointCount()
	touches := make([]layout.Touch, 0, count)
	for i := int32(0); i < count; i++ {
		pos := rl.GetTouchPosition(i)
		touches = append(touches, layout.Touch{ID: rl.GetTouchPointId(i), X: pos.X, Y: pos.Y})
	}
	pressed := in.touches.Pressed(l, touches)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		if b, ok := l.ButtonAt(pos.X, pos.Y); ok {
			return []layout.Button{b}
		}
		return nil
	}
	return pressed
}
