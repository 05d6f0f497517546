// Package layout computes where the board, HUD and on-screen controls go
// for a given window size. It has no raylib dependency so it can be tested
// headless.
package layout

const (
	BorderPadding = 10
	HUDHeight     = 40
	// Control pad height as a fraction of the screen height
	padFraction = 4
	minPad      = 90
	maxPad      = 220

	// Smallest window the board, HUD and pad all fit in
	MinScreenWidth  = 240
	MinScreenHeight = 320
)

// Rect is an axis aligned rectangle in screen pixels
type Rect struct {
	X, Y, W, H int32
}

func (r Rect) Contains(x, y float32) bool {
	return x >= float32(r.X) && x < float32(r.X+r.W) &&
		y >= float32(r.Y) && y < float32(r.Y+r.H)
}

func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Button identifies an on-screen control
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonStart
	NumButtons
)

func (b Button) Label() string {
	switch b {
	case ButtonUp:
		return "^"
	case ButtonDown:
		return "v"
	case ButtonLeft:
		return "<"
	case ButtonRight:
		return ">"
	case ButtonStart:
		return "START"
	default:
		return ""
	}
}

// Layout is the computed placement for one window size
type Layout struct {
	ScreenWidth  int32
	ScreenHeight int32
	CellSize     int32
	Board        Rect
	HUD          Rect
	Pad          Rect
	Buttons      [NumButtons]Rect
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Compute places a gridSize×gridSize board centred between the HUD and the
// control pad. The cell size is never below 1, so windows smaller than
// MinScreenWidth×MinScreenHeight may clip the board.
func Compute(screenWidth, screenHeight int32, gridSize int) Layout {
	screenWidth = max32(screenWidth, 1)
	screenHeight = max32(screenHeight, 1)
	l := Layout{ScreenWidth: screenWidth, ScreenHeight: screenHeight}

	padHeight := min32(max32(screenHeight/padFraction, minPad), maxPad)
	availableWidth := screenWidth - BorderPadding*2
	availableHeight := screenHeight - HUDHeight - padHeight - BorderPadding*3

	l.CellSize = max32(min32(availableWidth, availableHeight)/int32(gridSize), 1)
	boardSize := l.CellSize * int32(gridSize)

	l.HUD = Rect{X: BorderPadding, Y: BorderPadding, W: max32(availableWidth, 1), H: HUDHeight}
	l.Board = Rect{
		X: (screenWidth - boardSize) / 2,
		Y: l.HUD.Y + HUDHeight + BorderPadding,
		W: boardSize,
		H: boardSize,
	}
	l.Pad = Rect{
		X: 0,
		Y: l.Board.Y + boardSize + BorderPadding,
		W: screenWidth,
		H: padHeight,
	}
	l.placeButtons()
	return l
}

// placeButtons lays the arrows out as a cross with START to the right.
// The group is six buttons wide: cross (3), gap (1), START (2).
func (l *Layout) placeButtons() {
	size := max32(min32(l.Pad.H/3, l.Pad.W/6), 1)
	left := l.Pad.X + (l.Pad.W-6*size)/2
	cx := left + size
	top := l.Pad.Y

	l.Buttons[ButtonUp] = Rect{X: cx, Y: top, W: size, H: size}
	l.Buttons[ButtonLeft] = Rect{X: left, Y: top + size, W: size, H: size}
	l.Buttons[ButtonRight] = Rect{X: cx + size, Y: top + size, W: size, H: size}
	l.Buttons[ButtonDown] = Rect{X: cx, Y: top + 2*size, W: size, H: size}
	l.Buttons[ButtonStart] = Rect{X: left + 4*size, Y: top + size, W: size * 2, H: size}
}

// ButtonAt returns the control under (x, y)
func (l Layout) ButtonAt(x, y float32) (Button, bool) {
	for b := Button(0); b < NumButtons; b++ {
		if l.Buttons[b].Contains(x, y) {
			return b, true
		}
	}
	return 0, false
}

// CellRect is the screen rectangle of grid cell (x, y)
func (l Layout) CellRect(x, y int) Rect {
	return Rect{
		X: l.Board.X + int32(x)*l.CellSize,
		Y: l.Board.Y + int32(y)*l.CellSize,
		W: l.CellSize,
		H: l.CellSize,
	}
}
