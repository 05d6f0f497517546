package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	boardColor  = rl.NewColor(24, 24, 24, 255)
	gridColor   = rl.NewColor(40, 40, 40, 255)
	snakeColor  = rl.NewColor(60, 200, 90, 255)
	headColor   = rl.NewColor(110, 240, 130, 255)
	foodColor   = rl.Red
	buttonColor = rl.NewColor(70, 70, 70, 255)
)

var helpLines = []string{
	"Arrows / WASD: steer",
	"Space / Enter: start, restart after game over",
	"R: restart now",
	"H: toggle this help",
	"Esc: quit",
}

type Renderer struct {
	layout layout.Layout
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions recomputes the layout from the current window size
func (r *Renderer) UpdateDimensions() {
	r.layout = layout.Compute(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), types.GridSize)
}

func (r *Renderer) Layout() layout.Layout {
	return r.layout
}

func (r *Renderer) Draw(s game.Snapshot, showHelp bool) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := max(r.layout.HUD.H/2, 10)

	r.drawBoard()
	for _, food := range s.Foods {
		r.fillCell(food, foodColor)
	}
	r.drawSnake(s)
	r.drawHUD(s, fontSize)
	r.drawControls(fontSize)

	switch s.Phase {
	case manager.Idle:
		r.drawBanner("Press SPACE or START", "", fontSize)
	case manager.Countdown:
		r.drawBanner(fmt.Sprintf("%d", s.Countdown), "", fontSize*3)
	case manager.GameOver:
		r.drawBanner("Game Over!", fmt.Sprintf("%s Score %d - SPACE to restart", causeText(s.Cause), s.Score), fontSize)
	}

	if showHelp {
		r.drawHelp(fontSize)
	}
}

func causeText(ct manager.CollisionType) string {
	switch ct {
	case manager.WallCollision:
		return "Hit the wall."
	case manager.SelfCollision:
		return "Bit your tail."
	default:
		return ""
	}
}

func (r *Renderer) drawBoard() {
	b := r.layout.Board
	rl.DrawRectangle(b.X-1, b.Y-1, b.W+2, b.H+2, rl.DarkGray)
	rl.DrawRectangle(b.X, b.Y, b.W, b.H, boardColor)
	if r.layout.CellSize < 4 {
		return
	}
	for x := 0; x < types.GridSize; x++ {
		for y := 0; y < types.GridSize; y++ {
			c := r.layout.CellRect(x, y)
			rl.DrawRectangleLines(c.X, c.Y, c.W, c.H, gridColor)
		}
	}
}

func (r *Renderer) fillCell(p types.Point, color rl.Color) {
	c := r.layout.CellRect(p.X, p.Y)
	rl.DrawRectangle(c.X, c.Y, c.W, c.H, color)
}

func (r *Renderer) drawSnake(s game.Snapshot) {
	for i := len(s.Body) - 1; i >= 1; i-- {
		r.fillCell(s.Body[i], snakeColor)
	}
	if len(s.Body) == 0 {
		return
	}
	head := s.Body[0]
	r.fillCell(head, headColor)

	// Direction indicator
	c := r.layout.CellRect(head.X, head.Y)
	headX, headY := float32(c.X), float32(c.Y)
	cell := float32(c.W)
	half := cell / 2
	switch s.Direction {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX + half, Y: headY},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY + cell},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: headX + half, Y: headY},
			rl.Vector2{X: headX, Y: headY + half},
			rl.Vector2{X: headX + cell, Y: headY + half},
			rl.Yellow)
	}
}

func (r *Renderer) drawHUD(s game.Snapshot, fontSize int32) {
	hud := r.layout.HUD
	y := hud.Y + (hud.H-fontSize)/2
	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), hud.X, y, fontSize, rl.White)

	best := fmt.Sprintf("Best: %d", s.BestScore)
	rl.DrawText(best, hud.X+hud.W-rl.MeasureText(best, fontSize), y, fontSize, rl.Green)

	hint := "H: help"
	small := max(fontSize*2/3, 8)
	rl.DrawText(hint, hud.X+(hud.W-rl.MeasureText(hint, small))/2, y, small, rl.Gray)
}

func (r *Renderer) drawControls(fontSize int32) {
	for b := layout.Button(0); b < layout.NumButtons; b++ {
		rect := r.layout.Buttons[b]
		rl.DrawRectangle(rect.X+2, rect.Y+2, rect.W-4, rect.H-4, buttonColor)
		label := b.Label()
		textWidth := rl.MeasureText(label, fontSize)
		rl.DrawText(label, rect.X+(rect.W-textWidth)/2, rect.Y+(rect.H-fontSize)/2, fontSize, rl.White)
	}
}

// drawBanner centres a title and an optional subtitle over the board
func (r *Renderer) drawBanner(title, subtitle string, fontSize int32) {
	b := r.layout.Board
	rl.DrawRectangle(b.X, b.Y, b.W, b.H, rl.Fade(rl.Black, 0.5))

	textWidth := rl.MeasureText(title, fontSize)
	y := b.Y + b.H/2 - fontSize
	rl.DrawText(title, b.X+(b.W-textWidth)/2, y, fontSize, rl.White)

	if subtitle == "" {
		return
	}
	small := max(fontSize*2/3, 8)
	subWidth := rl.MeasureText(subtitle, small)
	rl.DrawText(subtitle, b.X+(b.W-subWidth)/2, y+fontSize+small/2, small, rl.LightGray)
}

func (r *Renderer) drawHelp(fontSize int32) {
	b := r.layout.Board
	lineHeight := fontSize + fontSize/2
	boxHeight := lineHeight*int32(len(helpLines)) + fontSize
	top := b.Y + (b.H-boxHeight)/2
	rl.DrawRectangle(b.X, top, b.W, boxHeight, rl.Fade(rl.DarkGray, 0.9))
	for i, line := range helpLines {
		rl.DrawText(line, b.X+fontSize/2, top+fontSize/2+int32(i)*lineHeight, fontSize*2/3, rl.White)
	}
}
