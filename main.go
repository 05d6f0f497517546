package main

import (
	"fmt"
	"os"
	"time"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/ui"
	"snake-arcade/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	rl.SetTraceLogLevel(logLevel(cfg))
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetWindowMinSize(layout.MinScreenWidth, layout.MinScreenHeight)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.FPS))

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := game.NewGame(rand.New(rand.NewSource(seed)))
	loop := game.NewLoop(g)
	defer loop.Close()
	loop.OnPhaseChange = func(from, to manager.Phase) {
		logPhaseChange(g, from, to)
	}
	rl.TraceLog(rl.LogInfo, "SNAKE: round %s ready (seed %d)", g.RoundID, seed)

	renderer := ui.NewRenderer()
	input := ui.NewInput(loop)
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		input.Poll(renderer.Layout())

		now := time.Now()
		loop.Update(now.Sub(lastUpdate))
		lastUpdate = now

		renderer.Draw(g.Snapshot(), input.ShowHelp)
	}
}

func logLevel(cfg config.Config) rl.TraceLogLevel {
	if cfg.Verbose {
		return rl.LogDebug
	}
	return rl.LogInfo
}

func logPhaseChange(g *game.Game, from, to manager.Phase) {
	switch to {
	case manager.GameOver:
		s := g.Snapshot()
		rl.TraceLog(rl.LogInfo, "SNAKE: round %s over: %s collision, score %d, length %d, %.1fs",
			g.RoundID, s.Cause, s.Score, len(s.Body), time.Since(g.StartTime).Seconds())
	case manager.Countdown:
		if from != manager.Idle {
			rl.TraceLog(rl.LogInfo, "SNAKE: restarted as round %s", g.RoundID)
		}
		rl.TraceLog(rl.LogDebug, "SNAKE: round %s countdown", g.RoundID)
	default:
		rl.TraceLog(rl.LogDebug, "SNAKE: round %s %s -> %s", g.RoundID, from, to)
	}
}
