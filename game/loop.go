package game

import (
	"time"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// MaxCatchUpTicks bounds how many ticks one Update may run after a long frame
const MaxCatchUpTicks = 5

// Loop drives a Game from frame deltas: one timer for the countdown and
// one for movement. Only the timer matching the current phase is armed.
type Loop struct {
	Game *Game

	// OnPhaseChange, when set, is called after every phase transition
	OnPhaseChange func(from, to manager.Phase)

	countdown *Timer
	ticker    *Timer
}

func NewLoop(g *Game) *Loop {
	l := &Loop{
		Game:      g,
		countdown: NewTimer(types.CountdownInterval),
		ticker:    NewTimer(types.TickInterval),
	}
	l.sync()
	return l
}

// Start leaves Idle and arms the countdown
func (l *Loop) Start() bool {
	from := l.Game.Phase()
	if !l.Game.Start() {
		return false
	}
	l.transition(from)
	return true
}

// Restart cancels both timers, resets the game and arms a new countdown
func (l *Loop) Restart() {
	from := l.Game.Phase()
	l.countdown.Stop()
	l.ticker.Stop()
	l.Game.Restart()
	l.transition(from)
}

// Update feeds dt to the armed timer and applies what fired
func (l *Loop) Update(dt time.Duration) {
	switch l.Game.Phase() {
	case manager.Countdown:
		for n := l.countdown.Advance(dt); n > 0; n-- {
			if l.Game.CountdownStep() {
				l.transition(manager.Countdown)
				return
			}
		}
	case manager.Running:
		n := l.ticker.Advance(dt)
		if n > MaxCatchUpTicks {
			n = MaxCatchUpTicks
		}
		for ; n > 0; n-- {
			l.Game.Tick()
			if l.Game.Over() {
				l.transition(manager.Running)
				return
			}
		}
	}
}

// Close stops both timers
func (l *Loop) Close() {
	l.countdown.Stop()
	l.ticker.Stop()
}

func (l *Loop) transition(from manager.Phase) {
	l.sync()
	if l.OnPhaseChange != nil {
		l.OnPhaseChange(from, l.Game.Phase())
	}
}

// sync arms the timer that belongs to the current phase
func (l *Loop) sync() {
	switch l.Game.Phase() {
	case manager.Countdown:
		l.ticker.Stop()
		l.countdown.Reset()
	case manager.Running:
		l.countdown.Stop()
		l.ticker.Reset()
	default:
		l.countdown.Stop()
		l.ticker.Stop()
	}
}
