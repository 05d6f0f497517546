package manager

import "snake-arcade/game/types"

// Phase is a step of the round lifecycle
type Phase int

const (
	Idle Phase = iota
	Countdown
	Running
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Countdown:
		return "countdown"
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// StateManager tracks the lifecycle: Idle -> Countdown -> Running -> GameOver.
// Restart goes back to Countdown.
type StateManager struct {
	phase     Phase
	countdown int
	cause     CollisionType
}

func NewStateManager() *StateManager {
	return &StateManager{
		phase:     Idle,
		countdown: types.CountdownStart,
	}
}

func (sm *StateManager) Phase() Phase {
	return sm.phase
}

func (sm *StateManager) Countdown() int {
	return sm.countdown
}

// Cause is the collision that ended the last round
func (sm *StateManager) Cause() CollisionType {
	return sm.cause
}

func (sm *StateManager) Started() bool {
	return sm.phase != Idle
}

func (sm *StateManager) Over() bool {
	return sm.phase == GameOver
}

func (sm *StateManager) CountdownActive() bool {
	return sm.phase == Countdown
}

// Start leaves Idle and begins the countdown
func (sm *StateManager) Start() bool {
	if sm.phase != Idle {
		return false
	}
	sm.phase = Countdown
	sm.countdown = types.CountdownStart
	return true
}

// StepCountdown decrements the countdown and switches to Running at zero.
// It reports whether the phase changed.
func (sm *StateManager) StepCountdown() bool {
	if sm.phase != Countdown {
		return false
	}
	if sm.countdown > 0 {
		sm.countdown--
	}
	if sm.countdown == 0 {
		sm.phase = Running
		return true
	}
	return false
}

// End moves a running round to GameOver
func (sm *StateManager) End(cause CollisionType) bool {
	if sm.phase != Running {
		return false
	}
	sm.phase = GameOver
	sm.cause = cause
	return true
}

// Reset rearms the countdown. It is valid from any phase.
func (sm *StateManager) Reset() {
	sm.phase = Countdown
	sm.countdown = types.CountdownStart
	sm.cause = NoCollision
}
