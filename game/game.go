package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Game holds the whole state of one play session. It is not safe for
// concurrent use; the frame loop is its only caller.
type Game struct {
	RoundID   uuid.UUID
	StartTime time.Time

	snake        *entity.Snake
	score        int
	bestScore    int
	hasMoved     bool
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame builds a game in the Idle phase. A nil rng gets a time seeded one.
func NewGame(rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	collisionMgr := manager.NewCollisionManager(types.GridSize)
	g := &Game{
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(types.GridSize, types.MaxFoodCount, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(),
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.RoundID = uuid.New()
	g.StartTime = time.Now()
	g.snake = entity.NewSnake(types.StartPosition, types.StartDirection)
	g.score = 0
	g.hasMoved = false
	g.foodMgr.Reset(types.InitialFoodCount, g.snake)
}

// Start begins the countdown of a fresh game. Only valid while Idle.
func (g *Game) Start() bool {
	return g.stateMgr.Start()
}

// Restart resets snake, direction, score, foods and countdown, then
// begins a new countdown.
func (g *Game) Restart() {
	g.reset()
	g.stateMgr.Reset()
}

// CountdownStep advances the countdown by one second. It reports whether
// the round switched to Running.
func (g *Game) CountdownStep() bool {
	return g.stateMgr.StepCountdown()
}

// ChangeDirection queues a turn for the next tick. At most one turn is
// accepted per tick, and never a reversal.
func (g *Game) ChangeDirection(dir types.Direction) bool {
	if g.stateMgr.Phase() != manager.Running || g.hasMoved {
		return false
	}
	if dir == g.snake.Direction {
		return true
	}
	if !g.snake.SetDirection(dir) {
		return false
	}
	g.hasMoved = true
	return true
}

// Tick advances the snake one cell. It reports whether food was eaten.
func (g *Game) Tick() bool {
	if g.stateMgr.Phase() != manager.Running {
		return false
	}
	defer func() { g.hasMoved = false }()

	newHead := g.snake.NextHead()
	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != manager.NoCollision {
		g.stateMgr.End(collision)
		return false
	}

	ate := g.foodMgr.Eat(newHead)
	g.snake.Move(newHead, ate)
	if !ate {
		return false
	}

	g.score++
	if g.score > g.bestScore {
		g.bestScore = g.score
	}
	g.foodMgr.SpawnAfterMeal(g.snake)
	return true
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFoodList() []types.Point {
	return g.foodMgr.GetFoodList()
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Phase() manager.Phase {
	return g.stateMgr.Phase()
}

func (g *Game) Countdown() int {
	return g.stateMgr.Countdown()
}

func (g *Game) Started() bool {
	return g.stateMgr.Started()
}

func (g *Game) Over() bool {
	return g.stateMgr.Over()
}

// Snapshot is a copy of the state for drawing
type Snapshot struct {
	Body      []types.Point
	Foods     []types.Point
	Direction types.Direction
	Score     int
	BestScore int
	Phase     manager.Phase
	Countdown int
	Cause     manager.CollisionType
}

func (g *Game) Snapshot() Snapshot {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)
	foods := make([]types.Point, g.foodMgr.Len())
	copy(foods, g.foodMgr.GetFoodList())
	return Snapshot{
		Body:      body,
		Foods:     foods,
		Direction: g.snake.Direction,
		Score:     g.score,
		BestScore: g.bestScore,
		Phase:     g.stateMgr.Phase(),
		Countdown: g.stateMgr.Countdown(),
		Cause:     g.stateMgr.Cause(),
	}
}
