package manager

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

func newTestFoodManager(size, maxFood int) *FoodManager {
	return NewFoodManager(size, maxFood, rand.New(rand.NewSource(42)), NewCollisionManager(size))
}

func TestCheckCollisionWalls(t *testing.T) {
	c := qt.New(t)
	cm := NewCollisionManager(types.GridSize)
	s := entity.NewSnake(types.Point{X: 0, Y: 0}, types.Left)
	c.Assert(cm.CheckCollision(types.Point{X: -1, Y: 0}, s), qt.Equals, WallCollision)
	c.Assert(cm.CheckCollision(types.Point{X: 0, Y: -1}, s), qt.Equals, WallCollision)
	c.Assert(cm.CheckCollision(types.Point{X: types.GridSize, Y: 3}, s), qt.Equals, WallCollision)
	c.Assert(cm.CheckCollision(types.Point{X: 3, Y: types.GridSize}, s), qt.Equals, WallCollision)
	c.Assert(cm.CheckCollision(types.Point{X: 1, Y: 0}, s), qt.Equals, NoCollision)
}

func TestCheckCollisionSelfIncludesTail(t *testing.T) {
	c := qt.New(t)
	cm := NewCollisionManager(types.GridSize)
	s := &entity.Snake{Body: []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}}
	c.Assert(cm.CheckCollision(types.Point{X: 6, Y: 5}, s), qt.Equals, SelfCollision)
	c.Assert(cm.CheckCollision(types.Point{X: 5, Y: 6}, s), qt.Equals, SelfCollision)
	c.Assert(cm.CheckCollision(types.Point{X: 4, Y: 5}, s), qt.Equals, NoCollision)
}

func TestFoodResetAvoidsSnake(t *testing.T) {
	c := qt.New(t)
	fm := newTestFoodManager(types.GridSize, types.MaxFoodCount)
	s := entity.NewSnake(types.StartPosition, types.Right)
	for i := 0; i < 50; i++ {
		fm.Reset(types.InitialFoodCount, s)
		foods := fm.GetFoodList()
		c.Assert(foods, qt.HasLen, types.InitialFoodCount)
		seen := map[types.Point]bool{}
		for _, f := range foods {
			c.Assert(s.Occupies(f), qt.IsFalse)
			c.Assert(f.InBounds(types.GridSize), qt.IsTrue)
			c.Assert(seen[f], qt.IsFalse)
			seen[f] = true
		}
	}
}

func TestSpawnRespectsMax(t *testing.T) {
	c := qt.New(t)
	fm := newTestFoodManager(types.GridSize, types.MaxFoodCount)
	s := entity.NewSnake(types.StartPosition, types.Right)
	for i := 0; i < 30; i++ {
		fm.SpawnAfterMeal(s)
		c.Assert(fm.Len() <= types.MaxFoodCount, qt.IsTrue)
	}
	c.Assert(fm.Len(), qt.Equals, types.MaxFoodCount)
	c.Assert(fm.Spawn(s), qt.IsFalse)
	c.Assert(fm.SpawnAfterMeal(s), qt.Equals, 0)
}

func TestSpawnAfterMealAddsOneOrTwo(t *testing.T) {
	c := qt.New(t)
	counts := map[int]int{}
	fm := newTestFoodManager(types.GridSize, 1000)
	s := entity.NewSnake(types.StartPosition, types.Right)
	for i := 0; i < 100; i++ {
		n := fm.SpawnAfterMeal(s)
		c.Assert(n >= 1 && n <= 2, qt.IsTrue)
		counts[n]++
	}
	c.Assert(counts[1] > 0, qt.IsTrue)
	c.Assert(counts[2] > 0, qt.IsTrue)
}

func TestGenerateFoodCrowdedGrid(t *testing.T) {
	c := qt.New(t)
	fm := newTestFoodManager(2, 10)
	s := &entity.Snake{Body: []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}

	food, ok := fm.GenerateFood(s)
	c.Assert(ok, qt.IsTrue)
	c.Assert(food, qt.Equals, types.Point{X: 0, Y: 1})

	c.Assert(fm.Spawn(s), qt.IsTrue)
	_, ok = fm.GenerateFood(s)
	c.Assert(ok, qt.IsFalse)
	c.Assert(fm.Spawn(s), qt.IsFalse)
	c.Assert(fm.Len(), qt.Equals, 1)
}

func TestEat(t *testing.T) {
	c := qt.New(t)
	fm := newTestFoodManager(types.GridSize, types.MaxFoodCount)
	s := entity.NewSnake(types.StartPosition, types.Right)
	c.Assert(fm.AddFood(types.Point{X: 1, Y: 1}, s), qt.IsTrue)
	c.Assert(fm.AddFood(types.Point{X: 2, Y: 2}, s), qt.IsTrue)
	c.Assert(fm.AddFood(types.Point{X: 2, Y: 2}, s), qt.IsFalse)
	c.Assert(fm.AddFood(types.StartPosition, s), qt.IsFalse)

	c.Assert(fm.Eat(types.Point{X: 3, Y: 3}), qt.IsFalse)
	c.Assert(fm.Eat(types.Point{X: 1, Y: 1}), qt.IsTrue)
	c.Assert(fm.GetFoodList(), qt.DeepEquals, []types.Point{{X: 2, Y: 2}})
}

func TestStateManagerLifecycle(t *testing.T) {
	c := qt.New(t)
	sm := NewStateManager()
	c.Assert(sm.Phase(), qt.Equals, Idle)
	c.Assert(sm.Started(), qt.IsFalse)
	c.Assert(sm.End(WallCollision), qt.IsFalse)
	c.Assert(sm.StepCountdown(), qt.IsFalse)

	c.Assert(sm.Start(), qt.IsTrue)
	c.Assert(sm.Start(), qt.IsFalse)
	c.Assert(sm.CountdownActive(), qt.IsTrue)
	c.Assert(sm.Countdown(), qt.Equals, 3)

	c.Assert(sm.StepCountdown(), qt.IsFalse)
	c.Assert(sm.Countdown(), qt.Equals, 2)
	c.Assert(sm.StepCountdown(), qt.IsFalse)
	c.Assert(sm.Countdown(), qt.Equals, 1)
	c.Assert(sm.StepCountdown(), qt.IsTrue)
	c.Assert(sm.Countdown(), qt.Equals, 0)
	c.Assert(sm.Phase(), qt.Equals, Running)

	c.Assert(sm.End(SelfCollision), qt.IsTrue)
	c.Assert(sm.Over(), qt.IsTrue)
	c.Assert(sm.Cause(), qt.Equals, SelfCollision)

	sm.Reset()
	c.Assert(sm.Phase(), qt.Equals, Countdown)
	c.Assert(sm.Countdown(), qt.Equals, 3)
	c.Assert(sm.Cause(), qt.Equals, NoCollision)
}
