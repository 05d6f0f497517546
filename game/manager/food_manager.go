package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	gridSize     int
	maxFood      int
	foodList     []types.Point
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(gridSize, maxFood int, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		gridSize:     gridSize,
		maxFood:      maxFood,
		foodList:     make([]types.Point, 0, maxFood),
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Reset drops every food and places count new ones
func (fm *FoodManager) Reset(count int, snake *entity.Snake) {
	fm.foodList = fm.foodList[:0]
	for i := 0; i < count; i++ {
		if !fm.Spawn(snake) {
			return
		}
	}
}

// Spawn adds one food on a free cell. It returns false when the food set
// is full or no free cell exists.
func (fm *FoodManager) Spawn(snake *entity.Snake) bool {
	if len(fm.foodList) >= fm.maxFood {
		return false
	}
	food, ok := fm.GenerateFood(snake)
	if !ok {
		return false
	}
	return fm.AddFood(food, snake)
}

// SpawnAfterMeal places one food and, on a coin flip, a second one.
// It returns how many were added.
func (fm *FoodManager) SpawnAfterMeal(snake *entity.Snake) int {
	want := 1 + fm.rng.Intn(2)
	added := 0
	for i := 0; i < want; i++ {
		if !fm.Spawn(snake) {
			break
		}
		added++
	}
	return added
}

// GenerateFood picks a uniformly random free cell
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	for attempt := 0; attempt < types.MaxSpawnAttempts; attempt++ {
		food := types.Point{
			X: fm.rng.Intn(fm.gridSize),
			Y: fm.rng.Intn(fm.gridSize),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake, fm.foodList) {
			return food, true
		}
	}

	// Crowded grid: pick among the cells that are actually free.
	free := make([]types.Point, 0, fm.gridSize)
	for y := 0; y < fm.gridSize; y++ {
		for x := 0; x < fm.gridSize; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake, fm.foodList) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) GetFoodList() []types.Point {
	return fm.foodList
}

func (fm *FoodManager) Len() int {
	return len(fm.foodList)
}

// Eat removes the food at pos and reports whether there was one
func (fm *FoodManager) Eat(pos types.Point) bool {
	i, ok := fm.collisionMgr.CheckFoodCollisions(pos, fm.foodList)
	if !ok {
		return false
	}
	// Remove food from list by swapping with last element and truncating
	last := len(fm.foodList) - 1
	fm.foodList[i] = fm.foodList[last]
	fm.foodList = fm.foodList[:last]
	return true
}

// AddFood places food at a fixed position. Occupied cells and a full set
// are refused.
func (fm *FoodManager) AddFood(food types.Point, snake *entity.Snake) bool {
	if len(fm.foodList) >= fm.maxFood {
		return false
	}
	if !fm.collisionMgr.ValidateSpawnPosition(food, snake, fm.foodList) {
		return false
	}
	fm.foodList = append(fm.foodList, food)
	return true
}
