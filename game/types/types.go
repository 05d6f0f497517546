package types

import "time"

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Add returns p moved by the vector d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether p lies inside a size×size grid
func (p Point) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Game constants
const (
	GridSize          = 20
	MaxFoodCount      = 10
	InitialFoodCount  = 3
	CountdownStart    = 3
	MaxSpawnAttempts  = 1000 // Random tries before falling back to a scan
	TickInterval      = 150 * time.Millisecond
	CountdownInterval = time.Second
)

var (
	StartPosition  = Point{X: GridSize / 2, Y: GridSize / 2}
	StartDirection = Right
)
