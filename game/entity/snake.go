package entity

import (
	"snake-arcade/game/types"
)

// Snake keeps its body head first
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// NextHead is where the head lands on the next move
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.ToPoint())
}

// Move prepends newHead. The tail is kept when grow is set.
func (s *Snake) Move(newHead types.Point, grow bool) {
	if grow {
		s.Body = append(s.Body, types.Point{})
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection prevents 180-degree turns. It reports whether dir was applied.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}
