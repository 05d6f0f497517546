package types

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDirectionToPoint(t *testing.T) {
	c := qt.New(t)
	c.Assert(Up.ToPoint(), qt.Equals, Point{X: 0, Y: -1})
	c.Assert(Right.ToPoint(), qt.Equals, Point{X: 1, Y: 0})
	c.Assert(Down.ToPoint(), qt.Equals, Point{X: 0, Y: 1})
	c.Assert(Left.ToPoint(), qt.Equals, Point{X: -1, Y: 0})
	c.Assert(None.ToPoint(), qt.Equals, Point{})
}

func TestDirectionOpposite(t *testing.T) {
	c := qt.New(t)
	for _, d := range Directions {
		o := d.Opposite()
		c.Assert(o, qt.Not(qt.Equals), d)
		c.Assert(o.Opposite(), qt.Equals, d)
		c.Assert(d.ToPoint().Add(o.ToPoint()), qt.Equals, Point{})
	}
}

func TestPointInBounds(t *testing.T) {
	c := qt.New(t)
	c.Assert(Point{0, 0}.InBounds(GridSize), qt.IsTrue)
	c.Assert(Point{GridSize - 1, GridSize - 1}.InBounds(GridSize), qt.IsTrue)
	c.Assert(Point{-1, 5}.InBounds(GridSize), qt.IsFalse)
	c.Assert(Point{5, GridSize}.InBounds(GridSize), qt.IsFalse)
}

func TestStartPosition(t *testing.T) {
	c := qt.New(t)
	c.Assert(StartPosition, qt.Equals, Point{X: 10, Y: 10})
	c.Assert(StartDirection, qt.Equals, Right)
}
