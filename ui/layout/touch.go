package layout

// Touch is one active touch point as reported by the platform
type Touch struct {
	ID   int32
	X, Y float32
}

// TouchTracker remembers which touch points were already down so a held
// finger fires its button once, when it lands.
type TouchTracker struct {
	down map[int32]bool
}

// Pressed returns the buttons under touch points that were not down on the
// previous call. Buttons are reported at most once per call.
func (t *TouchTracker) Pressed(l Layout, touches []Touch) []Button {
	now := make(map[int32]bool, len(touches))
	var pressed []Button
	seen := map[Button]bool{}
	for _, tp := range touches {
		now[tp.ID] = true
		if t.down[tp.ID] {
			continue
		}
		if b, ok := l.ButtonAt(tp.X, tp.Y); ok && !seen[b] {
			seen[b] = true
			pressed = append(pressed, b)
		}
	}
	t.down = now
	return pressed
}

// Clear forgets every tracked touch point
func (t *TouchTracker) Clear() {
	t.down = nil
}
