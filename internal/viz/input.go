package viz

import "github.com/san-kum/lander/internal/sim"

const (
	// Covers the terminal's delay before auto-repeat starts.
	initialHold = 30
	repeatHold  = 5
)

// keyLatch turns terminal key presses into per-frame held/released
// snapshots.
type keyLatch struct {
	ttl  map[sim.Keys]int
	prev sim.Keys
}

func newKeyLatch() *keyLatch {
	return &keyLatch{ttl: make(map[sim.Keys]int)}
}

func (l *keyLatch) Press(k sim.Keys) {
	if l.ttl[k] > 0 {
		l.ttl[k] = repeatHold
		return
	}
	l.ttl[k] = initialHold
}

// Snapshot returns the input for the next frame and ages every hold.
func (l *keyLatch) Snapshot() sim.Input {
	var held sim.Keys
	for k, n := range l.ttl {
		if n <= 0 {
			continue
		}
		held |= k
		l.ttl[k] = n - 1
	}
	in := sim.Transition(l.prev, held)
	l.prev = held
	return in
}

func keyFor(s string) (sim.Keys, bool) {
	switch s {
	case "up", "w":
		return sim.KeyUp, true
	case "down", "s":
		return sim.KeyDown, true
	case "left", "a":
		return sim.KeyLeft, true
	case "right", "d":
		return sim.KeyRight, true
	}
	return 0, false
}
