package sim

import "strings"

// Keys is a set of directional keys.
type Keys uint8

const (
	KeyUp Keys = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
)

// Thrust holds the keys whose release stops the rocket moving.
const Thrust = KeyUp | KeyLeft | KeyRight

func (k Keys) Has(key Keys) bool { return k&key == key }
func (k Keys) Any(set Keys) bool { return k&set != 0 }

func (k Keys) String() string {
	if k == 0 {
		return "none"
	}
	names := make([]string, 0, 4)
	for _, e := range []struct {
		key  Keys
		name string
	}{{KeyUp, "up"}, {KeyDown, "down"}, {KeyLeft, "left"}, {KeyRight, "right"}} {
		if k.Has(e.key) {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, "+")
}

// Input is one frame's key snapshot. Held keys apply their force
// independently of each other.
type Input struct {
	Held     Keys
	Released Keys
}

// Transition builds the snapshot for moving from prev to held: every key
// held before and not now counts as released.
func Transition(prev, held Keys) Input {
	return Input{Held: held, Released: prev &^ held}
}
