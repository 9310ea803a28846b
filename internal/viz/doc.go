// Package viz is the terminal front end of the lander, built on Bubble Tea.
//
//   - [Model]: steps a [sim.Game] once per tick and draws its frame
//   - [Canvas]: Braille-based pixel canvas
//   - [Sprite]: drawable rectangle built from entity geometry
//
// Terminals report key presses but not releases, so held keys are kept
// alive for a short window after each press and reported as released once
// the window lapses.
//
// # Key Bindings
//
//	Arrows - Thrust (up, left, right) and down push
//	Space  - Pause/Resume
//	T      - Cycle color themes
//	Q      - Quit
package viz
