// Package control provides pilots for headless flights.
//
// Pilots implement [sim.Pilot] and turn the latest [sim.Frame] into a key
// snapshot for the next step:
//
//   - [None]: never touches the controls
//   - [Manual]: replays whatever keys were last set on it
//   - [Autopilot]: two [PID] loops, one steering toward the platform and one
//     holding the vertical acceleration near a cruise value
//
// # Usage
//
//	pilot, _ := control.New("autopilot", map[string]float64{"kp": 0.02})
//	result, _ := sim.NewRunner(pilot).Run(ctx, game, sim.DefaultConfig())
//
// [PID] implements GetParams/SetParam for live tuning.
package control
