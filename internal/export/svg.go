package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/lander/internal/dynamo"
	"github.com/san-kum/lander/internal/sim"
)

// Recorder collects the rocket's position after every step. It is a
// sim.Observer.
type Recorder struct {
	Path  []dynamo.Vector2
	Final sim.Frame
}

func NewRecorder() *Recorder {
	return &Recorder{Path: make([]dynamo.Vector2, 0, 256)}
}

func (r *Recorder) OnStep(f sim.Frame, in sim.Input) {
	r.Path = append(r.Path, f.Rocket.Position())
	r.Final = f
}

// FlightSVG draws a recorded flight in playfield coordinates: the floor,
// the platform, the path of the rocket's top-left corner and the rocket
// where it came to rest.
func FlightSVG(rec *Recorder, fieldW, fieldH float64) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#666666" stroke-width="2"/>
`, fieldW, fieldH, fieldW, fieldH, fieldH, fieldW, fieldH))

	if len(rec.Path) == 0 {
		sb.WriteString("</svg>")
		return sb.String()
	}

	pf := rec.Final.Platform
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#feca57" stroke-width="2"/>
`, pf.X, pf.Y, pf.W, pf.H))

	if len(rec.Path) > 1 {
		sb.WriteString(`<path fill="none" stroke="#00d4ff" stroke-width="1.5" d="M`)
		for i, p := range rec.Path {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	color := "#ff4757"
	if rec.Final.Outcome == sim.Landed {
		color = "#5fd068"
	}
	r := rec.Final.Rocket
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="2"/>
<text x="10" y="20" fill="%s" font-family="monospace">%s after %d frames, %s</text>
`, r.X, r.Y, r.W, r.H, color, color, rec.Final.Outcome, rec.Final.Index, rec.Final.FuelText()))

	sb.WriteString("</svg>")
	return sb.String()
}
