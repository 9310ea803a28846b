package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lander/internal/dynamo"
	"github.com/san-kum/lander/internal/metrics"
	"github.com/san-kum/lander/internal/sim"
)

const (
	canvasWidth  = 48
	canvasHeight = 26
	frameRate    = 60
)

var outcomeText = map[sim.Outcome]string{
	sim.Landed:    "Congratulations, you landed the rocket on the platform!",
	sim.Crashed:   "Game over: the rocket hit the ground.",
	sim.OutOfFuel: "Game over: out of fuel.",
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model steps the game once per tick and renders its latest frame.
type Model struct {
	game        *sim.Game
	rocket      *Sprite
	platform    *Sprite
	canvas      *Canvas
	viewport    Viewport
	latch       *keyLatch
	telemetry   *metrics.Telemetry
	initialFuel float64
	theme       Theme
	styles      styles
	paused      bool
}

// NewModel builds the sprites for the game's rocket and platform and
// registers a telemetry observer on the game. Sprite construction errors
// are returned unchanged.
func NewModel(g *sim.Game) (Model, error) {
	cfg := g.Rocket().Config()
	shape := g.Rocket().Shape

	rocket, err := NewSprite("rocket", dynamo.NewRect(0, 0, shape.W, shape.H), true)
	if err != nil {
		return Model{}, err
	}
	platform, err := NewSprite("platform", g.Platform().Shape, false)
	if err != nil {
		return Model{}, err
	}

	canvas := NewCanvas(canvasWidth, canvasHeight)
	telemetry := metrics.NewTelemetry(cfg.WindowHeight)
	g.AddObserver(telemetry)

	return Model{
		game:        g,
		rocket:      rocket,
		platform:    platform,
		canvas:      canvas,
		viewport:    NewViewport(canvas, cfg.WindowWidth, cfg.WindowHeight),
		latch:       newKeyLatch(),
		telemetry:   telemetry,
		initialFuel: g.Rocket().Fuel,
		theme:       ThemeNight,
		styles:      newStyles(ThemeNight),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch s := msg.String(); s {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
		default:
			if k, ok := keyFor(s); ok {
				m.latch.Press(k)
			}
		}
	case TickMsg:
		if !m.paused {
			m.game.Step(m.latch.Snapshot())
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) draw(f sim.Frame) {
	m.canvas.Clear()
	m.platform.Draw(m.canvas, m.viewport, f.Platform.Position())
	m.rocket.Draw(m.canvas, m.viewport, f.Rocket.Position())
}

func (m Model) View() string {
	f := m.game.Frame()
	m.draw(f)

	canvasView := m.styles.canvas.Render(m.styles.rocket.Render(m.canvas.String()))

	var s strings.Builder
	s.WriteString(m.styles.header.Render("LANDER") + "\n")
	s.WriteString(m.status(f) + "\n\n")

	s.WriteString(m.styles.label.Render("Fuel") + m.styles.value.Render(fmt.Sprintf("%.2f", f.Fuel)) + "\n")
	if m.initialFuel > 0 {
		s.WriteString(m.styles.label.Render("") + m.styles.gauge(f.Fuel/m.initialFuel, 20) + "\n")
	}
	s.WriteString(m.styles.label.Render("Altitude") + m.styles.value.Render(fmt.Sprintf("%.1f", m.game.Rocket().Config().WindowHeight-f.Rocket.Bottom())) + "\n")
	s.WriteString(m.styles.label.Render("Position") + m.styles.value.Render(f.Rocket.Position().String()) + "\n")
	s.WriteString(m.styles.label.Render("Frame") + m.styles.value.Render(fmt.Sprintf("%d", f.Index)) + "\n")

	if hist := m.telemetry.Fuel(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("fuel"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	s.WriteString(m.styles.help.Render("─────────────────────\n←↑→ Thrust  ↓ Push\nSP:Pause T:Theme Q:Quit"))

	statsView := m.styles.stats.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func (m Model) status(f sim.Frame) string {
	switch {
	case f.State == sim.GameOver && f.Outcome == sim.Landed:
		return m.styles.success.Render(outcomeText[f.Outcome])
	case f.State == sim.GameOver:
		return m.styles.failure.Render(outcomeText[f.Outcome])
	case m.paused:
		return m.styles.warning.Render("PAUSED")
	}
	return m.styles.success.Render("FLYING")
}

// Run shows the game in the terminal until the player quits.
func Run(g *sim.Game) error {
	m, err := NewModel(g)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
