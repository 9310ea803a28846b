package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lander/internal/config"
	"github.com/san-kum/lander/internal/control"
	"github.com/san-kum/lander/internal/export"
	"github.com/san-kum/lander/internal/logging"
	"github.com/san-kum/lander/internal/metrics"
	"github.com/san-kum/lander/internal/optim"
	"github.com/san-kum/lander/internal/physics"
	"github.com/san-kum/lander/internal/sim"
	"github.com/san-kum/lander/internal/viz"
)

var (
	configFile string
	preset     string
	logFile    string
	pilotName  string
	maxFrames  int
	weights    []float64
	svgFile    string
)

// main registers the commands and runs the game in the terminal when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lander [weight fuel gravity]",
		Short: "land a rocket on the platform before the fuel runs out",
		Args:  cobra.MaximumNArgs(3),
		RunE:  runPlay,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	playCmd := &cobra.Command{
		Use:   "play [weight fuel gravity]",
		Short: "fly the rocket from the keyboard",
		Args:  cobra.MaximumNArgs(3),
		RunE:  runPlay,
	}
	// The root command plays too, so it takes the same flags.
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().StringVar(&logFile, "log", "", "write JSON logs to this file")
	}

	simCmd := &cobra.Command{
		Use:   "sim [weight fuel gravity]",
		Short: "fly the rocket headless with a pilot",
		Args:  cobra.MaximumNArgs(3),
		RunE:  runSim,
	}
	simCmd.Flags().StringVar(&pilotName, "pilot", "", fmt.Sprintf("pilot (%s)", strings.Join(control.Names(), ", ")))
	simCmd.Flags().IntVar(&maxFrames, "frames", sim.DefaultConfig().MaxFrames, "frame cap")
	simCmd.Flags().Float64SliceVar(&weights, "weights", nil, "fly one rocket per weight and compare")
	simCmd.Flags().StringVar(&svgFile, "svg", "", "write the flight path to this SVG file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tWEIGHT\tFUEL\tGRAVITY\tHEIGHT")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", name, p.Weight, p.Fuel, p.Gravity, p.Playfield.Height)
			}
			return w.Flush()
		},
	}

	tuneCmd := &cobra.Command{
		Use:   "tune [weight fuel gravity]",
		Short: "grid search autopilot gains for the cheapest landing",
		Args:  cobra.MaximumNArgs(3),
		RunE:  runTune,
	}
	tuneCmd.Flags().IntVar(&maxFrames, "frames", sim.DefaultConfig().MaxFrames, "frame cap")

	rootCmd.AddCommand(playCmd, simCmd, presetsCmd, tuneCmd)
	return rootCmd
}

// loadConfig layers defaults, the preset, the config file and the
// positional weight/fuel/gravity arguments, in that order.
func loadConfig(args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := cfg.Merge(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ParseStartup(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newGame(cfg *config.Config, log *slog.Logger) *sim.Game {
	pc := cfg.Physics()
	rocket := physics.NewRocket(pc, cfg.Start.X, cfg.Start.Y, cfg.Weight, cfg.Fuel)
	return sim.NewGame(rocket, pc.NewPlatform(), cfg.GravityVector(), sim.WithLogger(log))
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.Open(logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("starting game", "weight", cfg.Weight, "fuel", cfg.Fuel, "gravity", cfg.Gravity)
	return viz.Run(newGame(cfg, log))
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("pilot") {
		cfg.Pilot = pilotName
	}
	pilot, err := control.New(cfg.Pilot, nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := logging.New(cmd.ErrOrStderr())
	simCfg := sim.Config{MaxFrames: maxFrames}

	if len(weights) > 0 {
		return compareWeights(ctx, cmd, cfg, log, simCfg)
	}

	g := newGame(cfg, log)
	rec := export.NewRecorder()
	g.AddObserver(rec)
	telemetry := metrics.NewTelemetry(cfg.Playfield.Height)

	runner := sim.NewRunner(pilot)
	runner.AddMetric(metrics.NewFuelBurn(cfg.Fuel))
	runner.AddMetric(metrics.NewControlEffort())
	runner.AddMetric(metrics.NewSteeringPeriod())
	runner.AddMetric(telemetry)

	result, err := runner.Run(ctx, g, simCfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pilot: %s  weight=%g fuel=%g gravity=%g\n", cfg.Pilot, cfg.Weight, cfg.Fuel, cfg.Gravity)
	fmt.Fprintf(out, "outcome: %s after %d frames\n", result.Outcome, result.Frames)
	fmt.Fprintf(out, "final position: %s  %s\n\n", result.Final.Rocket.Position(), result.Final.FuelText())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range []string{"fuel_burned", "control_effort", "steering_period", "peak_descent"} {
		fmt.Fprintf(w, "%s\t%.4f\n", name, result.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if alt := telemetry.Altitude(); len(alt) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(alt, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("altitude")))
	}
	if fuel := telemetry.Fuel(); len(fuel) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(fuel, asciigraph.Height(6), asciigraph.Width(60), asciigraph.Caption("fuel")))
	}

	if svgFile != "" {
		svg := export.FlightSVG(rec, cfg.Playfield.Width, cfg.Playfield.Height)
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return logging.WrapError(err, "write %s", svgFile)
		}
		fmt.Fprintf(out, "\nflight path written to %s\n", svgFile)
	}
	return nil
}

// compareWeights flies one rocket per weight concurrently and prints a
// summary row for each.
func compareWeights(ctx context.Context, cmd *cobra.Command, cfg *config.Config, log *slog.Logger, simCfg sim.Config) error {
	flights := make([]sim.Flight, len(weights))
	for i, weight := range weights {
		c := *cfg
		c.Weight = weight
		if err := c.Validate(); err != nil {
			return err
		}
		// Pilots keep controller state, so every flight gets its own.
		pilot, err := control.New(c.Pilot, nil)
		if err != nil {
			return err
		}
		flights[i] = func() (*sim.Game, sim.Pilot, []sim.Metric) {
			ms := []sim.Metric{metrics.NewFuelBurn(c.Fuel), metrics.NewControlEffort()}
			return newGame(&c, log.With("weight", c.Weight)), pilot, ms
		}
	}

	results, err := sim.NewEnsemble(flights...).Run(ctx, simCfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WEIGHT\tOUTCOME\tFRAMES\tFUEL_BURN\tEFFORT")
	for i, r := range results {
		fmt.Fprintf(w, "%g\t%s\t%d\t%.4f\t%.4f\n", weights[i], r.Outcome, r.Frames, r.Metrics["fuel_burned"], r.Metrics["control_effort"])
	}
	return w.Flush()
}

var tuneGrid = struct {
	names  []string
	ranges [][]float64
}{
	names: []string{"kp", "kd", "cruise"},
	ranges: [][]float64{
		{0.005, 0.01, 0.02, 0.05},
		{0.1, 0.5, 1},
		{0.001, 0.002, 0.005},
	},
}

func runTune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	build := func(params map[string]float64) (*sim.Game, sim.Pilot, error) {
		pilot, err := control.New("autopilot", params)
		if err != nil {
			return nil, nil, err
		}
		return newGame(cfg, logging.Discard()), pilot, nil
	}

	search := optim.NewGridSearch(tuneGrid.names, tuneGrid.ranges)
	best, used, err := search.Search(ctx, build, optim.FuelToLand(cfg.Fuel), sim.Config{MaxFrames: maxFrames})
	if errors.Is(err, optim.ErrNoCandidate) {
		fmt.Fprintln(cmd.OutOrStdout(), "no gains in the grid landed the rocket")
		return nil
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAM\tVALUE")
	for _, name := range tuneGrid.names {
		fmt.Fprintf(w, "%s\t%g\n", name, best[name])
	}
	fmt.Fprintf(w, "fuel used\t%.4f\n", used)
	return w.Flush()
}
