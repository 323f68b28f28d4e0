package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/qlture/internal/config"
	"github.com/san-kum/qlture/internal/export"
	"github.com/san-kum/qlture/internal/gui"
	"github.com/san-kum/qlture/internal/pattern"
	"github.com/san-kum/qlture/internal/viz"
)

var (
	configFile string
	preset     string
	seed       uint64
	verbose    bool
	backend    string
	width      int
	height     int
	logFile    string
	frames     int
	atTime     float64
	noise      bool
	count      int
)

// main registers the commands and flags and executes the root command,
// which opens the screensaver window. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "qlture",
		Short:        "procedural wave and snow screensaver",
		SilenceUsage: true,
		RunE:         runWindow,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log cycle events to stderr")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "frame width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "frame height in pixels")
	rootCmd.Flags().StringVar(&backend, "backend", config.BackendRaylib, "window backend (raylib, ebiten)")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "run in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTerm,
	}
	termCmd.Flags().StringVar(&logFile, "log", "", "write cycle log to file")

	recordCmd := &cobra.Command{
		Use:   "record [out.gif]",
		Short: "record frames to an animated gif",
		Args:  cobra.ExactArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().IntVar(&frames, "frames", 120, "number of frames")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [out.png]",
		Short: "render one frame to png",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().Float64Var(&atTime, "time", 0, "simulation time in seconds")
	snapshotCmd.Flags().BoolVar(&noise, "noise", false, "render the first noise generator instead")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "print the generator sequence",
		Args:  cobra.NoArgs,
		RunE:  runInspect,
	}
	inspectCmd.Flags().IntVar(&count, "count", 6, "number of generators")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			fmt.Println("presets:")
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(termCmd, recordCmd, snapshotCmd, inspectCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file and explicit flags, in
// that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("width") {
		cfg.Window.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = height
	}
	if f := cmd.Flags().Lookup("backend"); f != nil && f.Changed {
		cfg.Backend = backend
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSequence(cfg *config.Config) *pattern.Sequence {
	s := cfg.Seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return pattern.NewSequence(rand.New(rand.NewPCG(s, s>>1^0x9e3779b97f4a7c15)), cfg.Sequence.Params())
}

func newLogger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "qlture: ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Backend == config.BackendEbiten {
		return gui.RunEbiten(cfg, newSequence(cfg), newLogger())
	}
	return gui.Run(cfg, newSequence(cfg), newLogger())
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// stderr belongs to the terminal UI, so logs can only go to a file
	logger := log.New(io.Discard, "", 0)
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "qlture")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.Default()
	}

	opts := cfg.CycleOptions(viz.CellSize(80, 23))
	opts.Logger = logger
	return viz.Run(newSequence(cfg), opts, cfg.Keys.Keymap())
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := cfg.CycleOptions(cfg.Window.Width, cfg.Window.Height)
	opts.Logger = newLogger()

	fmt.Printf("recording %d frames...\n", frames)
	start := time.Now()

	shots, err := export.Record(newSequence(cfg), opts, frames)
	if err != nil {
		return err
	}
	if err := export.SaveGIF(args[0], shots); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("wrote %s (%s of animation)\n", args[0], shots[len(shots)-1].At.Sub(shots[0].At))
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	seq := newSequence(cfg)
	gen := seq.Next()
	if noise {
		gen = seq.Next()
	}

	f, err := gen.Render(atTime, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	if err := export.SavePNG(args[0], f); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %s at t=%g\n", args[0], gen, atTime)
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	seq := newSequence(cfg)
	var wave pattern.Generator

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tCATEGORY\tGENERATOR")
	for i := 0; i < count; i++ {
		g := seq.Next()
		if wave == nil && g.Category() == pattern.Patterned {
			wave = g
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, g.Category(), g)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if wave == nil {
		return nil
	}

	f, err := wave.Render(0, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	row := make([]float64, f.Width)
	for x := range row {
		r, _, _ := f.At(x, f.Height/2)
		row[x] = float64(r)
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(row,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("red channel along center row at t=0 (%s)", wave)),
	))
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := config.Save(args[0], cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", args[0])
		return nil
	}
	return config.Write(os.Stdout, cfg)
}
