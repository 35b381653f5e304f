package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"starter3d/internal/config"
	"starter3d/internal/engine"
	"starter3d/internal/game"
	"starter3d/internal/sim"
)

var (
	configPath string
	scenePath  string
	debug      bool

	// simulate flags
	dropHeight  float32
	restitution float32
	duration    float32
	dt          float32
	gravityY    float32
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "starter3d",
		Short: "3D game boilerplate with an AABB physics core",
		RunE:  runGame,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "config file")
	rootCmd.Flags().StringVar(&scenePath, "scene", "", "scene file (overrides config)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "start with the debug overlay open")

	simCmd := &cobra.Command{
		Use:   "simulate",
		Short: "run the crate drop headless and plot the trajectory",
		RunE:  runSimulate,
	}
	simCmd.Flags().Float32Var(&dropHeight, "height", 5, "drop height")
	simCmd.Flags().Float32Var(&restitution, "restitution", 0.5, "crate restitution")
	simCmd.Flags().Float32Var(&duration, "time", 10, "simulated seconds")
	simCmd.Flags().Float32Var(&dt, "dt", 1.0/60.0, "fixed timestep")
	simCmd.Flags().Float32Var(&gravityY, "gravity", -9.8, "gravity along Y")
	rootCmd.AddCommand(simCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if scenePath != "" {
		cfg.Scene = scenePath
	}
	if debug {
		cfg.Debug = true
	}
	return engine.New(cfg).Run(game.New(cfg))
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg := sim.DefaultConfig()
	cfg.DropHeight = dropHeight
	cfg.Restitution = restitution
	cfg.Duration = duration
	cfg.Dt = dt
	cfg.Gravity = rl.Vector3{Y: gravityY}

	result, err := sim.Run(cfg)
	if err != nil {
		return err
	}

	fmt.Println(asciigraph.Plot(downsample(result.Heights, 120),
		asciigraph.Height(15),
		asciigraph.Caption(fmt.Sprintf("crate height over %.1fs (dt=%.4f)", cfg.Duration, cfg.Dt))))
	fmt.Printf("\nbounces: %d\n", result.Bounces)
	if result.Settled {
		fmt.Printf("settled after %.2fs at y=%.3f\n", result.SettleTime, result.RestHeight)
	} else {
		fmt.Printf("did not settle within %.1fs (y=%.3f)\n", cfg.Duration, result.RestHeight)
	}
	return nil
}

// downsample keeps the plot narrow enough for a terminal.
func downsample(data []float64, max int) []float64 {
	if len(data) <= max {
		return data
	}
	out := make([]float64, max)
	for i := range out {
		out[i] = data[i*len(data)/max]
	}
	return out
}
