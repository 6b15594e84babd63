package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/JosefAlbers/bonzai/app"
	"github.com/JosefAlbers/bonzai/config"
)

func mainCmd() *cobra.Command {
	var (
		cfgPath string
		seed    int64
		watch   bool
		width   int
		height  int
	)

	cmd := &cobra.Command{
		Use:   "bonzai",
		Short: "Grow and explore random 3D trees",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return run(cfgPath, seed, watch, width, height)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "TOML config file (optional)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
	cmd.Flags().BoolVar(&watch, "watch", false, "regenerate when the config file changes")
	cmd.Flags().IntVar(&width, "width", 0, "window width override")
	cmd.Flags().IntVar(&height, "height", 0, "window height override")

	return cmd
}

func run(cfgPath string, seed int64, watch bool, width, height int) error {
	if watch && cfgPath == "" {
		return errors.New("--watch requires --config")
	}

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
	}

	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var reload <-chan struct{}
	if watch {
		ch, stop, err := app.WatchConfig(cfgPath)
		if err != nil {
			return err
		}
		defer stop()
		reload = ch
	}

	a, err := app.New(cfg, cfgPath, seed, reload)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)

	return ebiten.RunGame(a)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
