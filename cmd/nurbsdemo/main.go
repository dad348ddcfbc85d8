// Command nurbsdemo builds the example curves, laws and surfaces of the nurbs
// package and writes them out as csv tables, plots and STL meshes.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("nurbsdemo failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := DefaultConfig()
	var configPath string

	root := &cobra.Command{
		Use:           "nurbsdemo",
		Short:         "Build example NURBS geometry and export it",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				// flags given on the command line win over the file
				flags := cmd.Flags()
				if flags.Changed("output") {
					loaded.OutputDir = cfg.OutputDir
				}
				if flags.Changed("samples") {
					loaded.Samples = cfg.Samples
				}
				if flags.Changed("viewer") {
					loaded.Viewer = cfg.Viewer
				}
				if flags.Changed("divisions-u") {
					loaded.DivisionsU = cfg.DivisionsU
				}
				if flags.Changed("divisions-v") {
					loaded.DivisionsV = cfg.DivisionsV
				}
				if flags.Changed("style") {
					loaded.FillStyle = cfg.FillStyle
				}
				if flags.Changed("log-level") {
					loaded.LogLevel = cfg.LogLevel
				}
				cfg = loaded
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, _ := parseLevel(cfg.LogLevel)
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "toml or yaml config file")
	flags.StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "output directory")
	flags.IntVar(&cfg.Samples, "samples", cfg.Samples, "samples along curves and laws")
	flags.IntVar(&cfg.DivisionsU, "divisions-u", cfg.DivisionsU, "tessellation divisions along u")
	flags.IntVar(&cfg.DivisionsV, "divisions-v", cfg.DivisionsV, "tessellation divisions along v")
	flags.StringVar(&cfg.FillStyle, "style", cfg.FillStyle, "fill style: coons, stretch or curved")
	flags.StringVar(&cfg.Viewer, "viewer", cfg.Viewer, "command line run on each written mesh")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	for _, demo := range demos {
		demo := demo
		root.AddCommand(&cobra.Command{
			Use:   demo.name,
			Short: demo.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				slog.Debug("running demo", "name", demo.name)
				return demo.run(cmd.Context(), &cfg)
			},
		})
	}

	return root
}
