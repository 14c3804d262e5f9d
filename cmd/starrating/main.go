package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/starrating/internal/config"
	"github.com/jask/starrating/internal/logging"
	"github.com/jask/starrating/internal/rating"
	"github.com/jask/starrating/internal/svg"
	"github.com/jask/starrating/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "starrating",
		Short: "Interactive star-rating control",
		Long: `starrating mounts a configurable star-rating control in the terminal.

Hover a star with the mouse to preview (left half = half star), click to rate,
click the same value again to clear. Tab/arrow keys move focus and
Enter/Space rates the focused star.

Settings come from ~/.config/starrating/config.toml (or $STARRATING_CONFIG),
STARRATING_* environment variables and the flags below.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}
	config.RegisterFlags(root.PersistentFlags())
	root.AddCommand(newSVGCmd())
	return root
}

func newSVGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Write the control as an SVG document",
		Args:  cobra.NoArgs,
		RunE:  runSVG,
	}
	cmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	return cmd
}

// setup loads configuration and the logger shared by every command.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return config.Config{}, nil, err
	}
	for _, d := range cfg.Rating.Diagnostics() {
		logger.Warn("config", zap.String("issue", d))
	}
	return cfg, logger, nil
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	widgetCfg := cfg.Rating.Widget(func(v float64) {
		logger.Debug("on rating changed", zap.Float64("value", v))
	})
	logger.Info("mount",
		zap.Int("max_stars", widgetCfg.MaxStars),
		zap.Float64("default", widgetCfg.DefaultValue),
		zap.String("animation", string(widgetCfg.Animation)),
	)

	app := tui.NewApp(tui.New(widgetCfg), logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("unmount", zap.Float64("rating", app.Rating().Widget().Rating()))
	return nil
}

func runSVG(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	wid := rating.New(cfg.Rating.Widget(nil))

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return svg.Render(cmd.OutOrStdout(), wid)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := svg.Render(f, wid); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}
	logger.Info("svg written", zap.String("path", out))
	return nil
}
