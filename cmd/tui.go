package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"logdash/internal/config"
	"logdash/internal/logger"
	"logdash/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the dashboard in the terminal",
	Long: `Run the dashboard in the terminal.

Keys:
  r        refresh
  t        add a test log
  x        clear all logs (y to confirm)
  m        load more
  l / s    cycle level / service filter
  /        edit search (enter or esc to leave)
  q        quit

Logs go to log.file so they do not garble the screen.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log := logger.Nop()
	if cfg.Log.File != "" {
		fileLog, closer, err := logger.NewFile(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
		if err != nil {
			return err
		}
		defer func() { _ = closer.Close() }()
		log = fileLog
	}

	a, err := buildApp(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.services.Start(ctx)
	defer a.services.Stop()

	if err := tui.Run(ctx, a.services); err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		return err
	}
	return nil
}
