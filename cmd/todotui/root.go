package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tatakaukohdai/todotui/internal/api"
	"github.com/tatakaukohdai/todotui/internal/config"
	"github.com/tatakaukohdai/todotui/internal/logger"
	"github.com/tatakaukohdai/todotui/internal/theme"
	"github.com/tatakaukohdai/todotui/internal/todo"
	"github.com/tatakaukohdai/todotui/internal/tui"
)

type rootOptions struct {
	configPath string
	verbose    bool
	dark       bool
	light      bool
}

var runCmdRunner = runTUI

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "todotui",
		Short:         "todotui is a themable terminal todo list",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dark && opts.light {
				return fmt.Errorf("--dark and --light are mutually exclusive")
			}
			return runCmdRunner(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Start in dark mode for this session")
	cmd.Flags().BoolVar(&opts.light, "light", false, "Start in light mode for this session")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runTUI(opts *rootOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("todotui requires an interactive terminal")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if opts.verbose {
		level = "debug"
	}

	log, err := newRunLogger(cfg, level)
	if err != nil {
		return err
	}
	defer log.Close()

	prefPath, err := theme.DefaultPreferencesPath()
	if err != nil {
		return err
	}

	provider := theme.NewProvider(theme.NewFileStore(prefPath), log)
	seedProvider(provider, cfg, opts)

	tasksPath, err := todo.DefaultTasksPath()
	if err != nil {
		return err
	}

	store, err := todo.NewStore(tasksPath)
	if err != nil {
		return err
	}

	var client *api.Client
	if cfg.API.Endpoint != "" {
		client = api.NewClient(cfg.API.Endpoint, time.Duration(cfg.API.TimeoutSeconds)*time.Second)
	}

	ctx := theme.WithProvider(context.Background(), provider)
	model := tui.NewModel(ctx, store, client, log)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}

// seedProvider applies startup overrides. CLI flags win over the
// configured default, which only applies before any preference has
// been persisted.
func seedProvider(provider *theme.Provider, cfg *config.Config, opts *rootOptions) {
	switch {
	case opts.dark:
		provider.SetDarkMode(true)
	case opts.light:
		provider.SetDarkMode(false)
	case cfg.Theme.DefaultMode == "dark":
		provider.SeedDefault(true)
	}
}

func newRunLogger(cfg *config.Config, level string) (*logger.Logger, error) {
	path := cfg.Logging.File
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".todotui", "todotui.log")
	}
	return logger.NewFileLogger(path, level)
}
