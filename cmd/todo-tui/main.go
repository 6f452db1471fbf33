// todo-tui is an interactive terminal editor for a plain-text to-do file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"todo-tui/app"
	"todo-tui/config"
	"todo-tui/store"
	"todo-tui/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "todo-tui [file]",
		Short: "Edit a TODO/DONE task file in the terminal",
		Long: `todo-tui opens a plain-text task file where each line is "TODO: <text>"
or "DONE: <text>" and lets you browse, add and complete tasks.

Keys: j/k move, tab switches view, a adds, x toggles, y copies,
s saves, q quits, ctrl+c quits without saving.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return run(cfg, fileArg(cfg, args))
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/todo-tui/config.yaml)")

	root.AddCommand(&cobra.Command{
		Use:   "init [file]",
		Short: "Create an empty task file and a config template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return initFiles(cmd.OutOrStdout(), cfg, configPath, fileArg(cfg, args))
		},
	})
	return root
}

func fileArg(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.File
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.DefaultConfig(), nil
		}
		path = p
	}
	return config.Load(path)
}

func initFiles(out io.Writer, cfg *config.Config, configPath, file string) error {
	created, err := store.Create(file)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(out, "Created %s\n", file)
	} else {
		fmt.Fprintf(out, "%s already exists\n", file)
	}

	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil
		}
		configPath = p
	}
	written, err := config.WriteTemplate(configPath)
	if err != nil {
		return err
	}
	if written {
		fmt.Fprintf(out, "Wrote config template to %s\n", configPath)
	}
	return nil
}

func run(cfg *config.Config, file string) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	st := store.NewFile(file)
	st.Backups = cfg.BackupCount()
	svc, err := app.Open(st)
	if err != nil {
		if errors.Is(err, store.ErrStorageUnavailable) {
			return fmt.Errorf("%w (run `todo-tui init %s` to create it)", err, file)
		}
		return err
	}
	logger.Info("opened task file", "file", file, "todo", len(svc.Pending()), "done", len(svc.Completed()))

	model := tui.NewModel(svc, cfg.HighlightStyle(), tui.Options{
		SaveOnQuit: cfg.SaveOnQuit,
		Logger:     logger,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	if svc.Dirty() {
		logger.Warn("exited with unsaved changes", "file", file)
	}
	return nil
}

// newLogger writes to cfg.LogFile, or discards everything when it is unset.
// The terminal is owned by the UI, so logs never go to stderr.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	if cfg.LogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "todo-tui",
	})
	return logger, func() { _ = f.Close() }, nil
}
