package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codefionn/rechenschnell/internal/calc"
	"github.com/codefionn/rechenschnell/internal/config"
	"github.com/codefionn/rechenschnell/internal/history"
	"github.com/codefionn/rechenschnell/internal/logger"
	"github.com/codefionn/rechenschnell/internal/tui"
)

const version = "0.3.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	configPath := flag.String("config", config.GetConfigPath(), "path to the configuration file")
	logLevel := flag.String("log-level", "", "override the log level (debug, info, warn, error, none)")
	logFile := flag.String("log-file", "", "override the log file path")
	noHistory := flag.Bool("no-history", false, "disable history persistence for this run")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("rechenschnell %s\n", version)
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Environment variables override the config file, flags override both.
	if envLevel := strings.TrimSpace(os.Getenv("RECHENSCHNELL_LOG_LEVEL")); envLevel != "" {
		cfg.LogLevel = envLevel
	}
	if envPath := strings.TrimSpace(os.Getenv("RECHENSCHNELL_LOG_PATH")); envPath != "" {
		cfg.LogPath = envPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFile != "" {
		cfg.LogPath = *logFile
	}
	if *noHistory {
		cfg.PersistHistory = false
	}

	var loggerInitialized bool
	defer func() {
		if !loggerInitialized {
			return
		}
		if err != nil {
			logger.Error("fatal error: %v", err)
		}
		if closeErr := logger.Global().Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close logger: %v\n", closeErr)
		}
	}()

	if initErr := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); initErr != nil {
		return fmt.Errorf("failed to initialize logger: %w", initErr)
	}
	loggerInitialized = true

	logger.Info("rechenschnell %s starting", version)
	logger.Debug("configuration: log_level=%s, persist_history=%v", cfg.LogLevel, cfg.PersistHistory)

	ledgerOpts := []history.Option{}
	if cfg.PersistHistory {
		store, storeErr := history.OpenSQLiteStore(cfg.HistoryPath)
		if storeErr != nil {
			// History is a convenience; the calculator works without it.
			logger.Warn("history persistence disabled: %v", storeErr)
		} else {
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					logger.Warn("failed to close history store: %v", closeErr)
				}
			}()
			ledgerOpts = append(ledgerOpts, history.WithStore(store))
		}
	}

	ledger := history.New(ledgerOpts...)
	editor := calc.NewEditor(ledger)

	program := tea.NewProgram(tui.New(editor, version), tea.WithAltScreen())
	if _, runErr := program.Run(); runErr != nil {
		return fmt.Errorf("failed to run program: %w", runErr)
	}

	logger.Info("rechenschnell exiting")
	return nil
}
