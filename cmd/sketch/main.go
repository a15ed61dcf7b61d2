// cmd/sketch/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // standard log for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/sketch/internal/app"
	"github.com/bethropolis/sketch/internal/config"
	"github.com/bethropolis/sketch/internal/logger"
)

var version = "dev"

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("sketch %s\n", version)
		os.Exit(0)
	}

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Resolve the log destination before the TUI grabs the terminal.
	var logWriter io.Writer
	var logFile *os.File
	switch cfg.Logger.LogFilePath {
	case "-":
		logWriter = os.Stderr
	case "":
		logFile, err = os.OpenFile(config.DefaultLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", config.DefaultLogFileName, err)
		}
		logWriter = logFile
	default:
		logFile, err = os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
		}
		logWriter = logFile
	}
	if logFile != nil {
		defer logFile.Close()
	}

	logger.InitWithConfig(cfg.Logger, logWriter)

	logger.Infof("Starting sketch...")
	logger.Debugf("Canvas: %dx%d, history depth %d",
		cfg.Editor.GridWidth, cfg.Editor.GridHeight, cfg.Editor.HistoryDepth)

	exportPath := ""
	if len(args) > 0 {
		exportPath = args[0]
		logger.Debugf("Export path specified: %s", exportPath)
	}

	sketchApp, err := app.NewApp(cfg, exportPath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := sketchApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("sketch finished.")
}
