package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"snipsel/app"
	"snipsel/config"
	"snipsel/domain/selection"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "snipsel.json", "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and metrics")
	outputDir := flag.String("output", "", "directory for saved screenshots (default: Pictures)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// Defaults are still usable; report and continue.
		NewLogger(slog.LevelInfo).Warn("config load failed, using defaults",
			slog.String("path", *cfgPath), slog.Any("error", err))
	}
	cfg.ApplyEnv()
	if *debugFlag {
		cfg.Debug = true
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	_ = cfg.Validate()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	regions := readPipedRegions(logger)

	application, err := app.New(cfg, logger, regions)
	if err != nil {
		logger.Error("startup failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := application.Start(); err != nil {
		logger.Error("session failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// readPipedRegions parses predefined regions from stdin when input is
// piped in. An interactive terminal means no regions were supplied.
func readPipedRegions(logger *slog.Logger) []selection.Rect {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil
	}
	regions := selection.ReadRegions(os.Stdin)
	logger.Info("predefined regions loaded", slog.Int("count", len(regions)))
	return regions
}
