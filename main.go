package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/rockpaperscissors-backend/internal"
	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "./config.yml", "path to the config file")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger. Logs go to stderr so they do not mix with the game on stdout.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
