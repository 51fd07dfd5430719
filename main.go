package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Directory for sessions.csv and a config snapshot (overrides config)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	g, sessions, err := startGame(cfg, *seed, logger)
	if err != nil {
		slog.Error("failed to start game", "error", err)
		os.Exit(1)
	}
	defer sessions.Close()

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	audio := ui.NewAudio(cfg.Audio.Enabled, cfg.Audio.BitePath, cfg.Audio.DeathPath)
	defer audio.Close()

	scoreboard := manager.NewScoreboard()
	renderer := ui.NewRenderer(g.Settings().Grid(), int32(cfg.Screen.CellSize), scoreboard, g.Snapshot())

	driver := game.NewDriver(g, cfg.TickInterval(), renderer, audio.Listener(), game.Hooks{
		GameOver: func(e game.GameOver) {
			scoreboard.Record(e.Summary)
			if err := sessions.Write(NewSessionRecord(e.Summary)); err != nil {
				slog.Warn("failed to export session", "error", err)
			}
			slog.Info("scoreboard", "stats", scoreboard)
		},
	})

	for !rl.WindowShouldClose() {
		if dir, ok := ui.PollDirection(); ok {
			driver.Steer(dir)
		}

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		if err := driver.Advance(dt); err != nil {
			slog.Error("tick failed", "error", err)
		}

		restart := renderer.Draw()
		if g.State() == game.Over && (restart || ui.RestartPressed()) {
			if err := driver.Restart(); err != nil {
				slog.Error("restart failed", "error", err)
			}
		}
	}
}

// startGame builds the simulation and only then opens the session export, so a
// rejected configuration leaves no output behind.
func startGame(cfg *config.Config, seed uint64, logger *slog.Logger) (*game.Game, *SessionLog, error) {
	g, err := game.NewGame(cfg.GameSettings(), game.Options{Seed: seed, Logger: logger})
	if err != nil {
		return nil, nil, err
	}

	sessions, err := NewSessionLog(cfg.Output.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening session log: %w", err)
	}
	if cfg.Output.Dir != "" {
		if err := cfg.WriteYAML(filepath.Join(cfg.Output.Dir, "config.yaml")); err != nil {
			logger.Warn("failed to write config snapshot", "error", err)
		}
	}
	return g, sessions, nil
}
