// cmd/migrate/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"go_5_wheelword/internal/config"
	"go_5_wheelword/internal/database"
)

const usage = `usage: migrate <command>

commands:
  up        未適用のマイグレーションをすべて適用
  down [N]  N ステップ (デフォルト 1) ロールバック
  status    現在のバージョンを表示`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err := config.LoadConfig("configs"); err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	databaseURL := config.Cfg.Database.URL
	if databaseURL == "" {
		logger.Error("Database URL is not configured")
		os.Exit(1)
	}

	if err := run(os.Args[1:], databaseURL, logger); err != nil {
		logger.Error("Migration command failed", slog.String("command", os.Args[1]), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(args []string, databaseURL string, logger *slog.Logger) error {
	switch args[0] {
	case "up":
		return database.MigrateUp(databaseURL, logger)
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid steps %q: %w", args[1], err)
			}
			steps = n
		}
		return database.MigrateDown(databaseURL, steps, logger)
	case "status":
		version, dirty, err := database.MigrateStatus(databaseURL)
		if err != nil {
			return err
		}
		logger.Info("Migration status", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		return nil
	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
