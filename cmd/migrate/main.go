package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ventureplan/backend/internal/config"
	"github.com/ventureplan/backend/internal/logging"
	"github.com/ventureplan/backend/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   未適用のマイグレーションを適用
  down        全マイグレーションを巻き戻す
  fresh       全テーブルを DROP し、全マイグレーションを順番に適用
  version     現在のスキーマバージョンを表示`)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	migrator, err := repository.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			slog.Warn("close failed", "error", err)
		}
	}()

	switch cmd {
	case "":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "fresh":
		slog.Info("dropping all tables")
		err = migrator.Fresh()
	case "version":
	default:
		usage()
	}
	if err != nil {
		logging.Fatal("migration failed", "command", cmd, "error", err)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		logging.Fatal("read version failed", "error", err)
	}
	slog.Info("schema version", "version", version, "dirty", dirty)
}
