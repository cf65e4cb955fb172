package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"ticket-archiver/config"
	"ticket-archiver/handler"
)

func main() {
	// ローカル実行用。なければ環境変数のみ
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.Any("err", err))
		os.Exit(1)
	}

	h, err := handler.NewHandler(cfg)
	if err != nil {
		slog.Error("NewHandler failed", slog.Any("err", err))
		os.Exit(1)
	}

	slog.Info("starting ticket archiver",
		slog.String("channel", cfg.ArchiveChannelID),
		slog.String("record_driver", cfg.RecordDriver),
	)
	if err := h.Handle(); err != nil {
		slog.Error("archiver failed", slog.Any("err", err))
		os.Exit(1)
	}
}
