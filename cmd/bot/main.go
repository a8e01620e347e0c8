package main

import (
	"strings"

	"github.com/joho/godotenv"

	"github.com/folyaev/FTGB/internal/bot"
	"github.com/folyaev/FTGB/internal/config"
	"github.com/folyaev/FTGB/internal/logger"
	"github.com/folyaev/FTGB/internal/phrases"
	"github.com/folyaev/FTGB/internal/server"
	"github.com/folyaev/FTGB/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debugf("no .env file: %v", err)
	}
	cfg := config.Load()
	if cfg.DEBUG {
		logger.SetDebug()
	}

	if cfg.BOT_TOKEN == "" {
		logger.Fatal("Missing bot token")
	}

	store := phrases.Open(cfg.PHRASES_FILE)
	challenges := phrases.Open(cfg.CHALLENGES_FILE)
	usageLog := storage.NewUsageLog(cfg.USER_DATA_FILE)

	b, err := bot.New(cfg.BOT_TOKEN, store, challenges, usageLog)
	if err != nil {
		logger.Fatalf("Couldn't start bot: %v", err)
	}

	var allowedOrigins []string
	if cfg.ALLOWED_ORIGINS != "" {
		allowedOrigins = strings.Split(cfg.ALLOWED_ORIGINS, ",")
	}
	r := server.New(allowedOrigins, usageLog, store)
	go func() {
		logger.Infof("ops api listening on %s", cfg.HTTP_ADDR)
		if err := r.Run(cfg.HTTP_ADDR); err != nil {
			logger.Fatalf("Couldn't start server: %v", err)
		}
	}()

	b.Run()
}
