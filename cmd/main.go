package main

import (
	"log"

	"hypocotyl-bot/config"
	telegram "hypocotyl-bot/internal/api"
	"hypocotyl-bot/internal/container"
	"hypocotyl-bot/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	// Хранилища пользователей и образцов
	userRepo := storage.NewMemoryUserRepository()
	sampleRepo := storage.NewMemorySampleRepository()

	// Собираем сервисы приложения
	appContainer, err := container.New(cfg, userRepo, sampleRepo)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}
	log.Printf("Contour: %d samples, reference %s, tracer %s",
		appContainer.Options.Samples, appContainer.Options.Reference, cfg.Tracer)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
