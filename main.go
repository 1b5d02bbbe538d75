package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/chucky-1/finance-ledger/internal/config"
	"github.com/chucky-1/finance-ledger/internal/consumer"
	"github.com/chucky-1/finance-ledger/internal/repository"
	"github.com/chucky-1/finance-ledger/internal/service"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, reading configuration from the environment")
	}

	cfg := config.Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("couldn't parse config: %v", err)
	}
	validate := validator.New()
	if err := cfg.Validate(validate); err != nil {
		logrus.Fatalf("invalid config: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("couldn't parse log level: %v", err)
	}
	logrus.SetLevel(level)

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logrus.Fatal(err)
	}
	bot.Debug = cfg.Telegram.Debug

	repo := repository.NewFileStorage(cfg.LedgerFile)
	if _, err = repo.Load(ctx); err != nil {
		logrus.Fatalf("couldn't read ledger file: %v", err)
	}

	financeService := service.NewFinance(
		repo,
		repository.NewModesLocalStorage(),
		service.NewRecorder(validate),
		service.NewReporter(repo, cfg.HistoryLimit),
	)

	tgBot := consumer.NewBot(bot, cfg.Telegram.WebAppURL)
	hub := consumer.NewHub(tgBot, tgBot.Updates(cfg.Telegram.Timeout), financeService, cfg.Telegram.QueueSize)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Consume(gCtx)
		cancel()
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		tgBot.Stop()
		return nil
	})
	if err = g.Wait(); err != nil {
		logrus.Error(err)
	}
	logrus.Info("bot stopped")
}
