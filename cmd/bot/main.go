package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rent_reminder_bot/internal/app"
	"rent_reminder_bot/internal/infra/config"
	idb "rent_reminder_bot/internal/infra/database"
	"rent_reminder_bot/internal/infra/logger"
	"rent_reminder_bot/internal/infra/scheduler"
	"rent_reminder_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get().WithField("component", "main")
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Reminder chat: %d",
		cfg.LogLevel, cfg.Environment, cfg.ReminderChatID)

	ctx := context.Background()

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully.")

	if err := idb.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("FATAL: Could not ensure database schema: %v", err)
	}
	log.Info("Tenants table created or already existing.")

	// Initialize Repository and Services
	tenantRepo := idb.NewPostgresTenantRepository(db)
	tenantService := app.NewTenantService(tenantRepo, logger.Get().WithField("component", "tenant_service"))
	log.Info("Tenant service initialized.")

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := logger.Get().WithError(err).WithField("component", "telebot")
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithFields(logrus.Fields{
					"message": c.Text(),
					"sender":  c.Sender().ID,
					"chat":    c.Chat().ID,
				})
			}
			entry.Error("Unhandled bot error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}

	telegramClient := telegram.NewTelebotAdapter(bot)

	reminderService, err := app.NewReminderService(
		tenantService,
		telegramClient,
		cfg.ReminderChatID,
		logger.Get().WithField("component", "reminder_service"),
	)
	if err != nil {
		log.Fatalf("FATAL: Could not create reminder service: %v", err)
	}

	// Initialize ReminderScheduler
	reminderScheduler, err := scheduler.NewReminderScheduler(
		reminderService,
		logger.Get().WithField("component", "scheduler"),
		cfg.CronSpecDaily,
	)
	if err != nil {
		log.Fatalf("FATAL: Could not create reminder scheduler: %v", err)
	}
	if err := reminderScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start reminder scheduler: %v", err)
	}

	// Register Handlers
	telegram.RegisterBotCommands(bot, logger.Get().WithField("component", "telegram"))
	telegram.RegisterTenantHandlers(ctx, bot, tenantService, logger.Get().WithField("component", "telegram"))
	log.Info("Tenant command handlers registered.")

	log.Info("Application setup complete. Bot and Scheduler are starting...")

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	reminderScheduler.Stop()
	bot.Stop()
	// db.Close() is handled by defer
	log.Info("Application shut down gracefully.")
}
