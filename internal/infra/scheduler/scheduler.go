package scheduler

import (
	"context"
	"fmt"
	"time"

	"rent_reminder_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReminderScheduler fires the daily payment-day reminder cycle. The cron
// expression is evaluated in the reminder timezone (America/Bogota), so the
// 09:00 fire and the "what day is today" decision use the same clock.
type ReminderScheduler struct {
	cronEngine      *cron.Cron
	reminderService *app.ReminderService
	logger          *logrus.Entry
	cronSpecDaily   string
}

func NewReminderScheduler(
	reminderService *app.ReminderService,
	logger *logrus.Entry,
	cronSpecDaily string, // e.g. "0 9 * * *" (9:00 AM daily)
) (*ReminderScheduler, error) {
	loc, err := time.LoadLocation(app.ReminderTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduler timezone: %w", err)
	}
	return &ReminderScheduler{
		cronEngine:      cron.New(cron.WithLocation(loc)),
		reminderService: reminderService,
		logger:          logger,
		cronSpecDaily:   cronSpecDaily,
	}, nil
}

func (s *ReminderScheduler) Start() error {
	s.logger.Info("Starting reminder scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecDaily, func() {
		s.logger.Info("Cron job triggered for daily payment reminders.")
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute) // Context for the job
		defer cancel()
		if err := s.reminderService.RunCycle(ctx, time.Now()); err != nil {
			s.logger.WithError(err).Error("Error during daily reminder cycle")
		}
	})
	if err != nil {
		return fmt.Errorf("could not add daily reminder cron job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.Info("Reminder scheduler started.")
	return nil
}

func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Reminder scheduler gracefully stopped.")
}
