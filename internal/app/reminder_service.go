package app

import (
	"context"
	"fmt"
	"time"

	domainTelegram "rent_reminder_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

var ErrChannelUnresolved = fmt.Errorf("reminder channel could not be resolved")

// ReminderTimezone is the timezone in which the daily trigger decides what
// "today" is. Kept distinct from the move-in timezone (America/Lima) on
// purpose, matching the system this replaces.
const ReminderTimezone = "America/Bogota"

// ReminderService runs one reminder cycle: it scans all tenants and notifies
// the configured channel for every tenant whose payment day is today. It keeps
// no state between cycles, so a second fire on the same day re-sends every
// matching reminder.
type ReminderService struct {
	tenantService  *TenantService
	telegramClient domainTelegram.Client
	reminderChatID int64
	location       *time.Location
	logger         *logrus.Entry
}

func NewReminderService(
	ts *TenantService,
	tc domainTelegram.Client,
	reminderChatID int64,
	logger *logrus.Entry,
) (*ReminderService, error) {
	loc, err := time.LoadLocation(ReminderTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load reminder timezone: %w", err)
	}
	return &ReminderService{
		tenantService:  ts,
		telegramClient: tc,
		reminderChatID: reminderChatID,
		location:       loc,
		logger:         logger,
	}, nil
}

// RunCycle evaluates all tenants against the day-of-month of the given
// instant in the reminder timezone and emits one notification per match. An
// unresolvable channel drops the whole cycle; the next fire retries from
// scratch.
func (s *ReminderService) RunCycle(ctx context.Context, now time.Time) error {
	today := now.In(s.location).Day()
	cycleLogger := s.logger.WithField("day_of_month", today)
	cycleLogger.Info("Starting reminder cycle")

	if err := s.telegramClient.ResolveChat(s.reminderChatID); err != nil {
		cycleLogger.WithError(err).WithField("chat_id", s.reminderChatID).
			Error("Reminder channel could not be resolved, dropping this cycle's notifications")
		return fmt.Errorf("%w: %v", ErrChannelUnresolved, err)
	}

	tenants := s.tenantService.ListTenants(ctx)

	sent := 0
	for _, t := range tenants {
		if t.PaymentDay != today {
			continue
		}
		message := fmt.Sprintf("📅 Recordatorio: Hoy es el día de pago de %s (Cuarto %d).", t.Name, t.RoomNumber)
		if err := s.telegramClient.SendMessage(s.reminderChatID, message, nil); err != nil {
			cycleLogger.WithError(err).WithFields(logrus.Fields{
				"tenant_id":   t.ID,
				"room_number": t.RoomNumber,
			}).Error("Failed to send payment reminder")
			continue
		}
		sent++
	}

	cycleLogger.WithFields(logrus.Fields{
		"tenants_checked": len(tenants),
		"reminders_sent":  sent,
	}).Info("Reminder cycle finished")
	return nil
}
