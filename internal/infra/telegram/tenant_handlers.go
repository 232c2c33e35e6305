package telegram

import (
	"context"
	"fmt"
	"strings"

	"rent_reminder_bot/internal/app"
	"rent_reminder_bot/internal/domain/tenant"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterTenantHandlers wires the operator text commands to the tenant
// service. Commands are plain text lines, one command per message; anything
// that is not a recognized command is ignored.
func RegisterTenantHandlers(ctx context.Context, b *telebot.Bot, tenantService *app.TenantService, baseLogger *logrus.Entry) {
	b.Handle(telebot.OnText, func(c telebot.Context) error {
		cmd := Parse(c.Text())
		if cmd == nil {
			return nil // not a command, stay silent
		}

		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"sender_id": c.Sender().ID,
			"chat_id":   c.Chat().ID,
		})

		switch v := cmd.(type) {
		case AddCommand:
			return handleAddTenant(ctx, c, tenantService, v, handlerLogger)
		case RemoveCommand:
			return handleRemoveTenant(ctx, c, tenantService, v, handlerLogger)
		case ListCommand:
			return handleListTenants(ctx, c, tenantService, handlerLogger)
		case InvalidCommand:
			handlerLogger.WithField("text", c.Text()).Warn("Invalid command format")
			return c.Send(v.Usage)
		default:
			return nil
		}
	})
}

func handleAddTenant(ctx context.Context, c telebot.Context, tenantService *app.TenantService, cmd AddCommand, logger *logrus.Entry) error {
	logger = logger.WithFields(logrus.Fields{
		"handler":     "add-tenant",
		"room_number": cmd.RoomNumber,
	})
	logger.Info("Command received")

	newTenant, err := tenantService.AddTenant(ctx, cmd.Name, cmd.Day, cmd.Month, cmd.RoomNumber)
	if err != nil {
		logWithError := logger.WithError(err)
		switch err {
		case app.ErrRoomOccupied:
			logWithError.Warn("Room already occupied")
			return c.Send(fmt.Sprintf("El cuarto %d ya está ocupado.", cmd.RoomNumber))
		case tenant.ErrInvalidDate:
			logWithError.Warn("Invalid move-in date")
			return c.Send(fmt.Sprintf("Fecha de ingreso inválida: %02d/%02d no es una fecha real.", cmd.Day, cmd.Month))
		case app.ErrEmptyName, app.ErrInvalidRoomNumber:
			logWithError.Warn("Invalid command arguments")
			return c.Send(usageAddTenant)
		default:
			logWithError.Error("Failed to add tenant")
			return c.Send("Error al agregar el inquilino.")
		}
	}

	logger.WithField("tenant_id", newTenant.ID).Info("Tenant added successfully")
	return c.Send(fmt.Sprintf(
		"Inquilino %s agregado con fecha de ingreso %02d/%02d, día de pago el %d y número de cuarto %d.",
		newTenant.Name, cmd.Day, cmd.Month, newTenant.PaymentDay, newTenant.RoomNumber,
	))
}

func handleRemoveTenant(ctx context.Context, c telebot.Context, tenantService *app.TenantService, cmd RemoveCommand, logger *logrus.Entry) error {
	logger = logger.WithFields(logrus.Fields{
		"handler":     "remove-tenant",
		"room_number": cmd.RoomNumber,
	})
	logger.Info("Command received")

	removed, err := tenantService.RemoveTenant(ctx, cmd.RoomNumber)
	if err != nil {
		if err == app.ErrInvalidRoomNumber {
			logger.WithError(err).Warn("Invalid room number")
			return c.Send(usageRemoveTenant)
		}
		logger.WithError(err).Error("Failed to remove tenant")
		return c.Send("Error al eliminar el inquilino.")
	}

	if !removed {
		logger.Info("No tenant found in room")
		return c.Send(fmt.Sprintf("No se encontró un inquilino en el cuarto %d.", cmd.RoomNumber))
	}

	logger.Info("Tenant removed successfully")
	return c.Send(fmt.Sprintf("Inquilino del cuarto %d eliminado correctamente.", cmd.RoomNumber))
}

func handleListTenants(ctx context.Context, c telebot.Context, tenantService *app.TenantService, logger *logrus.Entry) error {
	logger = logger.WithField("handler", "list-tenants")
	logger.Info("Command received")

	tenants := tenantService.ListTenants(ctx)
	if len(tenants) == 0 {
		return c.Send("No hay inquilinos registrados.")
	}

	logger.WithField("tenants_count", len(tenants)).Info("Listing tenants")

	var response strings.Builder
	response.WriteString("Lista de inquilinos:\n")
	for _, t := range tenants {
		response.WriteString(fmt.Sprintf("- %s (Cuarto %d), día de pago: %d , fecha de ingreso: %s\n",
			t.Name, t.RoomNumber, t.PaymentDay, formatLongDate(t.MoveInDate)))
	}
	return c.Send(response.String())
}
