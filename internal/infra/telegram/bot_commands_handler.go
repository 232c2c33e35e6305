// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterBotCommands registers the /start and /help handlers.
func RegisterBotCommands(b *telebot.Bot, baseLogger *logrus.Entry) {
	startHelpLogger := baseLogger.WithField("handler_group", "start_help")

	b.Handle("/start", func(c telebot.Context) error {
		startHelpLogger.WithField("sender_id", c.Sender().ID).Info("Processing /start command")
		return c.Send("¡Hola! Soy el bot de recordatorios de pago de alquiler. Usa /help para ver los comandos disponibles.")
	})

	b.Handle("/help", func(c telebot.Context) error {
		startHelpLogger.WithField("sender_id", c.Sender().ID).Info("Processing /help command")

		var helpText strings.Builder
		helpText.WriteString("Comandos disponibles:\n\n")
		helpText.WriteString("`add-tenant <nombre> <DD/MM> <número de cuarto>`\n - Registrar un inquilino. El día de pago se toma del día de la fecha de ingreso.\n\n")
		helpText.WriteString("`remove-tenant <número de cuarto>`\n - Eliminar al inquilino de ese cuarto.\n\n")
		helpText.WriteString("`list-tenants`\n - Mostrar la lista de inquilinos.\n\n")
		helpText.WriteString("Cada día a las 9:00 envío un recordatorio por cada inquilino cuyo día de pago es hoy.")
		return c.Send(helpText.String(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	})
}
