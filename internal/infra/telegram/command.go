// internal/infra/telegram/command.go
package telegram

import (
	"strconv"
	"strings"
)

// Operator command tokens. Matched case-sensitively against the first word of
// a message.
const (
	tokenAddTenant    = "add-tenant"
	tokenRemoveTenant = "remove-tenant"
	tokenListTenants  = "list-tenants"
)

const (
	usageAddTenant    = "Formato incorrecto. Usa: add-tenant <nombre> <DD/MM> <número de cuarto>"
	usageRemoveTenant = "Formato incorrecto. Usa: remove-tenant <número de cuarto>"
)

// Command is the typed intent parsed from an operator message. Exactly one of
// Add, Remove, List or Invalid; nil means the message is not a command at all
// and must be ignored.
type Command interface {
	isCommand()
}

type AddCommand struct {
	Name       string
	Day        int
	Month      int
	RoomNumber int
}

type RemoveCommand struct {
	RoomNumber int
}

type ListCommand struct{}

// InvalidCommand is a recognized command token with missing or malformed
// arguments. Handlers reply with Usage and must not touch the store.
type InvalidCommand struct {
	Usage string
}

func (AddCommand) isCommand()     {}
func (RemoveCommand) isCommand()  {}
func (ListCommand) isCommand()    {}
func (InvalidCommand) isCommand() {}

// Parse turns a message line into a typed command. Calendar validity of the
// move-in date (e.g. 31/02) is left to the move-in calculator; Parse only
// checks shape.
func Parse(text string) Command {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case tokenAddTenant:
		return parseAdd(fields[1:])
	case tokenRemoveTenant:
		return parseRemove(fields[1:])
	case tokenListTenants:
		return ListCommand{}
	default:
		return nil
	}
}

func parseAdd(args []string) Command {
	if len(args) != 3 {
		return InvalidCommand{Usage: usageAddTenant}
	}

	name := args[0]

	day, month, ok := parseDayMonth(args[1])
	if !ok {
		return InvalidCommand{Usage: usageAddTenant}
	}

	roomNumber, err := strconv.Atoi(args[2])
	if err != nil {
		return InvalidCommand{Usage: usageAddTenant}
	}

	return AddCommand{Name: name, Day: day, Month: month, RoomNumber: roomNumber}
}

func parseRemove(args []string) Command {
	if len(args) != 1 {
		return InvalidCommand{Usage: usageRemoveTenant}
	}

	roomNumber, err := strconv.Atoi(args[0])
	if err != nil {
		return InvalidCommand{Usage: usageRemoveTenant}
	}

	return RemoveCommand{RoomNumber: roomNumber}
}

// parseDayMonth splits a DD/MM argument into its integer parts.
func parseDayMonth(arg string) (day, month int, ok bool) {
	parts := strings.Split(arg, "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return day, month, true
}
