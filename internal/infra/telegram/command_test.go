package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AddTenant(t *testing.T) {
	cmd := Parse("add-tenant Carlos 15/03 4")
	require.IsType(t, AddCommand{}, cmd)

	add := cmd.(AddCommand)
	assert.Equal(t, "Carlos", add.Name)
	assert.Equal(t, 15, add.Day)
	assert.Equal(t, 3, add.Month)
	assert.Equal(t, 4, add.RoomNumber)
}

func TestParse_AddTenantMalformed(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"missing all args", "add-tenant"},
		{"missing room", "add-tenant Carlos 15/03"},
		{"extra args", "add-tenant Carlos 15/03 4 extra"},
		{"date without slash", "add-tenant Carlos 1503 4"},
		{"date with letters", "add-tenant Carlos xx/03 4"},
		{"non-numeric room", "add-tenant Carlos 15/03 four"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := Parse(tc.text)
			require.IsType(t, InvalidCommand{}, cmd)
			assert.Equal(t, usageAddTenant, cmd.(InvalidCommand).Usage)
		})
	}
}

func TestParse_RemoveTenant(t *testing.T) {
	cmd := Parse("remove-tenant 4")
	require.IsType(t, RemoveCommand{}, cmd)
	assert.Equal(t, 4, cmd.(RemoveCommand).RoomNumber)
}

func TestParse_RemoveTenantMalformed(t *testing.T) {
	for _, text := range []string{"remove-tenant", "remove-tenant four", "remove-tenant 4 5"} {
		cmd := Parse(text)
		require.IsType(t, InvalidCommand{}, cmd, "input: %q", text)
		assert.Equal(t, usageRemoveTenant, cmd.(InvalidCommand).Usage)
	}
}

func TestParse_ListTenants(t *testing.T) {
	assert.IsType(t, ListCommand{}, Parse("list-tenants"))
}

func TestParse_IgnoresNonCommands(t *testing.T) {
	for _, text := range []string{
		"",
		"   ",
		"hola",
		"Add-Tenant Carlos 15/03 4", // token match is case-sensitive
		"addtenant Carlos 15/03 4",
	} {
		assert.Nil(t, Parse(text), "input: %q", text)
	}
}
