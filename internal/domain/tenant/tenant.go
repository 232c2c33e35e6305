package tenant

import (
	"time"
)

// Tenant represents a person occupying a numbered room of the property.
type Tenant struct {
	ID         int64
	Name       string
	MoveInDate time.Time // date only, midnight in the move-in reference timezone
	PaymentDay int       // day-of-month rent is due, fixed at creation
	RoomNumber int
}
