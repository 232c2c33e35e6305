package tenant

import (
	"context"
)

// Repository defines the operations for persisting and retrieving Tenant entities.
type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	// RoomOccupied reports whether a tenant already occupies the room.
	// On a query failure implementations must return true together with the
	// error, so callers fail closed and never insert a duplicate.
	RoomOccupied(ctx context.Context, roomNumber int) (bool, error)
	// DeleteByRoom removes the tenant occupying the room, if any, and reports
	// whether a row was removed.
	DeleteByRoom(ctx context.Context, roomNumber int) (bool, error)
	List(ctx context.Context) ([]*Tenant, error)
}
