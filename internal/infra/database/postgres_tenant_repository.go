package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rent_reminder_bot/internal/domain/tenant"

	"github.com/lib/pq"
)

// Custom errors
var ErrTenantNotFound = fmt.Errorf("tenant not found")
var ErrDuplicateRoom = fmt.Errorf("tenant with this room number already exists")

const uniqueViolationCode = "23505"

type PostgresTenantRepository struct {
	db *sql.DB
}

func NewPostgresTenantRepository(db *sql.DB) *PostgresTenantRepository {
	return &PostgresTenantRepository{db: db}
}

func (r *PostgresTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	query := `INSERT INTO tenants (name, move_in_date, payment_day, room_number)
               VALUES ($1, $2, $3, $4)
               RETURNING id`

	err := r.db.QueryRowContext(ctx, query, t.Name, t.MoveInDate, t.PaymentDay, t.RoomNumber).Scan(&t.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return ErrDuplicateRoom
		}
		return fmt.Errorf("error creating tenant: %w", err)
	}
	return nil
}

// RoomOccupied reports whether a tenant occupies the given room. A query
// failure returns true alongside the error so the caller fails closed and
// never inserts a duplicate on top of an unreadable store.
func (r *PostgresTenantRepository) RoomOccupied(ctx context.Context, roomNumber int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tenants WHERE room_number = $1)`

	var occupied bool
	err := r.db.QueryRowContext(ctx, query, roomNumber).Scan(&occupied)
	if err != nil {
		return true, fmt.Errorf("error checking room occupancy: %w", err)
	}
	return occupied, nil
}

func (r *PostgresTenantRepository) DeleteByRoom(ctx context.Context, roomNumber int) (bool, error) {
	query := `DELETE FROM tenants WHERE room_number = $1`

	res, err := r.db.ExecContext(ctx, query, roomNumber)
	if err != nil {
		return false, fmt.Errorf("error deleting tenant by room: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading affected rows for tenant delete: %w", err)
	}
	return affected > 0, nil
}

func (r *PostgresTenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	query := `SELECT id, name, move_in_date, payment_day, room_number FROM tenants`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing tenants: %w", err)
	}
	defer rows.Close()

	tenants := make([]*tenant.Tenant, 0)
	for rows.Next() {
		t := &tenant.Tenant{}
		if err := rows.Scan(&t.ID, &t.Name, &t.MoveInDate, &t.PaymentDay, &t.RoomNumber); err != nil {
			return nil, fmt.Errorf("error scanning tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenants: %w", err)
	}
	return tenants, nil
}
