package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rent_reminder_bot/internal/domain/tenant"
	idb "rent_reminder_bot/internal/infra/database"

	"github.com/sirupsen/logrus"
)

// Custom application-level errors for the tenant service
var ErrEmptyName = fmt.Errorf("tenant name must not be empty")
var ErrInvalidRoomNumber = fmt.Errorf("room number must be a positive integer")
var ErrRoomOccupied = fmt.Errorf("room is already occupied")

// TenantService owns the tenant record lifecycle. No other component mutates
// the store directly.
type TenantService struct {
	tenantRepo tenant.Repository
	logger     *logrus.Entry
}

func NewTenantService(tr tenant.Repository, logger *logrus.Entry) *TenantService {
	return &TenantService{
		tenantRepo: tr,
		logger:     logger,
	}
}

// AddTenant validates the input, derives the payment day from the move-in
// day/month and persists the new tenant. The occupancy pre-check fails closed:
// if the store cannot be read, the room is treated as occupied. A duplicate
// slipping past the pre-check (two concurrent adds for the same room) is
// rejected by the room_number UNIQUE constraint and surfaces as the same
// ErrRoomOccupied.
func (s *TenantService) AddTenant(ctx context.Context, name string, day, month, roomNumber int) (*tenant.Tenant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if roomNumber <= 0 {
		return nil, ErrInvalidRoomNumber
	}

	moveInDate, err := tenant.NewMoveInDate(day, month, time.Now())
	if err != nil {
		return nil, err
	}

	occupied, err := s.tenantRepo.RoomOccupied(ctx, roomNumber)
	if err != nil {
		s.logger.WithError(err).WithField("room_number", roomNumber).
			Error("Occupancy check failed, treating room as occupied")
	}
	if occupied {
		return nil, ErrRoomOccupied
	}

	newTenant := &tenant.Tenant{
		Name:       name,
		MoveInDate: moveInDate,
		PaymentDay: moveInDate.Day(),
		RoomNumber: roomNumber,
	}

	err = s.tenantRepo.Create(ctx, newTenant)
	if err != nil {
		if err == idb.ErrDuplicateRoom {
			return nil, ErrRoomOccupied
		}
		return nil, fmt.Errorf("failed to create tenant in repository: %w", err)
	}

	return newTenant, nil
}

// RemoveTenant deletes the tenant occupying the room, if any, and reports
// whether a record was removed.
func (s *TenantService) RemoveTenant(ctx context.Context, roomNumber int) (bool, error) {
	if roomNumber <= 0 {
		return false, ErrInvalidRoomNumber
	}

	removed, err := s.tenantRepo.DeleteByRoom(ctx, roomNumber)
	if err != nil {
		return false, fmt.Errorf("failed to remove tenant from repository: %w", err)
	}
	return removed, nil
}

// ListTenants returns all tenants in unspecified order. Listing is
// best-effort: a read failure is logged and an empty slice returned, never an
// error.
func (s *TenantService) ListTenants(ctx context.Context) []*tenant.Tenant {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list tenants")
		return []*tenant.Tenant{}
	}
	return tenants
}
