package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"rent_reminder_bot/internal/domain/tenant"
	idb "rent_reminder_bot/internal/infra/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("test", true)
}

// fakeTenantRepo is an in-memory Repository keyed by room number. It enforces
// room uniqueness in Create the way the UNIQUE constraint does, so service
// tests can exercise the check-then-insert race.
type fakeTenantRepo struct {
	mu      sync.Mutex
	byRoom  map[int]*tenant.Tenant
	nextID  int64
	downErr error // when set, every query fails with this error
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{byRoom: make(map[int]*tenant.Tenant)}
}

func (f *fakeTenantRepo) Create(_ context.Context, t *tenant.Tenant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.downErr != nil {
		return f.downErr
	}
	if _, exists := f.byRoom[t.RoomNumber]; exists {
		return idb.ErrDuplicateRoom
	}
	f.nextID++
	t.ID = f.nextID
	clone := *t
	f.byRoom[t.RoomNumber] = &clone
	return nil
}

func (f *fakeTenantRepo) RoomOccupied(_ context.Context, roomNumber int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.downErr != nil {
		return true, f.downErr // fail closed
	}
	_, exists := f.byRoom[roomNumber]
	return exists, nil
}

func (f *fakeTenantRepo) DeleteByRoom(_ context.Context, roomNumber int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.downErr != nil {
		return false, f.downErr
	}
	if _, exists := f.byRoom[roomNumber]; !exists {
		return false, nil
	}
	delete(f.byRoom, roomNumber)
	return true, nil
}

func (f *fakeTenantRepo) List(_ context.Context) ([]*tenant.Tenant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.downErr != nil {
		return nil, f.downErr
	}
	tenants := make([]*tenant.Tenant, 0, len(f.byRoom))
	for _, t := range f.byRoom {
		clone := *t
		tenants = append(tenants, &clone)
	}
	return tenants, nil
}

func (f *fakeTenantRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byRoom)
}

func TestAddTenant_DerivesPaymentDayFromMoveInDay(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewTenantService(repo, testLogger())

	added, err := svc.AddTenant(context.Background(), "Carlos", 15, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 15, added.PaymentDay)
	assert.Equal(t, 4, added.RoomNumber)
	assert.NotZero(t, added.ID)

	tenants := svc.ListTenants(context.Background())
	require.Len(t, tenants, 1)
	assert.Equal(t, 15, tenants[0].PaymentDay)
}

func TestAddTenant_OccupiedRoomConflicts(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewTenantService(repo, testLogger())

	_, err := svc.AddTenant(context.Background(), "Carlos", 15, 3, 4)
	require.NoError(t, err)

	_, err = svc.AddTenant(context.Background(), "Ana", 1, 6, 4)
	assert.ErrorIs(t, err, ErrRoomOccupied)
	assert.Equal(t, 1, repo.count(), "conflicting add must not change the store")
}

func TestAddTenant_Validation(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewTenantService(repo, testLogger())

	_, err := svc.AddTenant(context.Background(), "  ", 15, 3, 4)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.AddTenant(context.Background(), "Carlos", 15, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidRoomNumber)

	_, err = svc.AddTenant(context.Background(), "Carlos", 31, 2, 4)
	assert.ErrorIs(t, err, tenant.ErrInvalidDate)

	assert.Zero(t, repo.count(), "no record may be created on validation failure")
}

func TestAddTenant_OccupancyCheckFailsClosed(t *testing.T) {
	repo := newFakeTenantRepo()
	repo.downErr = fmt.Errorf("db unreachable")
	svc := NewTenantService(repo, testLogger())

	_, err := svc.AddTenant(context.Background(), "Carlos", 15, 3, 4)
	assert.ErrorIs(t, err, ErrRoomOccupied, "an unreadable store must be treated as occupied")
}

func TestAddTenant_ConcurrentSameRoom(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewTenantService(repo, testLogger())

	const attempts = 8
	errs := make(chan error, attempts)
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			_, err := svc.AddTenant(context.Background(), fmt.Sprintf("Tenant%d", i), 10, 5, 4)
			errs <- err
		}(i)
	}
	start.Done()
	done.Wait()
	close(errs)

	succeeded, conflicted := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case err == ErrRoomOccupied:
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent add may win")
	assert.Equal(t, attempts-1, conflicted)
	assert.Equal(t, 1, repo.count())
}

func TestRemoveTenant(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewTenantService(repo, testLogger())

	removed, err := svc.RemoveTenant(context.Background(), 4)
	require.NoError(t, err)
	assert.False(t, removed, "empty room removal reports not found")

	_, err = svc.AddTenant(context.Background(), "Carlos", 15, 3, 4)
	require.NoError(t, err)

	removed, err = svc.RemoveTenant(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Zero(t, repo.count())

	// The room is addable again after removal.
	_, err = svc.AddTenant(context.Background(), "Ana", 1, 6, 4)
	assert.NoError(t, err)
}

func TestRemoveTenant_StorageFailure(t *testing.T) {
	repo := newFakeTenantRepo()
	repo.downErr = fmt.Errorf("db unreachable")
	svc := NewTenantService(repo, testLogger())

	_, err := svc.RemoveTenant(context.Background(), 4)
	assert.Error(t, err)
}

func TestListTenants_BestEffort(t *testing.T) {
	repo := newFakeTenantRepo()
	repo.downErr = fmt.Errorf("db unreachable")
	svc := NewTenantService(repo, testLogger())

	tenants := svc.ListTenants(context.Background())
	assert.NotNil(t, tenants)
	assert.Empty(t, tenants, "a failed read lists as empty, never as an error")
}
