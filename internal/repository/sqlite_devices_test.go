package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"devicetrack/internal/domain"
	"devicetrack/internal/store"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	st, err := store.Open(store.Options{
		Path: filepath.Join(t.TempDir(), "devicetrack.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st.DB()
}

func TestCreateDeviceForcesAvailable(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDevicesRepo(newTestDB(t))

	d, err := repo.CreateDevice(ctx, "Laptop 12", "SN-12", "ASSET-12")
	require.NoError(t, err)
	require.NotEmpty(t, d.ID)
	require.NotEmpty(t, d.DateAdded)
	require.Equal(t, domain.DeviceStatusAvailable, d.Status)
	require.Empty(t, d.CheckoutTime, "checkout fields stay empty until first checkout")

	devices, err := repo.ListDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.Equal(t, d, devices[0])
}

func TestUpdateDeviceAppendsCheckoutHistory(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDevicesRepo(newTestDB(t))

	d, err := repo.CreateDevice(ctx, "Laptop 12", "SN-12", "ASSET-12")
	require.NoError(t, err)

	err = repo.UpdateDevice(ctx, d.ID, DeviceUpdate{
		Status:        domain.DeviceStatusCheckedOut,
		AssignedTo:    "Tommy P",
		StaffMember:   "Alice Hartley",
		Ward:          "Ward A",
		CheckoutNotes: "charger included",
	})
	require.NoError(t, err)

	devices, err := repo.ListDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.Equal(t, domain.DeviceStatusCheckedOut, devices[0].Status)
	require.Equal(t, "Tommy P", devices[0].AssignedTo)
	require.NotEmpty(t, devices[0].CheckoutTime)

	entries, err := repo.ListHistory(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, domain.HistoryTypeCheckout, entries[0].Type)
	require.Equal(t, "Tommy P", entries[0].Pupil, "pupil mirrors assignedTo")
	require.Equal(t, "Alice Hartley", entries[0].Staff)
	require.Equal(t, "Ward A", entries[0].Ward)
	require.Equal(t, "charger included", entries[0].Notes)
	require.Equal(t, devices[0].CheckoutTime, entries[0].Timestamp)
}

func TestUpdateDeviceAvailableAppendsCheckin(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDevicesRepo(newTestDB(t))

	d, err := repo.CreateDevice(ctx, "Laptop 12", "SN-12", "ASSET-12")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateDevice(ctx, d.ID, DeviceUpdate{Status: domain.DeviceStatusAvailable}))

	entries, err := repo.ListHistory(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, domain.HistoryTypeCheckin, entries[0].Type)
}

func TestHistoryIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDevicesRepo(newTestDB(t))

	d, err := repo.CreateDevice(ctx, "Laptop 12", "SN-12", "ASSET-12")
	require.NoError(t, err)

	for _, notes := range []string{"first", "second", "third"} {
		require.NoError(t, repo.UpdateDevice(ctx, d.ID, DeviceUpdate{
			Status:        domain.DeviceStatusCheckedOut,
			CheckoutNotes: notes,
		}))
	}

	entries, err := repo.ListHistory(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "third", entries[0].Notes)
	require.Equal(t, "second", entries[1].Notes)
	require.Equal(t, "first", entries[2].Notes)
}

func TestDeleteDeviceKeepsHistory(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDevicesRepo(newTestDB(t))

	d, err := repo.CreateDevice(ctx, "Laptop 12", "SN-12", "ASSET-12")
	require.NoError(t, err)
	require.NoError(t, repo.UpdateDevice(ctx, d.ID, DeviceUpdate{Status: domain.DeviceStatusCheckedOut}))

	require.NoError(t, repo.DeleteDevice(ctx, d.ID))

	devices, err := repo.ListDevices(ctx)
	require.NoError(t, err)
	require.Empty(t, devices)

	entries, err := repo.ListHistory(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1, "history must survive device deletion")
}

func TestDeleteDeviceIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDevicesRepo(newTestDB(t))

	require.NoError(t, repo.DeleteDevice(ctx, "no-such-id"))
	require.NoError(t, repo.DeleteDevice(ctx, "no-such-id"))
}

func TestUpdateMissingDeviceStillAppendsHistory(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDevicesRepo(newTestDB(t))

	require.NoError(t, repo.UpdateDevice(ctx, "ghost", DeviceUpdate{Status: domain.DeviceStatusCheckedOut}))

	devices, err := repo.ListDevices(ctx)
	require.NoError(t, err)
	require.Empty(t, devices)

	entries, err := repo.ListHistory(ctx, "ghost")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestConcurrentUpdatesSerialize(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDevicesRepo(newTestDB(t))

	d, err := repo.CreateDevice(ctx, "Laptop 12", "SN-12", "ASSET-12")
	require.NoError(t, err)

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.UpdateDevice(ctx, d.ID, DeviceUpdate{
				Status:     domain.DeviceStatusCheckedOut,
				AssignedTo: fmt.Sprintf("pupil-%d", i),
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	entries, err := repo.ListHistory(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, entries, n, "exactly one history row per completed update")

	devices, err := repo.ListDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.Equal(t, domain.DeviceStatusCheckedOut, devices[0].Status)
	// last-committed-wins: the surviving assignee is one of the writers
	require.Regexp(t, `^pupil-[0-7]$`, devices[0].AssignedTo)
}

func TestListHistoryUnknownDeviceIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteDevicesRepo(newTestDB(t))

	entries, err := repo.ListHistory(ctx, "unknown")
	require.NoError(t, err)
	require.Empty(t, entries)
}
