package repository

import (
	"context"

	"devicetrack/internal/domain"
)

// DeviceUpdate carries the five client-settable fields of a checkout or
// check-in. All five overwrite the stored row unconditionally.
type DeviceUpdate struct {
	Status        string
	AssignedTo    string
	StaffMember   string
	Ward          string
	CheckoutNotes string
}

// DevicesRepo persists devices and their audit history.
type DevicesRepo interface {
	// ListDevices returns every device row.
	ListDevices(ctx context.Context) ([]*domain.Device, error)

	// CreateDevice inserts a new device with a generated id and dateAdded.
	// Status is always "available" regardless of caller input.
	CreateDevice(ctx context.Context, name, serialNumber, assetID string) (*domain.Device, error)

	// UpdateDevice overwrites the checkout fields, stamps checkoutTime and
	// appends one history entry. Update and insert commit in the same
	// transaction. A missing device id is not an error: the update is a
	// no-op but the history entry is still written.
	UpdateDevice(ctx context.Context, deviceID string, upd DeviceUpdate) error

	// DeleteDevice removes the device row only. History is never cascaded.
	// Deleting a missing id succeeds.
	DeleteDevice(ctx context.Context, deviceID string) error

	// ListHistory returns the device's history entries, newest first.
	ListHistory(ctx context.Context, deviceID string) ([]*domain.DeviceHistoryEntry, error)
}
