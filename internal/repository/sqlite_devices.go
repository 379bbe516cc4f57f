package repository

import (
	"context"
	"database/sql"
	"fmt"

	"devicetrack/internal/domain"

	"github.com/google/uuid"
)

type SQLiteDevicesRepo struct {
	db *sql.DB
}

func NewSQLiteDevicesRepo(db *sql.DB) *SQLiteDevicesRepo {
	return &SQLiteDevicesRepo{db: db}
}

func (r *SQLiteDevicesRepo) ListDevices(ctx context.Context) ([]*domain.Device, error) {
	q := `
		SELECT
			id,
			name,
			serial_number,
			asset_id,
			status,
			assigned_to,
			staff_member,
			ward,
			checkout_time,
			checkout_notes,
			date_added
		FROM devices
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Device{}
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *SQLiteDevicesRepo) CreateDevice(ctx context.Context, name, serialNumber, assetID string) (*domain.Device, error) {
	d := &domain.Device{
		ID:           uuid.NewString(),
		Name:         name,
		SerialNumber: serialNumber,
		AssetID:      assetID,
		Status:       domain.DeviceStatusAvailable,
		DateAdded:    nowUTC(),
	}

	q := `
		INSERT INTO devices (id, name, serial_number, asset_id, status, date_added)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, q,
		d.ID,
		nullIfEmpty(d.Name),
		nullIfEmpty(d.SerialNumber),
		nullIfEmpty(d.AssetID),
		d.Status,
		d.DateAdded,
	); err != nil {
		return nil, fmt.Errorf("insert device: %w", err)
	}
	return d, nil
}

// UpdateDevice overwrites the checkout fields and appends the audit entry in
// one transaction, so a response never reports an update whose history row
// was lost. Missing device ids are silently a zero-row update; the history
// entry is written regardless.
func (r *SQLiteDevicesRepo) UpdateDevice(ctx context.Context, deviceID string, upd DeviceUpdate) error {
	now := nowUTC()
	histType := domain.HistoryTypeCheckout
	if upd.Status == domain.DeviceStatusAvailable {
		histType = domain.HistoryTypeCheckin
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		UPDATE devices
		SET status = ?,
		    assigned_to = ?,
		    staff_member = ?,
		    ward = ?,
		    checkout_notes = ?,
		    checkout_time = ?
		WHERE id = ?
	`,
		upd.Status,
		nullIfEmpty(upd.AssignedTo),
		nullIfEmpty(upd.StaffMember),
		nullIfEmpty(upd.Ward),
		nullIfEmpty(upd.CheckoutNotes),
		now,
		deviceID,
	); err != nil {
		return fmt.Errorf("update device: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO device_history (device_id, type, timestamp, pupil, staff, ward, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		deviceID,
		histType,
		now,
		nullIfEmpty(upd.AssignedTo),
		nullIfEmpty(upd.StaffMember),
		nullIfEmpty(upd.Ward),
		nullIfEmpty(upd.CheckoutNotes),
	); err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	return tx.Commit()
}

func (r *SQLiteDevicesRepo) DeleteDevice(ctx context.Context, deviceID string) error {
	// Zero rows affected is still success; history rows stay untouched.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM devices WHERE id = ?`, deviceID); err != nil {
		return fmt.Errorf("delete device: %w", err)
	}
	return nil
}

func (r *SQLiteDevicesRepo) ListHistory(ctx context.Context, deviceID string) ([]*domain.DeviceHistoryEntry, error) {
	// id DESC breaks ties between entries written inside the same
	// millisecond, keeping output in reverse insertion order.
	q := `
		SELECT id, device_id, type, timestamp, pupil, staff, ward, notes
		FROM device_history
		WHERE device_id = ?
		ORDER BY timestamp DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.DeviceHistoryEntry{}
	for rows.Next() {
		var e domain.DeviceHistoryEntry
		var pupil, staff, ward, notes sql.NullString
		if err := rows.Scan(&e.ID, &e.DeviceID, &e.Type, &e.Timestamp, &pupil, &staff, &ward, &notes); err != nil {
			return nil, err
		}
		e.Pupil = pupil.String
		e.Staff = staff.String
		e.Ward = ward.String
		e.Notes = notes.String
		out = append(out, &e)
	}
	return out, rows.Err()
}

func scanDevice(rows *sql.Rows) (*domain.Device, error) {
	var d domain.Device
	var name, serial, asset, assigned, staff, ward, checkoutTime, notes sql.NullString
	if err := rows.Scan(
		&d.ID,
		&name,
		&serial,
		&asset,
		&d.Status,
		&assigned,
		&staff,
		&ward,
		&checkoutTime,
		&notes,
		&d.DateAdded,
	); err != nil {
		return nil, err
	}
	d.Name = name.String
	d.SerialNumber = serial.String
	d.AssetID = asset.String
	d.AssignedTo = assigned.String
	d.StaffMember = staff.String
	d.Ward = ward.String
	d.CheckoutTime = checkoutTime.String
	d.CheckoutNotes = notes.String
	return &d, nil
}

// nullIfEmpty keeps absent request fields as NULL in storage instead of
// empty strings.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
