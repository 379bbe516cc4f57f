package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedSampleData inserts demo records so fresh deployments have something to
// show: one device, two staff members, two wards. Each table is only seeded
// while empty, so restarts never duplicate rows. Callers gate this behind
// configuration.
func SeedSampleData(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "devices")
	if err != nil {
		return err
	}
	if empty {
		devices := NewSQLiteDevicesRepo(db)
		if _, err := devices.CreateDevice(ctx, "Ward Laptop 1", "SN-0001", "ASSET-0001"); err != nil {
			return fmt.Errorf("seed devices: %w", err)
		}
	}

	empty, err = tableEmpty(ctx, db, "staff")
	if err != nil {
		return err
	}
	if empty {
		staff := NewSQLiteStaffRepo(db)
		for _, m := range []struct{ name, role string }{
			{"Alice Hartley", "Nurse"},
			{"Ben Osei", "IT Support"},
		} {
			if _, err := staff.CreateStaff(ctx, m.name, m.role); err != nil {
				return fmt.Errorf("seed staff: %w", err)
			}
		}
	}

	empty, err = tableEmpty(ctx, db, "wards")
	if err != nil {
		return err
	}
	if empty {
		wards := NewSQLiteWardsRepo(db)
		for _, name := range []string{"Ward A", "Ward B"} {
			if _, err := wards.CreateWard(ctx, name); err != nil {
				return fmt.Errorf("seed wards: %w", err)
			}
		}
	}

	return nil
}

func tableEmpty(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return n == 0, nil
}
