package repository

import (
	"context"
	"database/sql"
	"fmt"

	"devicetrack/internal/domain"

	"github.com/google/uuid"
)

type SQLiteStaffRepo struct {
	db *sql.DB
}

func NewSQLiteStaffRepo(db *sql.DB) *SQLiteStaffRepo {
	return &SQLiteStaffRepo{db: db}
}

func (r *SQLiteStaffRepo) ListStaff(ctx context.Context) ([]*domain.StaffMember, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, role FROM staff`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.StaffMember{}
	for rows.Next() {
		var s domain.StaffMember
		var name, role sql.NullString
		if err := rows.Scan(&s.ID, &name, &role); err != nil {
			return nil, err
		}
		s.Name = name.String
		s.Role = role.String
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *SQLiteStaffRepo) CreateStaff(ctx context.Context, name, role string) (*domain.StaffMember, error) {
	s := &domain.StaffMember{
		ID:   uuid.NewString(),
		Name: name,
		Role: role,
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO staff (id, name, role) VALUES (?, ?, ?)`,
		s.ID, nullIfEmpty(s.Name), nullIfEmpty(s.Role),
	); err != nil {
		return nil, fmt.Errorf("insert staff: %w", err)
	}
	return s, nil
}

func (r *SQLiteStaffRepo) DeleteStaff(ctx context.Context, staffID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = ?`, staffID); err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}
