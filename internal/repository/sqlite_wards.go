package repository

import (
	"context"
	"database/sql"
	"fmt"

	"devicetrack/internal/domain"

	"github.com/google/uuid"
)

type SQLiteWardsRepo struct {
	db *sql.DB
}

func NewSQLiteWardsRepo(db *sql.DB) *SQLiteWardsRepo {
	return &SQLiteWardsRepo{db: db}
}

func (r *SQLiteWardsRepo) ListWards(ctx context.Context) ([]*domain.Ward, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM wards`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Ward{}
	for rows.Next() {
		var w domain.Ward
		var name sql.NullString
		if err := rows.Scan(&w.ID, &name); err != nil {
			return nil, err
		}
		w.Name = name.String
		out = append(out, &w)
	}
	return out, rows.Err()
}

func (r *SQLiteWardsRepo) CreateWard(ctx context.Context, name string) (*domain.Ward, error) {
	w := &domain.Ward{
		ID:   uuid.NewString(),
		Name: name,
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO wards (id, name) VALUES (?, ?)`,
		w.ID, nullIfEmpty(w.Name),
	); err != nil {
		return nil, fmt.Errorf("insert ward: %w", err)
	}
	return w, nil
}

func (r *SQLiteWardsRepo) DeleteWard(ctx context.Context, wardID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM wards WHERE id = ?`, wardID); err != nil {
		return fmt.Errorf("delete ward: %w", err)
	}
	return nil
}
