package repository

import (
	"context"

	"devicetrack/internal/domain"
)

// WardsRepo persists wards.
type WardsRepo interface {
	ListWards(ctx context.Context) ([]*domain.Ward, error)
	CreateWard(ctx context.Context, name string) (*domain.Ward, error)
	// DeleteWard succeeds even when the id does not exist.
	DeleteWard(ctx context.Context, wardID string) error
}
