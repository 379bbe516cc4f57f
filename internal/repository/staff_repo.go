package repository

import (
	"context"

	"devicetrack/internal/domain"
)

// StaffRepo persists staff members.
type StaffRepo interface {
	ListStaff(ctx context.Context) ([]*domain.StaffMember, error)
	CreateStaff(ctx context.Context, name, role string) (*domain.StaffMember, error)
	// DeleteStaff succeeds even when the id does not exist.
	DeleteStaff(ctx context.Context, staffID string) error
}
