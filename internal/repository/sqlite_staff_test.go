package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaffCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteStaffRepo(newTestDB(t))

	s, err := repo.CreateStaff(ctx, "Alice Hartley", "Nurse")
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	staff, err := repo.ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	require.Equal(t, "Alice Hartley", staff[0].Name)
	require.Equal(t, "Nurse", staff[0].Role)
}

func TestStaffDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteStaffRepo(newTestDB(t))

	s, err := repo.CreateStaff(ctx, "Ben Osei", "IT Support")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteStaff(ctx, s.ID))
	require.NoError(t, repo.DeleteStaff(ctx, s.ID), "second delete of the same id still succeeds")

	staff, err := repo.ListStaff(ctx)
	require.NoError(t, err)
	require.Empty(t, staff)
}
