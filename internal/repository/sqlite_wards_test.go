package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWardCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteWardsRepo(newTestDB(t))

	w, err := repo.CreateWard(ctx, "Ward A")
	require.NoError(t, err)
	require.NotEmpty(t, w.ID)

	wards, err := repo.ListWards(ctx)
	require.NoError(t, err)
	require.Len(t, wards, 1)
	require.Equal(t, "Ward A", wards[0].Name)
}

func TestWardDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteWardsRepo(newTestDB(t))

	w, err := repo.CreateWard(ctx, "Ward B")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteWard(ctx, w.ID))
	require.NoError(t, repo.DeleteWard(ctx, w.ID))
}
