package snapshot_test

import (
	"context"
	"errors"
	"testing"

	"ledgerui/internal/adapters/storage/memory/snapshot"
	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySnapshotRepo_GetSet(t *testing.T) {
	repo := snapshot.NewInMemorySnapshotRepo()
	ctx := context.Background()

	_, err := repo.Get(ctx)
	require.Error(t, err, "Get() should return an error before the first Set")
	assert.True(t, errors.Is(err, repository.ErrSnapshotEmpty), "Error should be ErrSnapshotEmpty")

	require.NoError(t, repo.Set(ctx, []domain.Transaction{}))
	got, err := repo.Get(ctx)
	require.NoError(t, err, "Get() after setting an empty list failed")
	assert.Empty(t, got)

	list := []domain.Transaction{domain.NewTransaction("1", "Coffee", decimal.NewFromInt(-5))}
	require.NoError(t, repo.Set(ctx, list))

	list[0].Name = "mutated after Set"
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Coffee", got[0].Name, "Set() must store a copy")
}
