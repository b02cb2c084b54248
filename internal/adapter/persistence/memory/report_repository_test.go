package memory

import (
	"context"
	"testing"
	"time"

	"laporan_zakat/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewReportMemoryRepository(
		entities.DonationReport{ID: 1, OperatorCode: "R001"},
		entities.DonationReport{ID: 2, OperatorCode: "R002"},
	)

	t.Run("next id continues after seed", func(t *testing.T) {
		id, err := repo.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
		_, err = repo.Create(ctx, entities.DonationReport{ID: id, OperatorCode: "R001"})
		require.NoError(t, err)
	})

	t.Run("list by operator", func(t *testing.T) {
		got, err := repo.ListByOperatorCode(ctx, "R001")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})

	t.Run("update unknown returns zero value", func(t *testing.T) {
		got, err := repo.Update(ctx, entities.DonationReport{ID: 99})
		require.NoError(t, err)
		assert.Zero(t, got.ID)
	})

	t.Run("delete does not recycle ids", func(t *testing.T) {
		ok, err := repo.Delete(ctx, 3)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Delete(ctx, 3)
		require.NoError(t, err)
		assert.False(t, ok)

		id, err := repo.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), id)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		got, err := repo.List(ctx)
		require.NoError(t, err)
		got[0].DonorName = "changed"
		again, _ := repo.GetByID(ctx, got[0].ID)
		assert.NotEqual(t, "changed", again.DonorName)
	})
}

func TestOperatorMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOperatorMemoryRepository(entities.Operator{OperatorCode: "R001", Role: entities.RoleStandard})

	got, err := repo.GetByCode(ctx, "R001")
	require.NoError(t, err)
	assert.Equal(t, "R001", got.OperatorCode)

	missing, err := repo.GetByCode(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.OperatorCode)

	_, err = repo.Create(ctx, entities.Operator{OperatorCode: "R009"})
	require.NoError(t, err)
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSessionMemoryRepository(t *testing.T) {
	repo := NewSessionMemoryRepository()
	s := entities.NewSession("tok", entities.Identity{OperatorCode: "R001"}, testNow)
	repo.Save(s)

	got, ok := repo.Get("tok")
	require.True(t, ok)
	assert.Same(t, s, got)

	repo.Delete("tok")
	_, ok = repo.Get("tok")
	assert.False(t, ok)
}

var testNow = time.Date(2024, 4, 8, 10, 0, 0, 0, time.UTC)
