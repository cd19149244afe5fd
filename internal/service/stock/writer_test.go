package stock

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

func TestWriterWriteAll(t *testing.T) {
	ctx := context.Background()

	candidates := func(n int) []models.StockUnit {
		units := make([]models.StockUnit, 0, n)
		for i := 0; i < n; i++ {
			units = append(units, models.StockUnit{IMEINo: fmt.Sprintf("imei-%d", i)})
		}
		return units
	}

	t.Run("persists every candidate and keeps input order", func(t *testing.T) {
		store := newFakeStore()
		writer := NewWriter(store, false, nil)

		created, err := writer.WriteAll(ctx, candidates(5))
		require.NoError(t, err)
		require.Len(t, created, 5)

		for i, unit := range created {
			assert.Equal(t, fmt.Sprintf("imei-%d", i), unit.IMEINo)
			assert.False(t, unit.ID.IsZero())
		}
		assert.Zero(t, store.batches)
	})

	t.Run("a failed insert does not roll back the others", func(t *testing.T) {
		store := newFakeStore()
		store.failIMEI = "imei-2"
		writer := NewWriter(store, false, nil)

		_, err := writer.WriteAll(ctx, candidates(4))
		require.Error(t, err)
		assert.Len(t, store.units, 3, "the independent inserts stay committed")
	})

	t.Run("atomic mode delegates to the batch insert", func(t *testing.T) {
		store := newFakeStore()
		writer := NewWriter(store, true, nil)

		created, err := writer.WriteAll(ctx, candidates(3))
		require.NoError(t, err)
		assert.Len(t, created, 3)
		assert.Equal(t, 1, store.batches)
	})

	t.Run("atomic mode persists nothing when the batch fails", func(t *testing.T) {
		store := newFakeStore()
		store.failIMEI = "imei-1"
		writer := NewWriter(store, true, nil)

		_, err := writer.WriteAll(ctx, candidates(3))
		require.Error(t, err)
		assert.Empty(t, store.units)
	})

	t.Run("empty input writes nothing", func(t *testing.T) {
		store := newFakeStore()
		writer := NewWriter(store, false, nil)

		created, err := writer.WriteAll(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, created)
		assert.Empty(t, store.units)
	})
}
