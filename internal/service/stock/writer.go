package stock

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

// Inserter is the slice of the store the writer depends on.
type Inserter interface {
	InsertStock(ctx context.Context, unit models.StockUnit) (models.StockUnit, error)
	InsertStockBatch(ctx context.Context, units []models.StockUnit) ([]models.StockUnit, error)
}

// Writer persists normalized stock unit candidates. In the default mode every
// candidate is inserted concurrently and independently: a failed insert does
// not roll back the ones that succeeded. The atomic mode trades that for an
// all-or-none batch insert.
//
// Duplicate imeiNo values are not rejected here; uniqueness of the serial is a
// domain expectation left to the operator.
type Writer struct {
	store  Inserter
	atomic bool
	logger *zap.Logger
}

// NewWriter constructs a writer over the given store.
func NewWriter(store Inserter, atomic bool, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{store: store, atomic: atomic, logger: logger}
}

// WriteAll persists the candidates and returns the created units in input
// order, each carrying its store-assigned identifier.
func (w *Writer) WriteAll(ctx context.Context, units []models.StockUnit) ([]models.StockUnit, error) {
	if len(units) == 0 {
		return []models.StockUnit{}, nil
	}

	if w.atomic {
		return w.store.InsertStockBatch(ctx, units)
	}

	created := make([]models.StockUnit, len(units))
	errs := make([]error, len(units))

	var wg sync.WaitGroup
	for idx := range units {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			created[idx], errs[idx] = w.store.InsertStock(ctx, units[idx])
		}(idx)
	}
	wg.Wait()

	for idx, err := range errs {
		if err != nil {
			w.logger.Error("stock insert failed", zap.Int("index", idx), zap.Error(err))
			return nil, fmt.Errorf("insert stock unit %d of %d: %w", idx+1, len(units), err)
		}
	}

	return created, nil
}
