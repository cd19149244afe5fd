package stock

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

// headerOffset converts a zero-based data row index into the human-meaningful
// row number of the file, accounting for the header line.
const headerOffset = 2

// Importer normalizes parsed spreadsheet rows into stock unit candidates.
type Importer struct {
	resolver ReferenceResolver
	logger   *zap.Logger
}

// NewImporter constructs an importer over the given resolver.
func NewImporter(resolver ReferenceResolver, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{resolver: resolver, logger: logger}
}

// ImportRows walks rows strictly in file order and stops at the first row
// whose resolution or coercion fails, returning an ImportRowError naming that
// row. Within a single row the reference lookups run concurrently. When every
// row normalizes, the full ordered candidate slice is returned and nothing has
// been persisted yet.
func (i *Importer) ImportRows(ctx context.Context, rows []models.ImportRow) ([]models.StockUnit, error) {
	units := make([]models.StockUnit, 0, len(rows))

	for idx, row := range rows {
		unit, err := i.buildUnit(ctx, idx, row)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	i.logger.Debug("import rows normalized", zap.Int("count", len(units)))
	return units, nil
}

func (i *Importer) buildUnit(ctx context.Context, idx int, row models.ImportRow) (models.StockUnit, error) {
	refs, missing, err := resolveRow(ctx, i.resolver, row)
	if err != nil {
		return models.StockUnit{}, fmt.Errorf("resolve row %d: %w", idx+headerOffset, err)
	}

	fields := missing

	totalAmount, ok := parseAmount(row.TotalAmount)
	if !ok {
		fields = append(fields, "totalAmount")
	}

	paidToCustomer, ok := parseAmount(row.PaidToCustomer)
	if !ok {
		fields = append(fields, "paidToCustomer")
	}

	paymentAmount, ok := parseAmount(row.PaymentAmount)
	if !ok {
		fields = append(fields, "paymentAmount")
	}

	if len(fields) > 0 {
		return models.StockUnit{}, &ImportRowError{Row: idx + headerOffset, Fields: fields, Data: row}
	}

	return models.StockUnit{
		Organization:    refs.Organization,
		Branch:          refs.Branch,
		Customer:        refs.Customer,
		CustomerPhone:   row.CustomerPhone,
		Category:        refs.Category,
		Model:           refs.Model,
		Device:          refs.Device,
		Capacity:        refs.Capacity,
		Color:           refs.Color,
		IMEINo:          row.IMEINo,
		SrNo:            row.SrNo,
		TotalAmount:     totalAmount,
		PaidToCustomer:  paidToCustomer,
		RemainingAmount: parseAmountOrZero(row.RemainingAmount),
		Payment: []models.PaymentAllocation{
			{Account: refs.Account, Amount: paymentAmount},
		},
	}, nil
}
