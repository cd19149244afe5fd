// Package excel turns an uploaded workbook into flat import rows. The caller
// owns the file's lifetime: rows are fully extracted into memory so the file
// can be deleted as soon as Parse returns.
package excel

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

// ErrNoRows indicates the workbook has no data rows below the header.
var ErrNoRows = errors.New("workbook contains no data rows")

// Parse reads the workbook at path and returns its data rows.
func Parse(path string) ([]models.ImportRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parse(f)
}

// ParseReader reads a workbook from an in-memory stream.
func ParseReader(r io.Reader) ([]models.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parse(f)
}

func parse(f *excelize.File) ([]models.ImportRow, error) {
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	// First row is the header; columns are matched by name so their order in
	// the file does not matter.
	index := make(map[string]int, len(rows[0]))
	for pos, name := range rows[0] {
		index[strings.TrimSpace(name)] = pos
	}

	cell := func(row []string, column string) string {
		pos, ok := index[column]
		if !ok || pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}

	out := make([]models.ImportRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := models.ImportRow{
			OrganizationName: cell(row, "organizationName"),
			BranchName:       cell(row, "branchName"),
			CustomerName:     cell(row, "customerName"),
			CustomerPhone:    cell(row, "customerPhone"),
			CategoryName:     cell(row, "categoryName"),
			ModelName:        cell(row, "modelName"),
			DeviceName:       cell(row, "deviceName"),
			CapacityName:     cell(row, "capacityName"),
			ColorName:        cell(row, "colorName"),
			IMEINo:           cell(row, "imeiNo"),
			SrNo:             cell(row, "srNo"),
			TotalAmount:      cell(row, "totalAmount"),
			PaidToCustomer:   cell(row, "paidToCustomer"),
			RemainingAmount:  cell(row, "remainingAmount"),
			AccountName:      cell(row, "accountName"),
			PaymentAmount:    cell(row, "paymentAmount"),
		}

		if r == (models.ImportRow{}) {
			continue
		}
		out = append(out, r)
	}

	if len(out) == 0 {
		return nil, ErrNoRows
	}

	return out, nil
}
