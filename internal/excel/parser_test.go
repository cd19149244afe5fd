package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseReader(t *testing.T) {
	header := []interface{}{
		"organizationName", "branchName", "customerName", "customerPhone",
		"categoryName", "modelName", "deviceName", "capacityName", "colorName",
		"imeiNo", "srNo", "totalAmount", "paidToCustomer", "remainingAmount",
		"accountName", "paymentAmount",
	}

	t.Run("maps cells to rows by header name", func(t *testing.T) {
		buf := buildWorkbook(t, [][]interface{}{
			header,
			{"Acme", "Main", "Jane Doe", "555-0101", "Phone", "X12", "Nova", "128GB", "Black",
				"350000000000001", "A1", "900", "700", "200", "Till", "700"},
		})

		rows, err := ParseReader(buf)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		row := rows[0]
		assert.Equal(t, "Acme", row.OrganizationName)
		assert.Equal(t, "Main", row.BranchName)
		assert.Equal(t, "Jane Doe", row.CustomerName)
		assert.Equal(t, "Phone", row.CategoryName)
		assert.Equal(t, "350000000000001", row.IMEINo)
		assert.Equal(t, "900", row.TotalAmount)
		assert.Equal(t, "Till", row.AccountName)
		assert.Equal(t, "700", row.PaymentAmount)
	})

	t.Run("column order in the file does not matter", func(t *testing.T) {
		buf := buildWorkbook(t, [][]interface{}{
			{"imeiNo", "organizationName", "accountName"},
			{"350000000000002", "Acme", "Till"},
		})

		rows, err := ParseReader(buf)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "350000000000002", rows[0].IMEINo)
		assert.Equal(t, "Acme", rows[0].OrganizationName)
		assert.Equal(t, "Till", rows[0].AccountName)
		assert.Empty(t, rows[0].BranchName)
	})

	t.Run("trims cell whitespace", func(t *testing.T) {
		buf := buildWorkbook(t, [][]interface{}{
			{"organizationName ", "imeiNo"},
			{"  Acme ", " 350000000000003"},
		})

		rows, err := ParseReader(buf)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Acme", rows[0].OrganizationName)
		assert.Equal(t, "350000000000003", rows[0].IMEINo)
	})

	t.Run("skips fully blank lines", func(t *testing.T) {
		buf := buildWorkbook(t, [][]interface{}{
			{"organizationName", "imeiNo"},
			{"Acme", "350000000000004"},
			{"", ""},
			{"Acme", "350000000000005"},
		})

		rows, err := ParseReader(buf)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "350000000000004", rows[0].IMEINo)
		assert.Equal(t, "350000000000005", rows[1].IMEINo)
	})

	t.Run("errors when only a header exists", func(t *testing.T) {
		buf := buildWorkbook(t, [][]interface{}{header})

		_, err := ParseReader(buf)
		assert.ErrorIs(t, err, ErrNoRows)
	})

	t.Run("errors on a stream that is not a workbook", func(t *testing.T) {
		_, err := ParseReader(strings.NewReader("definitely not xlsx"))
		assert.Error(t, err)
	})
}
