package stock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

// ErrNotFound indicates the requested stock unit does not exist.
var ErrNotFound = errors.New("stock not found")

// ValidationError reports a structurally invalid request payload. It is
// detected before any persistence happens.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ImportRowError reports the first spreadsheet row that could not be
// normalized: the 1-indexed file row (the header counts as row 1), the
// dimensions whose names matched nothing plus any fields that failed numeric
// coercion, and the raw row so the caller can see exactly what was submitted.
type ImportRowError struct {
	Row    int
	Fields []string
	Data   models.ImportRow
}

func (e *ImportRowError) Error() string {
	return fmt.Sprintf("row %d is missing or invalid: %s", e.Row, strings.Join(e.Fields, ", "))
}
