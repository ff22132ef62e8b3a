package dataset

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable indicates a source file is missing or unreadable
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrSchemaMismatch indicates the two sources do not share the same columns
var ErrSchemaMismatch = errors.New("schema mismatch")

// MalformedRecordError reports a row with the wrong field count or a
// non-numeric value in a numeric column
type MalformedRecordError struct {
	Source string // path or label of the offending source
	Row    int    // 1-based data row index within the source
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record in %s at row %d: %s", e.Source, e.Row, e.Reason)
}
