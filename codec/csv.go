package codec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// MarshalCSV serializes records as CSV text. Records use "\n" line
// termination to avoid blank lines on round-trip.
func MarshalCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("codec: marshal csv: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalCSV parses CSV text into records. Rows may have varying field
// counts; no header handling is applied.
func UnmarshalCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("codec: unmarshal csv: %w", err)
	}
	return records, nil
}
