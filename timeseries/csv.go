package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Options holds options for CSV loading.
type Options struct {
	DateColumn  string // Column name for dates (default: "date")
	ValueColumn string // Column name for values (default: "value")
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
}

// DefaultOptions returns default options for CSV loading.
func DefaultOptions() *Options {
	return &Options{
		DateColumn:  "date",
		ValueColumn: "value",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// Load loads a table from a CSV file. Any unreadable or malformed input is
// an error; no rows are skipped.
func Load(filename string, opts *Options) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t, err := FromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// FromReader loads a table from an io.Reader.
func FromReader(r io.Reader, opts *Options) (*Table, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	dateIdx, valueIdx := 0, 1
	row := 0
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		row++

		dateIdx, valueIdx = -1, -1
		for i, h := range header {
			switch strings.TrimSpace(strings.Trim(h, "\"")) {
			case opts.DateColumn:
				dateIdx = i
			case opts.ValueColumn:
				valueIdx = i
			}
		}
		if dateIdx == -1 {
			return nil, fmt.Errorf("date column %q not found", opts.DateColumn)
		}
		if valueIdx == -1 {
			return nil, fmt.Errorf("value column %q not found", opts.ValueColumn)
		}
	}

	t := &Table{Name: opts.ValueColumn}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		if dateIdx >= len(record) || valueIdx >= len(record) {
			return nil, fmt.Errorf("row %d: expected at least %d fields, got %d",
				row, max(dateIdx, valueIdx)+1, len(record))
		}

		dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
		date, err := time.Parse(opts.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse date %q: %w", row, dateStr, err)
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		value, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse value %q: %w", row, valStr, err)
		}

		t.Dates = append(t.Dates, date)
		t.Values = append(t.Values, value)
	}

	if t.Len() == 0 {
		return nil, errors.New("no data rows found in CSV")
	}
	return t, nil
}
