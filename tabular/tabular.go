// Package tabular splits delimited GTFS text tables into rows.
//
// There is no quoting or escaping: a field is whatever lies between two
// delimiters. Required columns are declared up front with a Schema, which is
// resolved once per table into fixed offsets before any row is read.
package tabular

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissingColumns is returned when a required header column is absent.
	ErrMissingColumns = errors.New("missing columns")
	// ErrMalformedRow is returned when a row does not have one field per header column.
	ErrMalformedRow = errors.New("malformed row")
	// ErrFieldParse is returned when a numeric field cannot be parsed.
	ErrFieldParse = errors.New("field parse error")
)

// MissingColumnsError lists the full expected column set and which of it is absent.
type MissingColumnsError struct {
	Expected []string
	Missing  []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("invalid input data: expected %s columns, missing %s",
		strings.Join(e.Expected, ", "), strings.Join(e.Missing, ", "))
}

func (e *MissingColumnsError) Is(target error) bool { return target == ErrMissingColumns }

// MalformedRowError reports the 1-based line number of the offending row.
type MalformedRowError struct {
	Line int
	Want int
	Got  int
	Row  string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: data does not have all the columns (want %d, got %d): %q", e.Line, e.Want, e.Got, e.Row)
}

func (e *MalformedRowError) Is(target error) bool { return target == ErrMalformedRow }

// FieldParseError wraps the strconv failure for a column value.
type FieldParseError struct {
	Column string
	Value  string
	Err    error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("column %s: cannot parse %q: %v", e.Column, e.Value, e.Err)
}

func (e *FieldParseError) Is(target error) bool { return target == ErrFieldParse }

func (e *FieldParseError) Unwrap() error { return e.Err }

// Table is a header plus data rows, every row having len(Header) fields.
type Table struct {
	Header []string
	Rows   [][]string
	// Lines holds the source line number of each row, for error messages.
	Lines []int
}

const byteOrderMark = "\ufeff"

// Parse splits raw text into a Table. Empty lines are skipped.
func Parse(raw string, delimiter rune) (*Table, error) {
	lines := strings.Split(raw, "\n")
	sep := string(delimiter)

	t := &Table{}
	headerSeen := false
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if !headerSeen {
			line = strings.TrimPrefix(line, byteOrderMark)
			t.Header = strings.Split(line, sep)
			headerSeen = true
			continue
		}
		if line == "" {
			continue
		}
		row := strings.Split(line, sep)
		if len(row) != len(t.Header) {
			return nil, &MalformedRowError{Line: i + 1, Want: len(t.Header), Got: len(row), Row: line}
		}
		t.Rows = append(t.Rows, row)
		t.Lines = append(t.Lines, i+1)
	}
	return t, nil
}

// Index returns the position of the first column called name, or -1.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Schema is the ordered list of columns a parser requires. Parsers address
// columns by their position in the schema.
type Schema []string

// Columns holds, for each schema position, the offset of that column in the table.
type Columns struct {
	schema  Schema
	offsets []int
}

// Resolve looks every schema column up once. If any is absent the error lists
// the whole expected set.
func (s Schema) Resolve(t *Table) (Columns, error) {
	offsets := make([]int, len(s))
	var missing []string
	for i, name := range s {
		offsets[i] = t.Index(name)
		if offsets[i] < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Columns{}, &MissingColumnsError{Expected: append([]string(nil), s...), Missing: missing}
	}
	return Columns{schema: s, offsets: offsets}, nil
}

// Row is a single data row read through resolved columns.
type Row struct {
	fields []string
	cols   Columns
}

// Row returns the i-th data row bound to cols.
func (t *Table) Row(i int, cols Columns) Row {
	return Row{fields: t.Rows[i], cols: cols}
}

// String returns the raw value of the column at schema position col.
func (r Row) String(col int) string {
	return r.fields[r.cols.offsets[col]]
}

// Int parses the column at schema position col as a base-10 integer.
func (r Row) Int(col int) (int, error) {
	v := r.String(col)
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &FieldParseError{Column: r.cols.schema[col], Value: v, Err: err}
	}
	return n, nil
}

// Float parses the column at schema position col as a float64.
func (r Row) Float(col int) (float64, error) {
	v := r.String(col)
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, &FieldParseError{Column: r.cols.schema[col], Value: v, Err: err}
	}
	return f, nil
}
