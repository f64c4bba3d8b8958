// Package csvfile holds the schema-agnostic CSV table utilities shared by
// the data-preparation commands: merge, split, column projection and
// in-place rewrites. Rows are kept as raw string slices; inputs are assumed
// schema-identical and no column-union logic is attempted.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Table is a CSV file in memory: one header row plus data rows in file
// order.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadFile loads a whole CSV file. Ragged rows are tolerated.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// WriteFile writes the table out, creating the parent directory if needed.
func WriteFile(path string, t *Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

// Merge concatenates same-schema tables. The first table's header wins;
// duplicate rows are dropped, keeping first occurrence order.
func Merge(tables ...*Table) *Table {
	merged := &Table{}
	seen := make(map[string]bool)
	for _, t := range tables {
		if t == nil || len(t.Header) == 0 {
			continue
		}
		if merged.Header == nil {
			merged.Header = t.Header
		}
		for _, row := range t.Rows {
			key := strings.Join(row, "\x1f")
			if seen[key] {
				continue
			}
			seen[key] = true
			merged.Rows = append(merged.Rows, row)
		}
	}
	return merged
}

// MergeFiles reads and merges every path in order. A file that cannot be
// read is logged and skipped; an error is returned only when nothing could
// be read at all.
func MergeFiles(paths []string) (*Table, error) {
	var tables []*Table
	for _, path := range paths {
		t, err := ReadFile(path)
		if err != nil {
			log.Printf("WARN csvfile: skipping %s: %v", path, err)
			continue
		}
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("none of the %d input files could be read", len(paths))
	}
	return Merge(tables...), nil
}

// Split partitions the table into chunks of at most chunkSize rows, each
// carrying a copy of the header.
func Split(t *Table, chunkSize int) []*Table {
	if chunkSize <= 0 || len(t.Rows) == 0 {
		return []*Table{{Header: t.Header, Rows: t.Rows}}
	}
	var chunks []*Table
	for start := 0; start < len(t.Rows); start += chunkSize {
		end := start + chunkSize
		if end > len(t.Rows) {
			end = len(t.Rows)
		}
		chunks = append(chunks, &Table{Header: t.Header, Rows: t.Rows[start:end]})
	}
	return chunks
}

// SplitToDir splits the table and writes chunk files named
// "<prefix>_1.csv", "<prefix>_2.csv", ... under dir. It returns the paths
// written.
func SplitToDir(t *Table, dir, prefix string, chunkSize int) ([]string, error) {
	chunks := Split(t, chunkSize)
	paths := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.csv", prefix, i+1))
		if err := WriteFile(path, chunk); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ColumnIndex returns the position of name in the header, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the value of the named column in row, or "" when the
// column is missing or the row is too short.
func (t *Table) Column(row []string, name string) string {
	idx := t.ColumnIndex(name)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// TrimColumns projects the table down to the keep list, in keep order.
// Every requested column must exist; missing ones are reported together so
// the operator can fix the keep list in one pass.
func TrimColumns(t *Table, keep []string) (*Table, error) {
	var missing []string
	indices := make([]int, 0, len(keep))
	for _, name := range keep {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			missing = append(missing, name)
			continue
		}
		indices = append(indices, idx)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required columns not found: %s", strings.Join(missing, ", "))
	}

	out := &Table{Header: append([]string(nil), keep...)}
	for _, row := range t.Rows {
		trimmed := make([]string, len(indices))
		for i, idx := range indices {
			if idx < len(row) {
				trimmed[i] = row[idx]
			}
		}
		out.Rows = append(out.Rows, trimmed)
	}
	return out, nil
}

// RenameColumn renames a header in place and reports whether it was found.
func (t *Table) RenameColumn(from, to string) bool {
	idx := t.ColumnIndex(from)
	if idx < 0 {
		return false
	}
	t.Header[idx] = to
	return true
}

// RewriteInPlace loads path, applies fn, and writes the result back over
// the original. The original is first renamed to path+".backup".
func RewriteInPlace(path string, fn func(*Table) error) error {
	t, err := ReadFile(path)
	if err != nil {
		return err
	}
	if err := fn(t); err != nil {
		return err
	}

	backup := path + ".backup"
	if err := os.Rename(path, backup); err != nil {
		return fmt.Errorf("failed to create backup %s: %w", backup, err)
	}
	log.Printf("csvfile: created backup %s", backup)

	if err := WriteFile(path, t); err != nil {
		return fmt.Errorf("failed to rewrite %s (original preserved at %s): %w", path, backup, err)
	}
	return nil
}
