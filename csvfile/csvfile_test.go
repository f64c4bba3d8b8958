package csvfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTestCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestMergeDeduplicatesRows(t *testing.T) {
	a := &Table{
		Header: []string{"id", "name"},
		Rows:   [][]string{{"1", "alpha"}, {"2", "beta"}},
	}
	b := &Table{
		Header: []string{"id", "name"},
		Rows:   [][]string{{"2", "beta"}, {"3", "gamma"}},
	}

	merged := Merge(a, b)
	if !reflect.DeepEqual(merged.Header, a.Header) {
		t.Errorf("header = %v, want %v", merged.Header, a.Header)
	}
	want := [][]string{{"1", "alpha"}, {"2", "beta"}, {"3", "gamma"}}
	if !reflect.DeepEqual(merged.Rows, want) {
		t.Errorf("rows = %v, want %v", merged.Rows, want)
	}
}

func TestMergeFirstHeaderWins(t *testing.T) {
	a := &Table{Header: []string{"id", "name"}, Rows: [][]string{{"1", "x"}}}
	b := &Table{Header: []string{"ID", "Name"}, Rows: [][]string{{"2", "y"}}}

	merged := Merge(a, b)
	if !reflect.DeepEqual(merged.Header, []string{"id", "name"}) {
		t.Errorf("header = %v, want first file's header", merged.Header)
	}
	if len(merged.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(merged.Rows))
	}
}

func TestSplitThenMergeRoundTrips(t *testing.T) {
	orig := &Table{Header: []string{"id"}}
	for i := 0; i < 25; i++ {
		orig.Rows = append(orig.Rows, []string{string(rune('a' + i))})
	}

	chunks := Split(orig, 10)
	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want 3", len(chunks))
	}
	if len(chunks[0].Rows) != 10 || len(chunks[2].Rows) != 5 {
		t.Errorf("chunk sizes = %d,%d,%d, want 10,10,5",
			len(chunks[0].Rows), len(chunks[1].Rows), len(chunks[2].Rows))
	}

	merged := Merge(chunks...)
	if !reflect.DeepEqual(merged.Rows, orig.Rows) {
		t.Errorf("merged rows do not match original order")
	}
}

func TestTrimColumns(t *testing.T) {
	tab := &Table{
		Header: []string{"Name", "Street", "City", "State", "Zip"},
		Rows: [][]string{
			{"Acme Meats", "1 Main St", "Springfield", "IL", "62701"},
		},
	}

	trimmed, err := TrimColumns(tab, []string{"Name", "City"})
	if err != nil {
		t.Fatalf("TrimColumns returned error: %v", err)
	}
	if !reflect.DeepEqual(trimmed.Header, []string{"Name", "City"}) {
		t.Errorf("header = %v", trimmed.Header)
	}
	if !reflect.DeepEqual(trimmed.Rows[0], []string{"Acme Meats", "Springfield"}) {
		t.Errorf("row = %v", trimmed.Rows[0])
	}
}

func TestTrimColumnsReportsAllMissing(t *testing.T) {
	tab := &Table{Header: []string{"a"}}
	_, err := TrimColumns(tab, []string{"a", "b", "c"})
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	for _, name := range []string{"b", "c"} {
		if !containsString(err.Error(), name) {
			t.Errorf("error %q does not mention missing column %q", err, name)
		}
	}
}

func containsString(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

func TestRenameColumn(t *testing.T) {
	tab := &Table{Header: []string{"activities", "name"}}
	if !tab.RenameColumn("activities", "type") {
		t.Fatal("RenameColumn reported column not found")
	}
	if tab.Header[0] != "type" {
		t.Errorf("header[0] = %q, want \"type\"", tab.Header[0])
	}
	if tab.RenameColumn("missing", "x") {
		t.Error("RenameColumn found a column that does not exist")
	}
}

func TestRewriteInPlaceCreatesBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeTestCSV(t, dir, "data.csv", "activities,name\nfarming,Acme\n")

	err := RewriteInPlace(path, func(tab *Table) error {
		tab.RenameColumn("activities", "type")
		return nil
	})
	if err != nil {
		t.Fatalf("RewriteInPlace: %v", err)
	}

	backup, err := os.ReadFile(path + ".backup")
	if err != nil {
		t.Fatalf("backup not created: %v", err)
	}
	if string(backup) != "activities,name\nfarming,Acme\n" {
		t.Errorf("backup content = %q", backup)
	}

	rewritten, err := ReadFile(path)
	if err != nil {
		t.Fatalf("reading rewritten file: %v", err)
	}
	if rewritten.Header[0] != "type" {
		t.Errorf("rewritten header = %v", rewritten.Header)
	}
}

func TestMergeFilesSkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	good := writeTestCSV(t, dir, "good.csv", "id,name\n1,alpha\n")

	merged, err := MergeFiles([]string{filepath.Join(dir, "missing.csv"), good})
	if err != nil {
		t.Fatalf("MergeFiles: %v", err)
	}
	if len(merged.Rows) != 1 {
		t.Errorf("rows = %d, want 1", len(merged.Rows))
	}

	if _, err := MergeFiles([]string{filepath.Join(dir, "missing.csv")}); err == nil {
		t.Error("expected error when no input is readable")
	}
}
