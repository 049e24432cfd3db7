package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ghssrc/survey-viewer/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadTable_DropsTimestamp(t *testing.T) {
	path := writeFile(t, "data.csv",
		"Timestamp,RoomDecor,RoomLearn\n"+
			"2024/01/01 10:00,6,8\n"+
			"2024/01/01 10:05,7,9\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	expectedCols := []string{"RoomDecor", "RoomLearn"}
	if !reflect.DeepEqual(table.Columns, expectedCols) {
		t.Errorf("Columns = %v, expected %v", table.Columns, expectedCols)
	}

	expectedRows := [][]string{{"6", "8"}, {"7", "9"}}
	if !reflect.DeepEqual(table.Rows, expectedRows) {
		t.Errorf("Rows = %v, expected %v", table.Rows, expectedRows)
	}
}

func TestLoadTable_NoTimestamp(t *testing.T) {
	path := writeFile(t, "data.csv", "RoomDecor,RoomLearn,Comment\n6,8,\"hello, world\"\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if len(table.Columns) != 3 {
		t.Errorf("Expected 3 columns, got %d", len(table.Columns))
	}
	if table.Cell(0, 2) != "hello, world" {
		t.Errorf("Quoted cell = %q, expected %q", table.Cell(0, 2), "hello, world")
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestReadTable_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmpty},
		{"ragged", "a,b\n1,2,3\n", ErrRaggedRow},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(test.input))
			if !errors.Is(err, test.want) {
				t.Errorf("ReadTable(%q) error = %v, expected %v", test.input, err, test.want)
			}
		})
	}
}

func TestReadTable_MalformedQuote(t *testing.T) {
	_, err := ReadTable(strings.NewReader("a,b\n\"1,2\n"))
	if err == nil {
		t.Error("Expected error for unterminated quote")
	}
}

func TestReadTable_PadsShortRows(t *testing.T) {
	table, err := ReadTable(strings.NewReader("a,b,c\n1\n1,2,3\n"))
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if !reflect.DeepEqual(table.Rows[0], []string{"1", "", ""}) {
		t.Errorf("Short row = %v, expected padding", table.Rows[0])
	}
}

func TestReadTable_StripsBOM(t *testing.T) {
	table, err := ReadTable(strings.NewReader("\ufeffTimestamp,RoomDecor\nx,1\n"))
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if table.Columns[0] != TimestampColumn {
		t.Errorf("First column = %q, expected %q", table.Columns[0], TimestampColumn)
	}
}

func TestDropColumn_Property(t *testing.T) {
	inputs := []string{
		"Timestamp,a,b\n1,2,3\n4,5,6\n7,8,9\n",
		"a,Timestamp\n1,2\n",
		"a,b\n1,2\n3,4\n",
		"Timestamp\n1\n2\n",
	}

	for _, input := range inputs {
		raw, err := ReadTable(strings.NewReader(input))
		if err != nil {
			t.Fatalf("ReadTable(%q) failed: %v", input, err)
		}
		dropped := DropColumn(raw, TimestampColumn)

		expectedCols := 0
		for _, c := range raw.Columns {
			if c != TimestampColumn {
				expectedCols++
			}
		}
		if len(dropped.Columns) != expectedCols {
			t.Errorf("%q: %d columns after drop, expected %d", input, len(dropped.Columns), expectedCols)
		}
		if dropped.ColumnIndex(TimestampColumn) >= 0 {
			t.Errorf("%q: Timestamp column still present", input)
		}
		if dropped.RowCount() != raw.RowCount() {
			t.Errorf("%q: %d rows after drop, expected %d", input, dropped.RowCount(), raw.RowCount())
		}
		for i, row := range dropped.Rows {
			if len(row) != len(dropped.Columns) {
				t.Errorf("%q: row %d has %d cells, expected %d", input, i, len(row), len(dropped.Columns))
			}
		}
	}
}

func TestDropColumn_DoesNotMutateInput(t *testing.T) {
	raw := &model.Table{
		Columns: []string{"Timestamp", "a"},
		Rows:    [][]string{{"t", "1"}},
	}
	DropColumn(raw, TimestampColumn)

	if len(raw.Columns) != 2 || raw.Rows[0][0] != "t" {
		t.Errorf("Input table was modified: %+v", raw)
	}
}
