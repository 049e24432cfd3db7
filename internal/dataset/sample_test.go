package dataset

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestExtractSample_Scenario(t *testing.T) {
	path := writeFile(t, "data.csv",
		"Timestamp,RoomLearn,RoomDecor\n"+
			"t1,8,6\n"+
			"t2,9,7\n"+
			"t3,x,5\n"+
			"t4,7,8\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if table.RowCount() != 4 {
		t.Errorf("Table view should show 4 rows, got %d", table.RowCount())
	}

	sample, err := ExtractSample(table, LearnColumn, DecorColumn)
	if err != nil {
		t.Fatalf("ExtractSample failed: %v", err)
	}

	if !reflect.DeepEqual(sample.X, []float64{8, 9, 7}) {
		t.Errorf("X = %v, expected [8 9 7]", sample.X)
	}
	if !reflect.DeepEqual(sample.Y, []float64{6, 7, 8}) {
		t.Errorf("Y = %v, expected [6 7 8]", sample.Y)
	}
	if sample.Excluded != 1 || sample.Total != 4 {
		t.Errorf("Excluded/Total = %d/%d, expected 1/4", sample.Excluded, sample.Total)
	}
}

func TestExtractSample_CountsAddUp(t *testing.T) {
	inputs := []string{
		"RoomLearn,RoomDecor\n1,2\n,3\n4,\nNaN,1\ninf,2\n 5 , 6 \n",
		"RoomLearn,RoomDecor\n",
		"RoomLearn,RoomDecor\na,b\nc,d\n",
		"RoomDecor,RoomLearn,Other\n1.5,2.5,z\n3e1,-4,z\n",
	}

	for _, input := range inputs {
		table, err := ReadTable(strings.NewReader(input))
		if err != nil {
			t.Fatalf("ReadTable(%q) failed: %v", input, err)
		}
		sample, err := ExtractSample(table, LearnColumn, DecorColumn)
		if err != nil {
			t.Fatalf("ExtractSample(%q) failed: %v", input, err)
		}

		if sample.Len()+sample.Excluded != sample.Total {
			t.Errorf("%q: included %d + excluded %d != total %d", input, sample.Len(), sample.Excluded, sample.Total)
		}
		if sample.Total != table.RowCount() {
			t.Errorf("%q: total %d != rows %d", input, sample.Total, table.RowCount())
		}
		if len(sample.X) != len(sample.Y) {
			t.Errorf("%q: series lengths differ: %d vs %d", input, len(sample.X), len(sample.Y))
		}
	}
}

func TestExtractSample_MissingColumn(t *testing.T) {
	table, err := ReadTable(strings.NewReader("RoomLearn\n1\n"))
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	_, err = ExtractSample(table, LearnColumn, DecorColumn)
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("Expected ErrMissingColumn, got %v", err)
	}
}

func TestToNumeric(t *testing.T) {
	tests := []struct {
		input string
		value float64
		ok    bool
	}{
		{"8", 8, true},
		{" 7.5 ", 7.5, true},
		{"-3", -3, true},
		{"1e2", 100, true},
		{"", 0, false},
		{"   ", 0, false},
		{"x", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"-Inf", 0, false},
		{"7 out of 10", 0, false},
		{"0x1p3", 0, false},
		{"-0X1P3", 0, false},
		{"1_000", 0, false},
		{"infinity", 0, false},
	}

	for _, test := range tests {
		value, ok := ToNumeric(test.input)
		if ok != test.ok || value != test.value {
			t.Errorf("ToNumeric(%q) = (%v, %v), expected (%v, %v)", test.input, value, ok, test.value, test.ok)
		}
	}
}

func TestLoadSample(t *testing.T) {
	path := writeFile(t, "data.csv", "RoomLearn,RoomDecor\n1,2\n2,4\n3,6\n")

	sample, err := LoadSample(path)
	if err != nil {
		t.Fatalf("LoadSample failed: %v", err)
	}
	if sample.Len() != 3 {
		t.Errorf("Expected 3 pairs, got %d", sample.Len())
	}
	if sample.XName != LearnColumn || sample.YName != DecorColumn {
		t.Errorf("Names = %s/%s, expected %s/%s", sample.XName, sample.YName, LearnColumn, DecorColumn)
	}
}
