package dataset

import (
	"errors"
	"testing"
)

func prepared(t *testing.T, rows [][]string) (*Dataset, map[string]int, Stats) {
	t.Helper()
	d, lookup, stats, err := Prepare(rows)
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	return d, lookup, stats
}

func TestParseRejectsEmptyInput(t *testing.T) {
	if _, err := Parse(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Parse(nil) error = %v; want ErrEmptyDataset", err)
	}
}

func TestParseRejectsRaggedRows(t *testing.T) {
	rows := [][]string{
		{"1.0", "2.0", "0"},
		{"1.0", "0"},
	}
	_, err := Parse(rows)
	var malformed MalformedRowError
	if !errors.As(err, &malformed) {
		t.Fatalf("Parse() error = %v; want MalformedRowError", err)
	}
	if malformed.Row != 1 || malformed.Got != 2 || malformed.Want != 3 {
		t.Errorf("MalformedRowError = %+v; want row 1, got 2, want 3", malformed)
	}
}

func TestCoerceFeaturesNamesOffendingCell(t *testing.T) {
	rows := [][]string{
		{"1.0", "2.0", "0"},
		{"1.5", "oops", "1"},
	}
	d, err := Parse(rows)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	err = d.CoerceFeatures()
	var parseErr NumericParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("CoerceFeatures() error = %v; want NumericParseError", err)
	}
	if parseErr.Row != 1 || parseErr.Col != 1 || parseErr.Value != "oops" {
		t.Errorf("NumericParseError = %+v; want row 1, col 1, value \"oops\"", parseErr)
	}
}

func TestCoerceFeaturesTrimsWhitespace(t *testing.T) {
	rows := [][]string{{" 1.5 ", "2.0", "0"}}
	d, err := Parse(rows)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if err := d.CoerceFeatures(); err != nil {
		t.Fatalf("CoerceFeatures() error: %v", err)
	}
	if got := d.Inputs()[0][0]; got != 1.5 {
		t.Errorf("Inputs()[0][0] = %v; want 1.5", got)
	}
}

func TestEncodeLabelsFirstSeenOrder(t *testing.T) {
	rows := [][]string{
		{"1.0", "saved"},
		{"2.0", "goal"},
		{"3.0", "saved"},
		{"4.0", "goal"},
	}
	d, err := Parse(rows)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	lookup := d.EncodeLabels()
	if lookup["saved"] != 0 || lookup["goal"] != 1 {
		t.Errorf("lookup = %v; want saved=0, goal=1 in first-seen order", lookup)
	}
	want := []int{0, 1, 0, 1}
	for i, label := range d.Labels() {
		if label != want[i] {
			t.Errorf("Labels()[%d] = %d; want %d", i, label, want[i])
		}
	}
}

func TestEncodeLabelsDenseRange(t *testing.T) {
	rows := [][]string{
		{"1.0", "a"}, {"2.0", "b"}, {"3.0", "c"}, {"4.0", "b"},
	}
	d, err := Parse(rows)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	lookup := d.EncodeLabels()
	if len(lookup) != 3 || d.ClassCount() != 3 {
		t.Fatalf("got %d distinct labels, ClassCount %d; want 3", len(lookup), d.ClassCount())
	}
	seen := make(map[int]bool)
	for _, idx := range lookup {
		if idx < 0 || idx >= 3 {
			t.Errorf("label index %d outside [0,3)", idx)
		}
		if seen[idx] {
			t.Errorf("label index %d assigned twice", idx)
		}
		seen[idx] = true
	}
}

func TestMinMaxOnEmptyDataset(t *testing.T) {
	d := &Dataset{}
	if _, err := d.MinMax(); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("MinMax() error = %v; want ErrEmptyDataset", err)
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	rows := [][]string{
		{"2.0", "10.0", "0"},
		{"4.0", "30.0", "1"},
		{"6.0", "20.0", "0"},
	}
	d, _, stats := prepared(t, rows)

	if stats[0].Min != 2.0 || stats[0].Max != 6.0 {
		t.Errorf("stats[0] = %+v; want min 2, max 6", stats[0])
	}

	inputs := d.Inputs()
	for i, row := range inputs {
		for j, v := range row {
			if v < 0 || v > 1 {
				t.Errorf("inputs[%d][%d] = %v outside [0,1]", i, j, v)
			}
		}
	}
	// Column minimum maps to exactly 0, maximum to exactly 1.
	if inputs[0][0] != 0.0 || inputs[2][0] != 1.0 {
		t.Errorf("column 0 endpoints = %v, %v; want 0 and 1", inputs[0][0], inputs[2][0])
	}
	if inputs[0][1] != 0.0 || inputs[1][1] != 1.0 {
		t.Errorf("column 1 endpoints = %v, %v; want 0 and 1", inputs[0][1], inputs[1][1])
	}
}

func TestNormalizeDegenerateColumn(t *testing.T) {
	rows := [][]string{
		{"5.0", "1.0", "0"},
		{"5.0", "2.0", "1"},
		{"5.0", "3.0", "0"},
	}
	d, _, _ := prepared(t, rows)
	for i, row := range d.Inputs() {
		if row[0] != 0.0 {
			t.Errorf("inputs[%d][0] = %v; want 0.0 for a zero-variance column", i, row[0])
		}
	}
}
