// Package dataset prepares raw comma-delimited shot records for training:
// it coerces feature columns to numbers, encodes the trailing outcome label
// to a dense class index and rescales every feature into [0,1].
package dataset

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Range holds the observed minimum and maximum of one feature column.
type Range struct {
	Min float64
	Max float64
}

// Stats holds one Range per feature column. It is computed once per run and
// discarded after normalization; unseen future rows get their own stats.
type Stats []Range

// Dataset is an ordered collection of samples. The raw string rows are
// retained as loaded so reports can show unnormalized values next to
// predictions.
type Dataset struct {
	raw      [][]string
	features [][]float64
	labels   []int
	cols     int
}

// Parse validates the shape of the raw rows and wraps them in a Dataset.
// Every row must have the same column count as the first; the last column is
// the label. Feature values stay strings until CoerceFeatures runs.
func Parse(rows [][]string) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, MalformedRowError{Row: 0}
	}
	raw := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != cols {
			return nil, MalformedRowError{Row: i, Got: len(row), Want: cols}
		}
		raw[i] = make([]string, cols)
		copy(raw[i], row)
	}
	return &Dataset{raw: raw, cols: cols}, nil
}

// CoerceFeatures converts every feature column (all but the last) to
// float64. Cells are trimmed before parsing so padded files load cleanly.
func (d *Dataset) CoerceFeatures() error {
	features := make([][]float64, len(d.raw))
	for i, row := range d.raw {
		features[i] = make([]float64, d.cols-1)
		for j := 0; j < d.cols-1; j++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
			if err != nil {
				return NumericParseError{Row: i, Col: j, Value: row[j]}
			}
			features[i][j] = v
		}
	}
	d.features = features
	return nil
}

// EncodeLabels rewrites the label column as dense integer class indices and
// returns the mapping from original label value to index. Indices are
// assigned in first-seen row order, so identical files always encode
// identically.
func (d *Dataset) EncodeLabels() map[string]int {
	lookup := make(map[string]int)
	d.labels = make([]int, len(d.raw))
	for i, row := range d.raw {
		value := strings.TrimSpace(row[d.cols-1])
		idx, ok := lookup[value]
		if !ok {
			idx = len(lookup)
			lookup[value] = idx
		}
		d.labels[i] = idx
	}
	return lookup
}

// MinMax returns the observed (min, max) of every feature column.
func (d *Dataset) MinMax() (Stats, error) {
	if len(d.raw) == 0 {
		return nil, ErrEmptyDataset
	}
	if d.features == nil {
		return nil, ErrNotCoerced
	}
	stats := make(Stats, d.cols-1)
	column := make([]float64, len(d.features))
	for j := range stats {
		for i, row := range d.features {
			column[i] = row[j]
		}
		stats[j] = Range{Min: floats.Min(column), Max: floats.Max(column)}
	}
	return stats, nil
}

// Normalize rescales every feature value to (v - min) / (max - min). A
// column with zero variance (max == min) carries no signal and is mapped to
// 0.0 rather than dividing by zero.
func (d *Dataset) Normalize(stats Stats) {
	for _, row := range d.features {
		for j, v := range row {
			spread := stats[j].Max - stats[j].Min
			if spread == 0 {
				row[j] = 0.0
				continue
			}
			row[j] = (v - stats[j].Min) / spread
		}
	}
}

// Prepare runs the full preparation pipeline: parse, coerce, encode labels,
// compute column stats and normalize. The stats are returned for reporting;
// they are not retained by the Dataset.
func Prepare(rows [][]string) (*Dataset, map[string]int, Stats, error) {
	d, err := Parse(rows)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "parsing rows")
	}
	if err := d.CoerceFeatures(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "coercing features")
	}
	lookup := d.EncodeLabels()
	stats, err := d.MinMax()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "computing column stats")
	}
	d.Normalize(stats)
	return d, lookup, stats, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.raw) }

// FeatureCount returns the number of feature columns (label excluded).
func (d *Dataset) FeatureCount() int { return d.cols - 1 }

// ClassCount returns the number of distinct encoded labels. It is zero
// before EncodeLabels runs.
func (d *Dataset) ClassCount() int {
	max := -1
	for _, l := range d.labels {
		if l > max {
			max = l
		}
	}
	return max + 1
}

// Inputs returns the coerced (and, after Normalize, rescaled) feature rows.
// The slices are the Dataset's own backing storage.
func (d *Dataset) Inputs() [][]float64 { return d.features }

// Labels returns the encoded class index of every row, in row order.
func (d *Dataset) Labels() []int { return d.labels }

// Raw returns row i exactly as it was loaded.
func (d *Dataset) Raw(i int) []string { return d.raw[i] }
