package main

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
)

// readRows loads a comma-delimited shot file as raw string rows. Blank
// lines are skipped; column-count validation happens later in dataset
// preparation, so ragged files are accepted here and rejected with row
// context there.
func readRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening shot file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		if len(record) == 0 {
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}
