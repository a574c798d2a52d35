package main

import (
	"strconv"

	"shotnet/neuralnet"
)

// Summary aggregates prediction records and raw shot values into the final
// report figures. All of it is a post-hoc reduction over core output.
type Summary struct {
	TotalShots   int
	Correct      int
	Incorrect    int
	Accuracy     float64
	ErrorRate    float64
	MeanDistance float64
	MeanSpeed    float64
}

// summarize reduces the prediction records, pulling mean distance and speed
// from the first two raw (unnormalized) columns of each shot row.
func summarize(records []neuralnet.PredictionRecord, raw func(i int) []string) Summary {
	s := Summary{TotalShots: len(records)}
	if s.TotalShots == 0 {
		return s
	}
	var totalDistance, totalSpeed float64
	for _, rec := range records {
		if rec.Correct() {
			s.Correct++
		} else {
			s.Incorrect++
		}
		row := raw(rec.Row)
		if d, err := strconv.ParseFloat(row[0], 64); err == nil {
			totalDistance += d
		}
		if v, err := strconv.ParseFloat(row[1], 64); err == nil {
			totalSpeed += v
		}
	}
	n := float64(s.TotalShots)
	s.Accuracy = 100 - float64(s.Incorrect)/n*100
	s.ErrorRate = float64(s.Incorrect) / n * 100
	s.MeanDistance = totalDistance / n
	s.MeanSpeed = totalSpeed / n
	return s
}
