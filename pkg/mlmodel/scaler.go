package mlmodel

import "math"

// StandardScaler centers features to zero mean and unit variance, matching
// the preprocessing the training data went through.
type StandardScaler struct {
	means []float64
	stds  []float64
}

// Fit estimates per-feature mean and standard deviation from the rows.
func (s *StandardScaler) Fit(rows [][]float64) {
	if len(rows) == 0 {
		return
	}
	dim := len(rows[0])
	s.means = make([]float64, dim)
	s.stds = make([]float64, dim)

	for j := 0; j < dim; j++ {
		sum := 0.0
		for _, row := range rows {
			sum += row[j]
		}
		s.means[j] = sum / float64(len(rows))
	}
	for j := 0; j < dim; j++ {
		sumSq := 0.0
		for _, row := range rows {
			d := row[j] - s.means[j]
			sumSq += d * d
		}
		std := math.Sqrt(sumSq / float64(len(rows)))
		if std == 0 {
			std = 1
		}
		s.stds[j] = std
	}
}

// Transform returns a standardized copy of the vector.
func (s *StandardScaler) Transform(features []float64) []float64 {
	out := make([]float64, len(features))
	for j, v := range features {
		out[j] = (v - s.means[j]) / s.stds[j]
	}
	return out
}
