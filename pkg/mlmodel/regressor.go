package mlmodel

import (
	"math/rand"
	"sort"
)

const defaultNeighbors = 10

// KNNRegressor predicts the mean target of the k nearest training rows in
// standardized feature space.
type KNNRegressor struct {
	dim     int
	k       int
	scaler  StandardScaler
	rows    [][]float64
	targets []float64
}

// NewSyntheticRegressor fits a KNNRegressor on synthetic random data:
// standard-normal features with targets uniform in [targetLo, targetHi].
// Predictions therefore land inside the target range regardless of input.
func NewSyntheticRegressor(featureDim int, targetLo, targetHi float64, rng *rand.Rand) *KNNRegressor {
	r := &KNNRegressor{
		dim:     featureDim,
		k:       defaultNeighbors,
		rows:    make([][]float64, trainingSamples),
		targets: make([]float64, trainingSamples),
	}

	raw := make([][]float64, trainingSamples)
	for i := range raw {
		row := make([]float64, featureDim)
		for j := range row {
			row[j] = rng.NormFloat64()
		}
		raw[i] = row
		r.targets[i] = targetLo + rng.Float64()*(targetHi-targetLo)
	}

	r.scaler.Fit(raw)
	for i, row := range raw {
		r.rows[i] = r.scaler.Transform(row)
	}
	return r
}

func (r *KNNRegressor) Predict(features []float64) (float64, error) {
	if len(features) != r.dim {
		return 0, &ErrDimensionMismatch{Got: len(features), Want: r.dim}
	}

	scaled := r.scaler.Transform(features)

	type neighbor struct {
		dist   float64
		target float64
	}
	neighbors := make([]neighbor, len(r.rows))
	for i, row := range r.rows {
		neighbors[i] = neighbor{dist: distance(scaled, row), target: r.targets[i]}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].dist < neighbors[j].dist
	})

	k := r.k
	if k > len(neighbors) {
		k = len(neighbors)
	}
	sum := 0.0
	for _, n := range neighbors[:k] {
		sum += n.target
	}
	return sum / float64(k), nil
}
