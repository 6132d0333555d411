package mlmodel

import (
	"math"
	"math/rand"
	"sort"
)

const trainingSamples = 1000

// CentroidClassifier is a nearest-centroid classifier over standardized
// features. Probabilities come from a softmax over negative centroid
// distances, so they always sum to 1 and rank by proximity.
type CentroidClassifier struct {
	classes   []string
	dim       int
	scaler    StandardScaler
	centroids [][]float64
}

// NewSyntheticClassifier fits a CentroidClassifier on synthetic random
// training data: standard-normal features with uniformly random labels.
func NewSyntheticClassifier(classes []string, featureDim int, rng *rand.Rand) *CentroidClassifier {
	rows := make([][]float64, trainingSamples)
	labels := make([]int, trainingSamples)
	for i := range rows {
		row := make([]float64, featureDim)
		for j := range row {
			row[j] = rng.NormFloat64()
		}
		rows[i] = row
		labels[i] = rng.Intn(len(classes))
	}

	c := &CentroidClassifier{
		classes: classes,
		dim:     featureDim,
	}
	c.scaler.Fit(rows)
	c.fit(rows, labels)
	return c
}

func (c *CentroidClassifier) fit(rows [][]float64, labels []int) {
	c.centroids = make([][]float64, len(c.classes))
	counts := make([]int, len(c.classes))
	for i := range c.centroids {
		c.centroids[i] = make([]float64, c.dim)
	}

	for i, row := range rows {
		scaled := c.scaler.Transform(row)
		label := labels[i]
		counts[label]++
		for j, v := range scaled {
			c.centroids[label][j] += v
		}
	}
	for i, count := range counts {
		if count == 0 {
			continue
		}
		for j := range c.centroids[i] {
			c.centroids[i][j] /= float64(count)
		}
	}
}

func (c *CentroidClassifier) PredictProba(features []float64) ([]Prediction, error) {
	if len(features) != c.dim {
		return nil, &ErrDimensionMismatch{Got: len(features), Want: c.dim}
	}

	scaled := c.scaler.Transform(features)

	// Softmax over negative distances, shifted by the max for stability.
	scores := make([]float64, len(c.classes))
	maxScore := math.Inf(-1)
	for i, centroid := range c.centroids {
		scores[i] = -distance(scaled, centroid)
		if scores[i] > maxScore {
			maxScore = scores[i]
		}
	}

	total := 0.0
	for i := range scores {
		scores[i] = math.Exp(scores[i] - maxScore)
		total += scores[i]
	}

	predictions := make([]Prediction, len(c.classes))
	for i, class := range c.classes {
		predictions[i] = Prediction{
			Label:       class,
			Probability: scores[i] / total,
		}
	}
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Probability > predictions[j].Probability
	})
	return predictions, nil
}

func distance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
