// Package mlmodel provides the stand-in scoring models used while no real
// trained models exist. They are fitted once at process start on synthetic
// random data, which makes their outputs uninformative on purpose: the point
// is to exercise the full prediction path so a real model can be swapped in
// behind the same interfaces without touching call sites.
package mlmodel

import "fmt"

// Prediction is one ranked class with its probability.
type Prediction struct {
	Label       string
	Probability float64
}

// Classifier scores a feature vector against a fixed label set. Results are
// sorted by descending probability.
type Classifier interface {
	PredictProba(features []float64) ([]Prediction, error)
}

// Regressor predicts a scalar from a feature vector.
type Regressor interface {
	Predict(features []float64) (float64, error)
}

// ErrDimensionMismatch reports a feature vector of the wrong length.
type ErrDimensionMismatch struct {
	Got  int
	Want int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("feature vector has %d elements, model expects %d", e.Got, e.Want)
}
