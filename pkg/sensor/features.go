package sensor

import "math"

// Axes holds per-axis sample sequences from a three-axis sensor.
type Axes struct {
	X []float64
	Y []float64
	Z []float64
}

// Window is one request-scoped capture: accelerometer samples, optional
// gyroscope samples and the capture duration.
type Window struct {
	Accelerometer   Axes
	Gyroscope       Axes
	DurationSeconds int
}

// Features is the scalar summary fed to the classifier. Vector layout:
// 12 accelerometer stats (mean/std/max/min per axis), 12 gyroscope stats
// (zeros when absent), then magnitude mean and magnitude std.
type Features struct {
	Vector        []float64
	MagnitudeMean float64
	MagnitudeStd  float64
}

// VectorSize is the fixed feature vector length.
const VectorSize = 26

// Extract computes the feature vector for a sensor window.
func Extract(w Window) Features {
	vector := make([]float64, 0, VectorSize)

	for _, axis := range [][]float64{w.Accelerometer.X, w.Accelerometer.Y, w.Accelerometer.Z} {
		vector = append(vector, axisStats(axis)...)
	}
	for _, axis := range [][]float64{w.Gyroscope.X, w.Gyroscope.Y, w.Gyroscope.Z} {
		vector = append(vector, axisStats(axis)...)
	}

	magMean, magStd := magnitudeStats(w.Accelerometer)
	vector = append(vector, magMean, magStd)

	return Features{
		Vector:        vector,
		MagnitudeMean: magMean,
		MagnitudeStd:  magStd,
	}
}

func axisStats(data []float64) []float64 {
	if len(data) == 0 {
		return []float64{0, 0, 0, 0}
	}
	return []float64{Mean(data), Std(data), Max(data), Min(data)}
}

func magnitudeStats(acc Axes) (float64, float64) {
	n := len(acc.X)
	if n == 0 || len(acc.Y) != n || len(acc.Z) != n {
		return 0, 0
	}

	magnitudes := make([]float64, n)
	for i := 0; i < n; i++ {
		magnitudes[i] = math.Sqrt(acc.X[i]*acc.X[i] + acc.Y[i]*acc.Y[i] + acc.Z[i]*acc.Z[i])
	}
	return Mean(magnitudes), Std(magnitudes)
}

func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Std is the population standard deviation.
func Std(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	mean := Mean(data)
	sumSq := 0.0
	for _, v := range data {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(data)))
}

func Max(data []float64) float64 {
	max := data[0]
	for _, v := range data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func Min(data []float64) float64 {
	min := data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
