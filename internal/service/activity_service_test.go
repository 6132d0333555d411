package service

import (
	"context"
	"testing"

	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sensorRequest builds a request whose accelerometer magnitude equals the
// given per-sample values (signal on X, zeros on Y and Z).
func sensorRequest(xValues []float64, durationSeconds int) dto.ActivityDetectRequest {
	zeros := make([]float64, len(xValues))
	return dto.ActivityDetectRequest{
		Data: dto.SensorData{
			AccelerometerX: xValues,
			AccelerometerY: zeros,
			AccelerometerZ: zeros,
		},
		DurationSeconds: durationSeconds,
	}
}

func repeated(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func alternating(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = a
		} else {
			out[i] = b
		}
	}
	return out
}

func TestDetectActivity_InsufficientSamples(t *testing.T) {
	svc := NewActivityService(nil, nopLogger{})

	request := sensorRequest(repeated(0.1, 5), 60)
	_, err := svc.DetectActivity(context.Background(), &request)

	require.Error(t, err)
	var validationErr *serverutils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestDetectActivity_HeuristicLadder(t *testing.T) {
	svc := NewActivityService(nil, nopLogger{})

	tests := []struct {
		name          string
		xValues       []float64
		wantActivity  string
		wantConf      float64
		wantIntensity string
	}{
		{
			name:          "high magnitude and variance maps to running",
			xValues:       alternating(0, 1.2, 20),
			wantActivity:  "running",
			wantConf:      0.85,
			wantIntensity: "high",
		},
		{
			name:          "moderate magnitude maps to walking",
			xValues:       alternating(0.2, 0.5, 20),
			wantActivity:  "walking",
			wantConf:      0.80,
			wantIntensity: "moderate",
		},
		{
			name:          "near-zero signal maps to sitting",
			xValues:       repeated(0, 20),
			wantActivity:  "sitting",
			wantConf:      0.90,
			wantIntensity: "low",
		},
		{
			name:          "steady low signal maps to standing",
			xValues:       repeated(0.15, 20),
			wantActivity:  "standing",
			wantConf:      0.75,
			wantIntensity: "low",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			request := sensorRequest(tc.xValues, 60)
			result, err := svc.DetectActivity(context.Background(), &request)

			require.NoError(t, err)
			assert.Equal(t, tc.wantActivity, result.PredictedActivity)
			assert.Equal(t, tc.wantConf, result.Confidence)
			assert.Equal(t, tc.wantIntensity, result.IntensityLevel)
			assert.Equal(t, 26, result.FeaturesExtracted)
		})
	}
}

func TestDetectActivity_CalorieEstimate(t *testing.T) {
	svc := NewActivityService(nil, nopLogger{})

	// running at high intensity for one minute: 8.0 * 1.3 * 1 = 10.4
	request := sensorRequest(alternating(0, 1.2, 20), 60)
	result, err := svc.DetectActivity(context.Background(), &request)
	require.NoError(t, err)
	assert.Equal(t, "running", result.PredictedActivity)
	assert.Equal(t, 10.4, result.EstimatedCalories)

	// sitting at low intensity for one minute: 1.0 * 0.7 * 1 = 0.7
	request = sensorRequest(repeated(0, 20), 60)
	result, err = svc.DetectActivity(context.Background(), &request)
	require.NoError(t, err)
	assert.Equal(t, "sitting", result.PredictedActivity)
	assert.Equal(t, 0.7, result.EstimatedCalories)
}

func TestDetectActivityBatch_EmbedsPerItemErrors(t *testing.T) {
	svc := NewActivityService(nil, nopLogger{})

	requests := []dto.ActivityDetectRequest{
		sensorRequest(repeated(0, 20), 60),
		sensorRequest(repeated(0.1, 3), 60), // too few samples
		sensorRequest(repeated(0.15, 20), 60),
	}

	batch, err := svc.DetectActivityBatch(context.Background(), requests)
	require.NoError(t, err)

	assert.Equal(t, 3, batch.TotalSamples)
	require.Len(t, batch.Results, 3)

	assert.NotNil(t, batch.Results[0].Result)
	assert.Empty(t, batch.Results[0].Error)

	assert.Nil(t, batch.Results[1].Result)
	assert.NotEmpty(t, batch.Results[1].Error)
	assert.Equal(t, 1, batch.Results[1].SampleId)

	assert.NotNil(t, batch.Results[2].Result)
}

func TestGetSupportedActivities(t *testing.T) {
	svc := NewActivityService(nil, nopLogger{})

	result, err := svc.GetSupportedActivities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, result.TotalCount)
	assert.Contains(t, result.Activities, "running")
	assert.Contains(t, result.Categories, "sedentary")
	assert.Equal(t, "required", result.SensorRequirements["accelerometer"])
}
