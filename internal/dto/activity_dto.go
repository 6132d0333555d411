package dto

type SensorData struct {
	AccelerometerX []float64 `json:"accelerometer_x" validate:"required"`
	AccelerometerY []float64 `json:"accelerometer_y" validate:"required"`
	AccelerometerZ []float64 `json:"accelerometer_z" validate:"required"`
	GyroscopeX     []float64 `json:"gyroscope_x,omitempty"`
	GyroscopeY     []float64 `json:"gyroscope_y,omitempty"`
	GyroscopeZ     []float64 `json:"gyroscope_z,omitempty"`
	Timestamp      []float64 `json:"timestamp,omitempty"`
}

type ActivityDetectRequest struct {
	Data            SensorData `json:"data" validate:"required"`
	DurationSeconds int        `json:"duration_seconds" validate:"required,gt=0"`
	UserId          string     `json:"user_id,omitempty"`
}

type ActivityPrediction struct {
	Activity   string  `json:"activity"`
	Confidence float64 `json:"confidence"`
}

type ActivityDetectResponse struct {
	PredictedActivity string               `json:"predicted_activity"`
	Confidence        float64              `json:"confidence"`
	TopPredictions    []ActivityPrediction `json:"top_predictions"`
	DurationSeconds   int                  `json:"duration_seconds"`
	IntensityLevel    string               `json:"intensity_level"`
	EstimatedCalories float64              `json:"estimated_calories"`
	FeaturesExtracted int                  `json:"features_extracted"`
}

// ActivityBatchItem carries either a result or an embedded per-item error.
type ActivityBatchItem struct {
	SampleId int                     `json:"sample_id"`
	Result   *ActivityDetectResponse `json:"result,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

type ActivityBatchResponse struct {
	Results      []ActivityBatchItem `json:"results"`
	TotalSamples int                 `json:"total_samples"`
}

type SupportedActivitiesResponse struct {
	Activities         []string            `json:"activities"`
	TotalCount         int                 `json:"total_count"`
	Categories         map[string][]string `json:"categories"`
	SensorRequirements map[string]string   `json:"sensor_requirements"`
}
