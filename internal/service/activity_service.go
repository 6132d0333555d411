package service

import (
	"context"
	"math"

	"healthsphere-ml-be/internal/constant"
	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/pkg/logger"
	"healthsphere-ml-be/internal/pkg/serverutils"
	"healthsphere-ml-be/pkg/mlmodel"
	"healthsphere-ml-be/pkg/sensor"
)

// IActivityService detects physical activities from raw sensor windows.
type IActivityService interface {
	DetectActivity(ctx context.Context, request *dto.ActivityDetectRequest) (*dto.ActivityDetectResponse, error)
	DetectActivityBatch(ctx context.Context, requests []dto.ActivityDetectRequest) (*dto.ActivityBatchResponse, error)
	GetSupportedActivities(ctx context.Context) (*dto.SupportedActivitiesResponse, error)
}

type activityService struct {
	// classifier is nil in rules mode; detection then uses the threshold
	// ladder on magnitude statistics.
	classifier mlmodel.Classifier
	sysLogger  logger.ILogger
}

func NewActivityService(classifier mlmodel.Classifier, sysLogger logger.ILogger) IActivityService {
	return &activityService{
		classifier: classifier,
		sysLogger:  sysLogger,
	}
}

func (s *activityService) DetectActivity(ctx context.Context, request *dto.ActivityDetectRequest) (*dto.ActivityDetectResponse, error) {
	if err := validateSensorData(&request.Data); err != nil {
		return nil, err
	}

	window := sensor.Window{
		Accelerometer: sensor.Axes{
			X: request.Data.AccelerometerX,
			Y: request.Data.AccelerometerY,
			Z: request.Data.AccelerometerZ,
		},
		Gyroscope: sensor.Axes{
			X: request.Data.GyroscopeX,
			Y: request.Data.GyroscopeY,
			Z: request.Data.GyroscopeZ,
		},
		DurationSeconds: request.DurationSeconds,
	}
	features := sensor.Extract(window)

	var topPredictions []dto.ActivityPrediction
	if s.classifier != nil {
		predictions, err := s.classifier.PredictProba(features.Vector)
		if err != nil {
			return nil, serverutils.NewProcessingError("activity detection failed", err)
		}
		limit := 3
		if len(predictions) < limit {
			limit = len(predictions)
		}
		for _, p := range predictions[:limit] {
			topPredictions = append(topPredictions, dto.ActivityPrediction{
				Activity:   p.Label,
				Confidence: p.Probability,
			})
		}
	} else {
		activity, confidence := heuristicPrediction(features)
		topPredictions = []dto.ActivityPrediction{{Activity: activity, Confidence: confidence}}
	}

	predicted := topPredictions[0]
	intensity := intensityLevel(features)
	calories := estimateCalories(predicted.Activity, request.DurationSeconds, intensity)

	s.sysLogger.Info("activity", "activity detected", map[string]interface{}{
		"activity":   predicted.Activity,
		"confidence": predicted.Confidence,
		"user_id":    request.UserId,
	})

	return &dto.ActivityDetectResponse{
		PredictedActivity: predicted.Activity,
		Confidence:        predicted.Confidence,
		TopPredictions:    topPredictions,
		DurationSeconds:   request.DurationSeconds,
		IntensityLevel:    intensity,
		EstimatedCalories: calories,
		FeaturesExtracted: len(features.Vector),
	}, nil
}

// DetectActivityBatch processes items in order and embeds per-item failures
// instead of aborting the batch.
func (s *activityService) DetectActivityBatch(ctx context.Context, requests []dto.ActivityDetectRequest) (*dto.ActivityBatchResponse, error) {
	results := make([]dto.ActivityBatchItem, 0, len(requests))

	for i := range requests {
		result, err := s.DetectActivity(ctx, &requests[i])
		if err != nil {
			results = append(results, dto.ActivityBatchItem{SampleId: i, Error: err.Error()})
			continue
		}
		results = append(results, dto.ActivityBatchItem{SampleId: i, Result: result})
	}

	return &dto.ActivityBatchResponse{
		Results:      results,
		TotalSamples: len(results),
	}, nil
}

func (s *activityService) GetSupportedActivities(ctx context.Context) (*dto.SupportedActivitiesResponse, error) {
	return &dto.SupportedActivitiesResponse{
		Activities: constant.Activities,
		TotalCount: len(constant.Activities),
		Categories: constant.ActivityCategories,
		SensorRequirements: map[string]string{
			"accelerometer":    "required",
			"gyroscope":        "optional",
			"minimum_duration": "5 seconds",
			"sampling_rate":    "50 Hz recommended",
		},
	}, nil
}

func validateSensorData(data *dto.SensorData) error {
	for _, axis := range [][]float64{data.AccelerometerX, data.AccelerometerY, data.AccelerometerZ} {
		if len(axis) < constant.MinAccelerometerSamples {
			return serverutils.NewValidationError(
				"insufficient sensor data: at least %d accelerometer samples per axis required",
				constant.MinAccelerometerSamples,
			)
		}
	}
	return nil
}

// heuristicPrediction is the rule-based fallback: a threshold ladder over
// accelerometer magnitude statistics.
func heuristicPrediction(features sensor.Features) (string, float64) {
	mean, std := features.MagnitudeMean, features.MagnitudeStd

	switch {
	case mean > 0.5 && std > 0.3:
		return "running", 0.85
	case mean > 0.2 && std > 0.1:
		return "walking", 0.80
	case mean < 0.1 && std < 0.05:
		return "sitting", 0.90
	default:
		return "standing", 0.75
	}
}

func intensityLevel(features sensor.Features) string {
	mean, std := features.MagnitudeMean, features.MagnitudeStd

	switch {
	case mean > 0.5 || std > 0.4:
		return constant.IntensityHigh
	case mean > 0.2 || std > 0.15:
		return constant.IntensityModerate
	default:
		return constant.IntensityLow
	}
}

func estimateCalories(activity string, durationSeconds int, intensity string) float64 {
	baseRate, ok := constant.ActivityBaseCalories[activity]
	if !ok {
		baseRate = constant.DefaultBaseCalories
	}

	multiplier, ok := constant.IntensityMultipliers[intensity]
	if !ok {
		multiplier = 1.0
	}

	total := baseRate * multiplier * (float64(durationSeconds) / 60)
	return math.Round(total*10) / 10
}
