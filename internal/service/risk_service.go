package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"healthsphere-ml-be/internal/constant"
	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/pkg/logger"
	"healthsphere-ml-be/internal/pkg/serverutils"
	"healthsphere-ml-be/pkg/mlmodel"
)

const defaultTimeHorizonYears = 5

// Defaults applied to optional health metrics, matching typical reference
// values.
const (
	defaultCholesterolTotal = 200.0
	defaultCholesterolHdl   = 50.0
	defaultCholesterolLdl   = 120.0
	defaultBloodGlucose     = 90.0
	defaultHba1c            = 5.5
)

// IRiskService forecasts long-term health risks from current metrics and
// lifestyle.
type IRiskService interface {
	ForecastRisk(ctx context.Context, request *dto.RiskForecastRequest) (*dto.RiskForecastResponse, error)
	CompareScenarios(ctx context.Context, requests []dto.RiskForecastRequest) (*dto.RiskComparisonResponse, error)
	GetRiskFactors(ctx context.Context) (*dto.RiskFactorCatalogResponse, error)
	SuggestInterventions(ctx context.Context, request *dto.RiskForecastRequest) (*dto.InterventionsResponse, error)
}

type riskService struct {
	// regressors is nil in rules mode; scoring then uses the deterministic
	// additive table.
	regressors map[string]mlmodel.Regressor
	sysLogger  logger.ILogger
}

func NewRiskService(regressors map[string]mlmodel.Regressor, sysLogger logger.ILogger) IRiskService {
	return &riskService{
		regressors: regressors,
		sysLogger:  sysLogger,
	}
}

func (s *riskService) ForecastRisk(ctx context.Context, request *dto.RiskForecastRequest) (*dto.RiskForecastResponse, error) {
	horizon := request.TimeHorizonYears
	if horizon <= 0 {
		horizon = defaultTimeHorizonYears
	}

	features := buildRiskFeatures(&request.HealthMetrics, &request.LifestyleData)

	predictions := make(map[string]dto.RiskPrediction, len(constant.RiskCategories))
	total := 0.0
	for _, category := range constant.RiskCategories {
		risk, err := s.scoreCategory(category, features, &request.HealthMetrics, &request.LifestyleData)
		if err != nil {
			return nil, serverutils.NewProcessingError(fmt.Sprintf("risk forecasting failed for %s", category), err)
		}
		total += risk
		predictions[category] = dto.RiskPrediction{
			Probability: risk,
			RiskLevel:   categorizeRisk(risk),
			Trend:       predictTrend(risk),
		}
	}

	avgRisk := total / float64(len(constant.RiskCategories))
	overallScore := clampInt(int(math.Round((1-avgRisk)*100)), 0, 100)

	s.sysLogger.Info("risk", "risk forecast completed", map[string]interface{}{
		"user_id":       request.UserId,
		"overall_score": overallScore,
		"horizon_years": horizon,
	})

	return &dto.RiskForecastResponse{
		TimeHorizonYears:   horizon,
		OverallHealthScore: overallScore,
		RiskPredictions:    predictions,
		RiskFactors:        identifyRiskFactors(&request.HealthMetrics, &request.LifestyleData),
		Recommendations:    generateRecommendations(&request.HealthMetrics, &request.LifestyleData),
		ConfidenceInterval: dto.ConfidenceInterval{Lower: 0.8, Upper: 0.95},
		LastUpdated:        time.Now().UTC(),
	}, nil
}

// CompareScenarios forecasts each scenario in order and embeds per-scenario
// failures instead of aborting the comparison.
func (s *riskService) CompareScenarios(ctx context.Context, requests []dto.RiskForecastRequest) (*dto.RiskComparisonResponse, error) {
	scenarios := make([]dto.RiskScenarioItem, 0, len(requests))

	for i := range requests {
		result, err := s.ForecastRisk(ctx, &requests[i])
		if err != nil {
			scenarios = append(scenarios, dto.RiskScenarioItem{ScenarioId: i, Error: err.Error()})
			continue
		}
		scenarios = append(scenarios, dto.RiskScenarioItem{
			ScenarioId:   i,
			ScenarioName: fmt.Sprintf("Scenario %d", i+1),
			Result:       result,
		})
	}

	return &dto.RiskComparisonResponse{
		Scenarios:      scenarios,
		TotalScenarios: len(scenarios),
	}, nil
}

func (s *riskService) GetRiskFactors(ctx context.Context) (*dto.RiskFactorCatalogResponse, error) {
	factors := make([]dto.RiskFactorInfo, 0, len(constant.RiskFactorCatalog))
	for _, f := range constant.RiskFactorCatalog {
		factors = append(factors, dto.RiskFactorInfo{
			Name:        f.Name,
			Description: f.Description,
			Impact:      f.Impact,
			Modifiable:  f.Modifiable,
		})
	}

	return &dto.RiskFactorCatalogResponse{
		RiskFactors:  factors,
		TotalFactors: len(factors),
	}, nil
}

func (s *riskService) SuggestInterventions(ctx context.Context, request *dto.RiskForecastRequest) (*dto.InterventionsResponse, error) {
	var interventions []dto.Intervention

	if request.HealthMetrics.BloodPressureSystolic > 130 {
		interventions = append(interventions, dto.Intervention{
			Type:            "dietary",
			Name:            "DASH Diet",
			Description:     "Dietary Approaches to Stop Hypertension",
			ExpectedBenefit: "Reduce systolic BP by 5-10 mmHg",
			Difficulty:      "moderate",
			TimeToEffect:    "2-4 weeks",
		})
	}

	if bmi(&request.HealthMetrics) > 25 {
		interventions = append(interventions, dto.Intervention{
			Type:            "lifestyle",
			Name:            "Calorie Restriction",
			Description:     "Moderate calorie reduction for sustainable weight loss",
			ExpectedBenefit: "5-10% weight loss over 6 months",
			Difficulty:      "moderate",
			TimeToEffect:    "4-8 weeks",
		})
	}

	activity := request.LifestyleData.PhysicalActivityLevel
	if activity == "sedentary" || activity == "light" {
		interventions = append(interventions, dto.Intervention{
			Type:            "exercise",
			Name:            "Progressive Walking Program",
			Description:     "Gradually increase daily walking duration",
			ExpectedBenefit: "Improve cardiovascular fitness and reduce disease risk",
			Difficulty:      "easy",
			TimeToEffect:    "2-3 weeks",
		})
	}

	personalization := "moderate"
	if request.UserId != "" {
		personalization = "high"
	}

	return &dto.InterventionsResponse{
		Interventions:        interventions,
		TotalCount:           len(interventions),
		PersonalizationLevel: personalization,
	}, nil
}

func (s *riskService) scoreCategory(category string, features []float64, hm *dto.HealthMetrics, ls *dto.LifestyleData) (float64, error) {
	if regressor, ok := s.regressors[category]; ok && regressor != nil {
		risk, err := regressor.Predict(features)
		if err != nil {
			return 0, err
		}
		return clampFloat(risk, 0, 1), nil
	}
	return ruleBasedRisk(hm, ls), nil
}

// buildRiskFeatures assembles the 16-element feature vector: 10 health
// metrics (optionals defaulted) followed by 6 encoded lifestyle fields.
func buildRiskFeatures(hm *dto.HealthMetrics, ls *dto.LifestyleData) []float64 {
	features := make([]float64, 0, constant.RiskFeatureCount)

	features = append(features,
		hm.Weight,
		hm.Height,
		float64(hm.BloodPressureSystolic),
		float64(hm.BloodPressureDiastolic),
		float64(hm.HeartRate),
		valueOrDefault(hm.CholesterolTotal, defaultCholesterolTotal),
		valueOrDefault(hm.CholesterolHdl, defaultCholesterolHdl),
		valueOrDefault(hm.CholesterolLdl, defaultCholesterolLdl),
		valueOrDefault(hm.BloodGlucose, defaultBloodGlucose),
		valueOrDefault(hm.Hba1c, defaultHba1c),
	)

	gender := 0.0
	if ls.Gender == "male" {
		gender = 1.0
	}
	features = append(features,
		float64(ls.Age),
		gender,
		encodeOrDefault(constant.SmokingStatusEncoding, ls.SmokingStatus, 0),
		encodeOrDefault(constant.ActivityLevelEncoding, ls.PhysicalActivityLevel, 2),
		encodeOrDefault(constant.DietQualityEncoding, ls.DietQuality, 1),
		ls.SleepHours,
	)

	return features
}

// ruleBasedRisk is the deterministic additive fallback: fixed increments on
// a 0.10 base, clamped to [0, 1].
func ruleBasedRisk(hm *dto.HealthMetrics, ls *dto.LifestyleData) float64 {
	risk := 0.10

	if ls.Age > 65 {
		risk += 0.10
	} else if ls.Age > 45 {
		risk += 0.05
	}

	if hm.BloodPressureSystolic > 140 {
		risk += 0.15
	} else if hm.BloodPressureSystolic > 130 {
		risk += 0.08
	}

	if b := bmi(hm); b > 30 {
		risk += 0.12
	} else if b > 25 {
		risk += 0.06
	}

	switch ls.PhysicalActivityLevel {
	case "sedentary":
		risk += 0.08
	case "active", "very_active":
		risk -= 0.05
	}

	return clampFloat(risk, 0, 1)
}

func identifyRiskFactors(hm *dto.HealthMetrics, ls *dto.LifestyleData) []dto.RiskFactor {
	var factors []dto.RiskFactor

	if ls.Age > 65 {
		factors = append(factors, dto.RiskFactor{
			Factor:      "age",
			Level:       "high",
			Description: fmt.Sprintf("Age %d increases risk for multiple conditions", ls.Age),
		})
	}

	if hm.BloodPressureSystolic > 140 {
		factors = append(factors, dto.RiskFactor{
			Factor:      "hypertension",
			Level:       "high",
			Description: "High blood pressure significantly increases cardiovascular risk",
		})
	}

	if bmi(hm) > 30 {
		factors = append(factors, dto.RiskFactor{
			Factor:      "obesity",
			Level:       "high",
			Description: "Obesity increases risk for diabetes and cardiovascular disease",
		})
	}

	if ls.PhysicalActivityLevel == "sedentary" {
		factors = append(factors, dto.RiskFactor{
			Factor:      "physical_inactivity",
			Level:       "moderate",
			Description: "Low physical activity increases risk for multiple conditions",
		})
	}

	return factors
}

func generateRecommendations(hm *dto.HealthMetrics, ls *dto.LifestyleData) []dto.Recommendation {
	var recommendations []dto.Recommendation

	if hm.BloodPressureSystolic > 130 {
		recommendations = append(recommendations, dto.Recommendation{
			Category: "cardiovascular",
			Priority: "high",
			Action:   "Monitor blood pressure regularly and consider lifestyle changes",
			SpecificSteps: []string{
				"Reduce sodium intake",
				"Increase physical activity",
				"Manage stress levels",
				"Consider consulting a healthcare provider",
			},
		})
	}

	if bmi(hm) > 25 {
		recommendations = append(recommendations, dto.Recommendation{
			Category: "weight_management",
			Priority: "moderate",
			Action:   "Focus on sustainable weight management",
			SpecificSteps: []string{
				"Create a calorie deficit through diet and exercise",
				"Focus on whole foods and portion control",
				"Increase daily physical activity",
				"Set realistic weight loss goals",
			},
		})
	}

	if ls.PhysicalActivityLevel == "sedentary" || ls.PhysicalActivityLevel == "light" {
		recommendations = append(recommendations, dto.Recommendation{
			Category: "physical_activity",
			Priority: "high",
			Action:   "Increase daily physical activity",
			SpecificSteps: []string{
				"Start with 10-15 minutes of daily walking",
				"Gradually increase to 150 minutes of moderate activity per week",
				"Include strength training 2-3 times per week",
				"Find activities you enjoy to maintain consistency",
			},
		})
	}

	return recommendations
}

func categorizeRisk(risk float64) string {
	switch {
	case risk < 0.10:
		return constant.RiskLevelLow
	case risk < 0.30:
		return constant.RiskLevelModerate
	default:
		return constant.RiskLevelHigh
	}
}

func predictTrend(risk float64) string {
	switch {
	case risk < 0.10:
		return constant.RiskTrendStable
	case risk < 0.30:
		return constant.RiskTrendIncreasing
	default:
		return constant.RiskTrendRapidlyIncreasing
	}
}

func bmi(hm *dto.HealthMetrics) float64 {
	heightMeters := hm.Height / 100
	if heightMeters <= 0 {
		return 0
	}
	return hm.Weight / (heightMeters * heightMeters)
}

func valueOrDefault(value *float64, fallback float64) float64 {
	if value != nil {
		return *value
	}
	return fallback
}

func encodeOrDefault(encoding map[string]float64, key string, fallback float64) float64 {
	if v, ok := encoding[key]; ok {
		return v
	}
	return fallback
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
