package service

import (
	"context"
	"testing"

	"healthsphere-ml-be/internal/constant"
	"healthsphere-ml-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// highRiskRequest trips every rule increment: age over 65, systolic over 140,
// BMI over 30 (92.48kg at 170cm is BMI 32) and a sedentary lifestyle.
func highRiskRequest() dto.RiskForecastRequest {
	return dto.RiskForecastRequest{
		HealthMetrics: dto.HealthMetrics{
			Weight:                 92.48,
			Height:                 170,
			BloodPressureSystolic:  150,
			BloodPressureDiastolic: 95,
			HeartRate:              80,
		},
		LifestyleData: dto.LifestyleData{
			Age:                   70,
			Gender:                "male",
			SmokingStatus:         "never",
			AlcoholConsumption:    "light",
			PhysicalActivityLevel: "sedentary",
			DietQuality:           "fair",
			StressLevel:           "moderate",
			SleepHours:            7,
		},
		UserId: "user-1",
	}
}

func lowRiskRequest() dto.RiskForecastRequest {
	return dto.RiskForecastRequest{
		HealthMetrics: dto.HealthMetrics{
			Weight:                 63.6,
			Height:                 170,
			BloodPressureSystolic:  110,
			BloodPressureDiastolic: 70,
			HeartRate:              60,
		},
		LifestyleData: dto.LifestyleData{
			Age:                   30,
			Gender:                "female",
			SmokingStatus:         "never",
			AlcoholConsumption:    "none",
			PhysicalActivityLevel: "active",
			DietQuality:           "good",
			StressLevel:           "low",
			SleepHours:            8,
		},
	}
}

func TestForecastRisk_RuleBasedHighRisk(t *testing.T) {
	svc := NewRiskService(nil, nopLogger{})

	request := highRiskRequest()
	result, err := svc.ForecastRisk(context.Background(), &request)
	require.NoError(t, err)

	// 0.10 base + 0.10 age + 0.15 systolic + 0.12 BMI + 0.08 sedentary
	require.Len(t, result.RiskPredictions, len(constant.RiskCategories))
	for category, prediction := range result.RiskPredictions {
		assert.InDelta(t, 0.55, prediction.Probability, 1e-9, "category %s", category)
		assert.Equal(t, constant.RiskLevelHigh, prediction.RiskLevel)
		assert.Equal(t, constant.RiskTrendRapidlyIncreasing, prediction.Trend)
	}

	assert.Equal(t, 45, result.OverallHealthScore)
	assert.Equal(t, defaultTimeHorizonYears, result.TimeHorizonYears)
	assert.Equal(t, 0.8, result.ConfidenceInterval.Lower)
	assert.Equal(t, 0.95, result.ConfidenceInterval.Upper)
	assert.False(t, result.LastUpdated.IsZero())
}

func TestForecastRisk_RuleBasedLowRisk(t *testing.T) {
	svc := NewRiskService(nil, nopLogger{})

	request := lowRiskRequest()
	request.TimeHorizonYears = 10
	result, err := svc.ForecastRisk(context.Background(), &request)
	require.NoError(t, err)

	// 0.10 base - 0.05 active
	for _, prediction := range result.RiskPredictions {
		assert.InDelta(t, 0.05, prediction.Probability, 1e-9)
		assert.Equal(t, constant.RiskLevelLow, prediction.RiskLevel)
		assert.Equal(t, constant.RiskTrendStable, prediction.Trend)
	}

	assert.Equal(t, 95, result.OverallHealthScore)
	assert.Equal(t, 10, result.TimeHorizonYears)
	assert.Empty(t, result.RiskFactors)
	assert.Empty(t, result.Recommendations)
}

func TestForecastRisk_RiskFactorsAndRecommendations(t *testing.T) {
	svc := NewRiskService(nil, nopLogger{})

	request := highRiskRequest()
	result, err := svc.ForecastRisk(context.Background(), &request)
	require.NoError(t, err)

	factors := make([]string, 0, len(result.RiskFactors))
	for _, f := range result.RiskFactors {
		factors = append(factors, f.Factor)
	}
	assert.ElementsMatch(t, []string{"age", "hypertension", "obesity", "physical_inactivity"}, factors)

	categories := make([]string, 0, len(result.Recommendations))
	for _, r := range result.Recommendations {
		categories = append(categories, r.Category)
		assert.NotEmpty(t, r.SpecificSteps)
	}
	assert.ElementsMatch(t, []string{"cardiovascular", "weight_management", "physical_activity"}, categories)
}

func TestCompareScenarios(t *testing.T) {
	svc := NewRiskService(nil, nopLogger{})

	scenarios, err := svc.CompareScenarios(context.Background(), []dto.RiskForecastRequest{
		highRiskRequest(),
		lowRiskRequest(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, scenarios.TotalScenarios)
	require.Len(t, scenarios.Scenarios, 2)

	assert.Equal(t, 0, scenarios.Scenarios[0].ScenarioId)
	assert.Equal(t, "Scenario 1", scenarios.Scenarios[0].ScenarioName)
	require.NotNil(t, scenarios.Scenarios[0].Result)
	assert.Equal(t, 45, scenarios.Scenarios[0].Result.OverallHealthScore)

	assert.Equal(t, "Scenario 2", scenarios.Scenarios[1].ScenarioName)
	require.NotNil(t, scenarios.Scenarios[1].Result)
	assert.Equal(t, 95, scenarios.Scenarios[1].Result.OverallHealthScore)
}

func TestGetRiskFactors(t *testing.T) {
	svc := NewRiskService(nil, nopLogger{})

	result, err := svc.GetRiskFactors(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(constant.RiskFactorCatalog), result.TotalFactors)
	for _, f := range result.RiskFactors {
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.Description)
	}
}

func TestSuggestInterventions(t *testing.T) {
	svc := NewRiskService(nil, nopLogger{})

	request := highRiskRequest()
	result, err := svc.SuggestInterventions(context.Background(), &request)
	require.NoError(t, err)

	names := make([]string, 0, len(result.Interventions))
	for _, i := range result.Interventions {
		names = append(names, i.Name)
	}
	assert.ElementsMatch(t, []string{"DASH Diet", "Calorie Restriction", "Progressive Walking Program"}, names)
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, "high", result.PersonalizationLevel)

	healthy := lowRiskRequest()
	result, err = svc.SuggestInterventions(context.Background(), &healthy)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalCount)
	assert.Equal(t, "moderate", result.PersonalizationLevel)
}

func TestBuildRiskFeatures_DefaultsAndEncoding(t *testing.T) {
	request := highRiskRequest()
	features := buildRiskFeatures(&request.HealthMetrics, &request.LifestyleData)

	require.Len(t, features, constant.RiskFeatureCount)
	assert.Equal(t, defaultCholesterolTotal, features[5])
	assert.Equal(t, defaultBloodGlucose, features[8])
	assert.Equal(t, defaultHba1c, features[9])
	assert.Equal(t, 70.0, features[10])
	assert.Equal(t, 1.0, features[11], "male encodes to 1")
	assert.Equal(t, 0.0, features[13], "sedentary encodes to 0")
}
