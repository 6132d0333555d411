package dto

import "time"

type HealthMetrics struct {
	Weight                 float64  `json:"weight" validate:"required,gt=0"`
	Height                 float64  `json:"height" validate:"required,gt=0"`
	BloodPressureSystolic  int      `json:"blood_pressure_systolic" validate:"required,gt=0"`
	BloodPressureDiastolic int      `json:"blood_pressure_diastolic" validate:"required,gt=0"`
	HeartRate              int      `json:"heart_rate" validate:"required,gt=0"`
	CholesterolTotal       *float64 `json:"cholesterol_total,omitempty"`
	CholesterolHdl         *float64 `json:"cholesterol_hdl,omitempty"`
	CholesterolLdl         *float64 `json:"cholesterol_ldl,omitempty"`
	BloodGlucose           *float64 `json:"blood_glucose,omitempty"`
	Hba1c                  *float64 `json:"hba1c,omitempty"`
}

type LifestyleData struct {
	Age                   int             `json:"age" validate:"required,gt=0"`
	Gender                string          `json:"gender" validate:"required"`
	SmokingStatus         string          `json:"smoking_status" validate:"required,oneof=never former current"`
	AlcoholConsumption    string          `json:"alcohol_consumption" validate:"required,oneof=none light moderate heavy"`
	PhysicalActivityLevel string          `json:"physical_activity_level" validate:"required,oneof=sedentary light moderate active very_active"`
	DietQuality           string          `json:"diet_quality" validate:"required,oneof=poor fair good excellent"`
	StressLevel           string          `json:"stress_level" validate:"required,oneof=low moderate high"`
	SleepHours            float64         `json:"sleep_hours" validate:"required,gt=0"`
	FamilyHistory         map[string]bool `json:"family_history,omitempty"`
}

type RiskForecastRequest struct {
	HealthMetrics    HealthMetrics `json:"health_metrics" validate:"required"`
	LifestyleData    LifestyleData `json:"lifestyle_data" validate:"required"`
	TimeHorizonYears int           `json:"time_horizon_years,omitempty"`
	UserId           string        `json:"user_id,omitempty"`
}

type RiskPrediction struct {
	Probability float64 `json:"probability"`
	RiskLevel   string  `json:"risk_level"`
	Trend       string  `json:"trend"`
}

type RiskFactor struct {
	Factor      string `json:"factor"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

type Recommendation struct {
	Category      string   `json:"category"`
	Priority      string   `json:"priority"`
	Action        string   `json:"action"`
	SpecificSteps []string `json:"specific_steps"`
}

type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

type RiskForecastResponse struct {
	TimeHorizonYears   int                       `json:"time_horizon_years"`
	OverallHealthScore int                       `json:"overall_health_score"`
	RiskPredictions    map[string]RiskPrediction `json:"risk_predictions"`
	RiskFactors        []RiskFactor              `json:"risk_factors"`
	Recommendations    []Recommendation          `json:"recommendations"`
	ConfidenceInterval ConfidenceInterval        `json:"confidence_interval"`
	LastUpdated        time.Time                 `json:"last_updated"`
}

// RiskScenarioItem carries either a result or an embedded per-scenario error.
type RiskScenarioItem struct {
	ScenarioId   int                   `json:"scenario_id"`
	ScenarioName string                `json:"scenario_name,omitempty"`
	Result       *RiskForecastResponse `json:"result,omitempty"`
	Error        string                `json:"error,omitempty"`
}

type RiskComparisonResponse struct {
	Scenarios      []RiskScenarioItem `json:"scenarios"`
	TotalScenarios int                `json:"total_scenarios"`
}

type RiskFactorInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Modifiable  bool   `json:"modifiable"`
}

type RiskFactorCatalogResponse struct {
	RiskFactors  []RiskFactorInfo `json:"risk_factors"`
	TotalFactors int              `json:"total_factors"`
}

type Intervention struct {
	Type            string `json:"type"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	ExpectedBenefit string `json:"expected_benefit"`
	Difficulty      string `json:"difficulty"`
	TimeToEffect    string `json:"time_to_effect"`
}

type InterventionsResponse struct {
	Interventions        []Intervention `json:"interventions"`
	TotalCount           int            `json:"total_count"`
	PersonalizationLevel string         `json:"personalization_level"`
}
