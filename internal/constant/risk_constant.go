package constant

// RiskCategories is the fixed set of forecasted conditions.
var RiskCategories = []string{
	"diabetes", "cardiovascular", "hypertension", "obesity", "stroke",
}

// RiskFeatureCount is the regressor input width: 10 health metrics plus 6
// encoded lifestyle fields.
const RiskFeatureCount = 16

// RiskTargetRanges bounds the synthetic training targets per category.
var RiskTargetRanges = map[string][2]float64{
	"diabetes":       {0, 0.30},
	"cardiovascular": {0, 0.25},
	"hypertension":   {0, 0.40},
	"obesity":        {0, 0.50},
	"stroke":         {0, 0.15},
}

// Categorical encodings for the lifestyle features.
var SmokingStatusEncoding = map[string]float64{
	"never": 0, "former": 1, "current": 2,
}

var ActivityLevelEncoding = map[string]float64{
	"sedentary": 0, "light": 1, "moderate": 2, "active": 3, "very_active": 4,
}

var DietQualityEncoding = map[string]float64{
	"poor": 0, "fair": 1, "good": 2, "excellent": 3,
}

const (
	RiskLevelLow      = "low"
	RiskLevelModerate = "moderate"
	RiskLevelHigh     = "high"

	RiskTrendStable            = "stable"
	RiskTrendIncreasing        = "increasing"
	RiskTrendRapidlyIncreasing = "rapidly_increasing"
)

// RiskFactorInfo is a static advisory entry for the risk-factor catalog.
type RiskFactorInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Modifiable  bool   `json:"modifiable"`
}

// RiskFactorCatalog backs GET /risk-forecast/risk-factors.
var RiskFactorCatalog = []RiskFactorInfo{
	{
		Name:        "age",
		Description: "Age is a non-modifiable risk factor",
		Impact:      "Increases risk for most chronic conditions",
		Modifiable:  false,
	},
	{
		Name:        "blood_pressure",
		Description: "High blood pressure increases cardiovascular risk",
		Impact:      "Major risk factor for heart disease and stroke",
		Modifiable:  true,
	},
	{
		Name:        "weight",
		Description: "Excess weight increases risk for multiple conditions",
		Impact:      "Increases risk for diabetes, heart disease, and joint problems",
		Modifiable:  true,
	},
	{
		Name:        "physical_activity",
		Description: "Low physical activity increases health risks",
		Impact:      "Increases risk for cardiovascular disease and diabetes",
		Modifiable:  true,
	},
	{
		Name:        "smoking",
		Description: "Smoking significantly increases health risks",
		Impact:      "Major risk factor for cancer, heart disease, and lung disease",
		Modifiable:  true,
	},
}
