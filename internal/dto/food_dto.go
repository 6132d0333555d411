package dto

type NutritionBreakdown struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

type NutritionRecord struct {
	Calories            float64  `json:"calories"`
	Protein             float64  `json:"protein"`
	Carbs               float64  `json:"carbs"`
	Fat                 float64  `json:"fat"`
	Fiber               float64  `json:"fiber"`
	Vitamins            []string `json:"vitamins"`
	ConfidenceThreshold float64  `json:"confidence_threshold"`
}

type FoodRecognitionResponse struct {
	FoodName    string             `json:"food_name"`
	Confidence  float64            `json:"confidence"`
	Nutrition   NutritionBreakdown `json:"nutrition"`
	Vitamins    []string           `json:"vitamins"`
	Ingredients []string           `json:"ingredients"`
	ServingSize string             `json:"serving_size"`
	HealthScore int                `json:"health_score"`
	Allergens   []string           `json:"allergens"`
}

type FoodBatchItem struct {
	Filename string                   `json:"filename"`
	Result   *FoodRecognitionResponse `json:"result"`
}

type FoodBatchResponse struct {
	Results     []FoodBatchItem `json:"results"`
	TotalImages int             `json:"total_images"`
}

type NutritionInfoResponse struct {
	FoodName        string          `json:"food_name"`
	Nutrition       NutritionRecord `json:"nutrition"`
	HealthBenefits  []string        `json:"health_benefits"`
	PreparationTips []string        `json:"preparation_tips"`
}
