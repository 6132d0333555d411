package service

import (
	"context"
	"image"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"healthsphere-ml-be/internal/constant"
	"healthsphere-ml-be/internal/dto"
	"healthsphere-ml-be/internal/pkg/logger"
	"healthsphere-ml-be/internal/pkg/serverutils"
)

// IFoodService recognizes food in normalized images and serves the static
// nutrition catalog.
type IFoodService interface {
	RecognizeFood(ctx context.Context, img *image.RGBA, userId string) (*dto.FoodRecognitionResponse, error)
	GetNutritionInfo(ctx context.Context, foodName string) (*dto.NutritionInfoResponse, error)
}

type foodService struct {
	// foodNames is the catalog key list in stable order so the random draw
	// is reproducible for a fixed seed.
	foodNames []string
	sysLogger logger.ILogger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewFoodService(seed int64, sysLogger logger.ILogger) IFoodService {
	names := make([]string, 0, len(constant.FoodCatalog))
	for name := range constant.FoodCatalog {
		names = append(names, name)
	}
	sort.Strings(names)

	return &foodService{
		foodNames: names,
		sysLogger: sysLogger,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// RecognizeFood draws a uniform random catalog entry with a confidence in
// [0.7, 0.95]. There is no actual image analysis; the normalized buffer is
// accepted so a real vision model can slot in later.
func (s *foodService) RecognizeFood(ctx context.Context, img *image.RGBA, userId string) (*dto.FoodRecognitionResponse, error) {
	if img == nil {
		return nil, serverutils.NewValidationError("image buffer is required")
	}

	name, confidence := s.simulateRecognition()
	record := constant.FoodCatalog[name]

	s.sysLogger.Info("food", "food recognized", map[string]interface{}{
		"food_name":  name,
		"confidence": confidence,
		"user_id":    userId,
	})

	return &dto.FoodRecognitionResponse{
		FoodName:   name,
		Confidence: confidence,
		Nutrition: dto.NutritionBreakdown{
			Calories: record.Calories,
			Protein:  record.Protein,
			Carbs:    record.Carbs,
			Fat:      record.Fat,
			Fiber:    record.Fiber,
		},
		Vitamins:    record.Vitamins,
		Ingredients: lookupOrDefault(constant.FoodIngredients, name, constant.UnknownIngredients),
		ServingSize: constant.FoodServingSize,
		HealthScore: healthScore(record.Calories, record.Protein, record.Fat, record.Fiber),
		Allergens:   lookupOrDefault(constant.FoodAllergens, name, []string{}),
	}, nil
}

// GetNutritionInfo is a case-insensitive catalog lookup.
func (s *foodService) GetNutritionInfo(ctx context.Context, foodName string) (*dto.NutritionInfoResponse, error) {
	canonical := strings.ToLower(foodName)
	record, ok := constant.FoodCatalog[canonical]
	if !ok {
		return nil, serverutils.NewNotFoundError("food '%s' not found in database", foodName)
	}

	return &dto.NutritionInfoResponse{
		FoodName: foodName,
		Nutrition: dto.NutritionRecord{
			Calories:            record.Calories,
			Protein:             record.Protein,
			Carbs:               record.Carbs,
			Fat:                 record.Fat,
			Fiber:               record.Fiber,
			Vitamins:            record.Vitamins,
			ConfidenceThreshold: record.ConfidenceThreshold,
		},
		HealthBenefits:  lookupOrDefault(constant.FoodHealthBenefits, canonical, constant.DefaultHealthBenefits),
		PreparationTips: lookupOrDefault(constant.FoodPreparationTips, canonical, constant.DefaultPreparationTips),
	}, nil
}

func (s *foodService) simulateRecognition() (string, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := s.foodNames[s.rng.Intn(len(s.foodNames))]
	confidence := 0.7 + s.rng.Float64()*0.25
	return name, confidence
}

// healthScore applies the fixed delta table to a base score of 100 and
// clamps to [0, 100].
func healthScore(calories, protein, fat, fiber float64) int {
	score := 100

	if calories > 300 {
		score -= 20
	} else if calories > 200 {
		score -= 10
	}

	if protein > 20 {
		score += 10
	} else if protein > 10 {
		score += 5
	}

	if fat > 15 {
		score -= 15
	} else if fat > 10 {
		score -= 10
	}

	if fiber > 5 {
		score += 10
	} else if fiber > 2 {
		score += 5
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func lookupOrDefault(table map[string][]string, key string, fallback []string) []string {
	if values, ok := table[key]; ok {
		return values
	}
	return fallback
}
