package service

import (
	"context"
	"image"
	"testing"

	"healthsphere-ml-be/internal/constant"
	"healthsphere-ml-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name                          string
		calories, protein, fat, fiber float64
		want                          int
	}{
		{"pizza", 266, 11, 10, 2.3, 100},
		{"salmon", 208, 25, 12, 0, 90},
		{"chicken breast clamps at 100", 165, 31, 3.6, 0, 100},
		{"apple clamps at 100", 52, 0.3, 0.2, 2.4, 100},
		{"high calorie high fat", 400, 0, 20, 0, 65},
		{"neutral profile keeps base", 150, 5, 5, 1, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, healthScore(tc.calories, tc.protein, tc.fat, tc.fiber))
		})
	}
}

func TestGetNutritionInfo_CaseInsensitive(t *testing.T) {
	svc := NewFoodService(42, nopLogger{})

	result, err := svc.GetNutritionInfo(context.Background(), "Apple")
	require.NoError(t, err)

	assert.Equal(t, "Apple", result.FoodName)
	assert.Equal(t, 52.0, result.Nutrition.Calories)
	assert.Equal(t, []string{"C", "K"}, result.Nutrition.Vitamins)
	assert.Equal(t, []string{"Rich in fiber", "Contains antioxidants", "Supports heart health"}, result.HealthBenefits)
	assert.Equal(t, constant.DefaultPreparationTips, result.PreparationTips)
}

func TestGetNutritionInfo_UnknownFood(t *testing.T) {
	svc := NewFoodService(42, nopLogger{})

	_, err := svc.GetNutritionInfo(context.Background(), "durian")
	require.Error(t, err)

	var notFoundErr *serverutils.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestGetNutritionInfo_DefaultsForSparseEntries(t *testing.T) {
	svc := NewFoodService(42, nopLogger{})

	result, err := svc.GetNutritionInfo(context.Background(), "pizza")
	require.NoError(t, err)

	assert.Equal(t, constant.DefaultHealthBenefits, result.HealthBenefits)
	assert.Equal(t, constant.DefaultPreparationTips, result.PreparationTips)
}

func TestRecognizeFood(t *testing.T) {
	svc := NewFoodService(42, nopLogger{})
	img := image.NewRGBA(image.Rect(0, 0, 224, 224))

	for i := 0; i < 20; i++ {
		result, err := svc.RecognizeFood(context.Background(), img, "user-1")
		require.NoError(t, err)

		_, known := constant.FoodCatalog[result.FoodName]
		assert.True(t, known, "recognized name %q must come from the catalog", result.FoodName)
		assert.GreaterOrEqual(t, result.Confidence, 0.7)
		assert.Less(t, result.Confidence, 0.95)
		assert.GreaterOrEqual(t, result.HealthScore, 0)
		assert.LessOrEqual(t, result.HealthScore, 100)
		assert.Equal(t, constant.FoodServingSize, result.ServingSize)
		assert.NotEmpty(t, result.Ingredients)
		assert.NotNil(t, result.Allergens)
	}
}

func TestRecognizeFood_Deterministic(t *testing.T) {
	first := NewFoodService(7, nopLogger{})
	second := NewFoodService(7, nopLogger{})
	img := image.NewRGBA(image.Rect(0, 0, 224, 224))

	for i := 0; i < 5; i++ {
		a, err := first.RecognizeFood(context.Background(), img, "")
		require.NoError(t, err)
		b, err := second.RecognizeFood(context.Background(), img, "")
		require.NoError(t, err)

		assert.Equal(t, a.FoodName, b.FoodName)
		assert.Equal(t, a.Confidence, b.Confidence)
	}
}

func TestRecognizeFood_NilImage(t *testing.T) {
	svc := NewFoodService(42, nopLogger{})

	_, err := svc.RecognizeFood(context.Background(), nil, "")
	require.Error(t, err)

	var validationErr *serverutils.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
