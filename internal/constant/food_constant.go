package constant

import "healthsphere-ml-be/internal/entity"

// FoodCatalog is the static nutrition reference table. Keys are canonical
// lowercase names; lookups must lowercase first.
var FoodCatalog = map[string]entity.FoodRecord{
	"apple": {
		Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, Fiber: 2.4,
		Vitamins: []string{"C", "K"}, ConfidenceThreshold: 0.8,
	},
	"banana": {
		Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Fiber: 2.6,
		Vitamins: []string{"B6", "C"}, ConfidenceThreshold: 0.8,
	},
	"chicken_breast": {
		Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0,
		Vitamins: []string{"B6", "B12"}, ConfidenceThreshold: 0.7,
	},
	"salmon": {
		Calories: 208, Protein: 25, Carbs: 0, Fat: 12, Fiber: 0,
		Vitamins: []string{"B12", "D"}, ConfidenceThreshold: 0.7,
	},
	"rice": {
		Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4,
		Vitamins: []string{"B1", "B3"}, ConfidenceThreshold: 0.8,
	},
	"broccoli": {
		Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4, Fiber: 2.6,
		Vitamins: []string{"C", "K"}, ConfidenceThreshold: 0.8,
	},
	"pizza": {
		Calories: 266, Protein: 11, Carbs: 33, Fat: 10, Fiber: 2.3,
		Vitamins: []string{"B12", "D"}, ConfidenceThreshold: 0.9,
	},
	"salad": {
		Calories: 20, Protein: 2, Carbs: 4, Fat: 0.2, Fiber: 1.5,
		Vitamins: []string{"A", "C"}, ConfidenceThreshold: 0.6,
	},
}

// FoodIngredients maps canonical names to ingredient lists.
var FoodIngredients = map[string][]string{
	"apple":          {"Apple"},
	"banana":         {"Banana"},
	"chicken_breast": {"Chicken breast", "Salt", "Pepper"},
	"salmon":         {"Salmon fillet", "Lemon", "Dill", "Salt"},
	"rice":           {"White rice", "Water", "Salt"},
	"broccoli":       {"Broccoli", "Olive oil", "Salt"},
	"pizza":          {"Pizza dough", "Tomato sauce", "Mozzarella", "Pepperoni"},
	"salad":          {"Mixed greens", "Tomatoes", "Cucumbers", "Olive oil", "Vinegar"},
}

var UnknownIngredients = []string{"Unknown ingredients"}

// FoodAllergens lists known allergens per food. Foods absent from the map have
// no detected allergens.
var FoodAllergens = map[string][]string{
	"pizza":          {"gluten", "dairy"},
	"salmon":         {"fish"},
	"chicken_breast": {},
}

var FoodHealthBenefits = map[string][]string{
	"apple":          {"Rich in fiber", "Contains antioxidants", "Supports heart health"},
	"banana":         {"High in potassium", "Good source of vitamin B6", "Supports digestion"},
	"chicken_breast": {"High-quality protein", "Low in fat", "Rich in B vitamins"},
	"salmon":         {"High in omega-3 fatty acids", "Excellent protein source", "Rich in vitamin D"},
	"broccoli":       {"High in vitamin C", "Contains antioxidants", "Supports immune system"},
}

var DefaultHealthBenefits = []string{"Nutritious food"}

var FoodPreparationTips = map[string][]string{
	"chicken_breast": {"Cook to internal temperature of 165°F", "Let rest before slicing"},
	"salmon":         {"Cook until flaky", "Don't overcook"},
	"broccoli":       {"Steam for 3-5 minutes", "Keep bright green color"},
	"rice":           {"Use 2:1 water to rice ratio", "Let steam after cooking"},
}

var DefaultPreparationTips = []string{"Enjoy fresh"}

const FoodServingSize = "1 serving"
