package entity

// FoodRecord is a read-only nutrition reference entry, loaded at startup and
// immutable for the process lifetime.
type FoodRecord struct {
	Calories            float64
	Protein             float64
	Carbs               float64
	Fat                 float64
	Fiber               float64
	Vitamins            []string
	ConfidenceThreshold float64
}
