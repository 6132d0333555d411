package constant

// Activities is the fixed closed set of detectable activities. Index order is
// the class order used by the classifier.
var Activities = []string{
	"walking", "running", "cycling", "swimming", "sitting",
	"standing", "lying_down", "stairs_up", "stairs_down", "jumping",
}

// ActivityCategories groups activities for the capability listing.
var ActivityCategories = map[string][]string{
	"cardio":    {"walking", "running", "cycling", "swimming", "stairs_up", "stairs_down", "jumping"},
	"strength":  {"jumping"},
	"sedentary": {"sitting", "standing", "lying_down"},
}

// ActivityBaseCalories is kcal/min per activity at moderate intensity.
var ActivityBaseCalories = map[string]float64{
	"walking":     3.5,
	"running":     8.0,
	"cycling":     6.0,
	"swimming":    7.0,
	"sitting":     1.0,
	"standing":    1.2,
	"lying_down":  0.8,
	"stairs_up":   9.0,
	"stairs_down": 4.0,
	"jumping":     10.0,
}

// DefaultBaseCalories applies to activities missing from the table.
const DefaultBaseCalories = 2.0

var IntensityMultipliers = map[string]float64{
	"low":      0.7,
	"moderate": 1.0,
	"high":     1.3,
}

const (
	IntensityLow      = "low"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
)

// MinAccelerometerSamples is the minimum per-axis sample count accepted by
// activity detection.
const MinAccelerometerSamples = 10
