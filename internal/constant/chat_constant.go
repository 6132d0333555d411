package constant

// ChatContextInfo describes one of the fixed conversation contexts. The
// context only affects the metadata echoed back, never response routing.
type ChatContextInfo struct {
	Description string   `json:"description"`
	Personality string   `json:"personality"`
	Expertise   []string `json:"expertise"`
}

const DefaultChatContext = "health_coaching"

var ChatContexts = map[string]ChatContextInfo{
	"health_coaching": {
		Description: "General health and wellness coaching",
		Personality: "supportive and knowledgeable",
		Expertise:   []string{"nutrition", "exercise", "sleep", "stress_management"},
	},
	"diabetes_management": {
		Description: "Specialized diabetes care and management",
		Personality: "clinical and precise",
		Expertise:   []string{"blood_glucose", "medication", "diet", "complications"},
	},
	"cardiovascular_health": {
		Description: "Heart health and cardiovascular disease prevention",
		Personality: "encouraging and evidence-based",
		Expertise:   []string{"blood_pressure", "cholesterol", "exercise", "diet"},
	},
	"mental_wellness": {
		Description: "Mental health and emotional well-being support",
		Personality: "empathetic and understanding",
		Expertise:   []string{"stress", "anxiety", "depression", "mindfulness"},
	},
}

// ChatRule is one entry of the ordered response table: if any keyword is
// contained in the lowercased message, the rule fires. First match wins.
// A rule with no keywords is the default and always matches.
type ChatRule struct {
	Topic       string
	Keywords    []string
	Responses   []string
	Suggestions []string
}

// ChatRules preserves the matching precedence of the response generator.
var ChatRules = []ChatRule{
	{
		Topic:    "exercise",
		Keywords: []string{"workout", "exercise"},
		Responses: []string{
			"I'd be happy to help with your workout routine! Based on your health profile, I recommend starting with low-impact cardio exercises like walking or swimming. Would you like me to create a personalized workout plan for you?",
			"Great question about exercise! For optimal health, aim for at least 150 minutes of moderate-intensity activity per week. I can help you design a program that fits your fitness level and goals.",
			"Exercise is crucial for maintaining good health! Let's discuss your current fitness level and any health conditions to create the best workout plan for you.",
		},
		Suggestions: []string{
			"Create a personalized workout plan",
			"Learn about different exercise types",
			"Track your fitness progress",
		},
	},
	{
		Topic:    "nutrition",
		Keywords: []string{"diet", "food", "meal"},
		Responses: []string{
			"Nutrition is a key pillar of good health! I recommend focusing on whole foods like vegetables, lean proteins, and complex carbohydrates. What specific dietary goals are you working towards?",
			"Great question about nutrition! A balanced diet with plenty of fruits, vegetables, and lean proteins can significantly improve your health. I can help you track your meals and suggest healthy alternatives.",
			"Food choices have a huge impact on your health! Let's discuss your current eating habits and create a plan that works for your lifestyle and health goals.",
		},
		Suggestions: []string{
			"Get nutrition analysis for your meals",
			"Learn about healthy food choices",
			"Create a meal planning strategy",
		},
	},
	{
		Topic:    "cardiovascular",
		Keywords: []string{"blood pressure", "heart"},
		Responses: []string{
			"Managing cardiovascular health is crucial! Regular exercise, a balanced diet, and stress management can help maintain healthy blood pressure. I recommend monitoring your readings and consulting with your healthcare provider.",
			"Heart health is so important! Lifestyle changes like reducing sodium, increasing physical activity, and managing stress can make a big difference. Would you like tips for heart-healthy lifestyle changes?",
			"Your cardiovascular health is a priority! I can help you understand your risk factors and create a plan to improve your heart health through diet, exercise, and lifestyle modifications.",
		},
		Suggestions: []string{
			"Set health goals",
			"Track your progress",
			"Get personalized recommendations",
		},
	},
	{
		Topic:    "sleep",
		Keywords: []string{"sleep", "insomnia"},
		Responses: []string{
			"Quality sleep is essential for overall health! Try maintaining a consistent sleep schedule, creating a relaxing bedtime routine, and avoiding screens before bed. I can help you track your sleep patterns and suggest improvements.",
			"Sleep is when your body repairs and rejuvenates! Aim for 7-9 hours of quality sleep per night. Let's discuss your current sleep habits and create a plan for better rest.",
			"Good sleep is foundational to good health! I can help you optimize your sleep environment and routine. How many hours of sleep are you currently getting?",
		},
		Suggestions: []string{
			"Improve your sleep hygiene",
			"Track your sleep patterns",
			"Learn relaxation techniques",
		},
	},
	{
		Topic:    "stress",
		Keywords: []string{"stress", "anxiety"},
		Responses: []string{
			"Mental wellness is just as important as physical health! Consider incorporating mindfulness practices, deep breathing exercises, or gentle yoga into your routine. I'm here to support your mental health journey.",
			"Stress management is crucial for overall well-being! I can teach you relaxation techniques and help you develop healthy coping strategies. What's causing you the most stress right now?",
			"Your mental health matters! Let's work together to develop stress management techniques that fit your lifestyle. Remember, it's okay to seek professional help when needed.",
		},
		Suggestions: []string{
			"Practice mindfulness exercises",
			"Learn stress management techniques",
			"Create a self-care routine",
		},
	},
	{
		Topic:    "weight",
		Keywords: []string{"weight", "lose", "gain"},
		Responses: []string{
			"Healthy weight management involves a combination of balanced nutrition and regular physical activity. Remember, sustainable changes work best! I can help you set realistic goals and track your progress.",
			"Weight management is about creating healthy habits that last! Focus on nourishing your body with whole foods and staying active. What's your current approach to weight management?",
			"Let's create a sustainable plan for healthy weight management! I'll help you set realistic goals and develop habits that support your long-term health and well-being.",
		},
		Suggestions: []string{
			"Set health goals",
			"Track your progress",
			"Get personalized recommendations",
		},
	},
	{
		Topic:    "diabetes",
		Keywords: []string{"diabetes"},
		Responses: []string{
			"Diabetes management requires careful attention to diet, exercise, and blood glucose monitoring. I can help you understand how different foods and activities affect your blood sugar levels.",
			"Managing diabetes effectively involves balancing medication, diet, and lifestyle. Let's create a comprehensive plan that helps you maintain stable blood glucose levels.",
			"I'm here to support your diabetes management journey! Together, we can develop strategies for healthy eating, regular exercise, and effective blood glucose monitoring.",
		},
		Suggestions: []string{
			"Set health goals",
			"Track your progress",
			"Get personalized recommendations",
		},
	},
	{
		Topic:    "general",
		Keywords: nil, // default rule, always matches
		Responses: []string{
			"I'm here to help with your health and wellness journey! I can provide guidance on exercise, nutrition, sleep, stress management, and more. What specific aspect of your health would you like to focus on today?",
			"Your health is my priority! I can assist with personalized advice on fitness, nutrition, mental wellness, and chronic disease management. What would you like to work on together?",
			"I'm your personal health coach, ready to support you! Whether it's improving your fitness, optimizing your nutrition, or managing stress, I'm here to help you achieve your health goals.",
		},
		Suggestions: []string{
			"Set health goals",
			"Track your progress",
			"Get personalized recommendations",
		},
	},
}
