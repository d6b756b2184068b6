package entity

import "strings"

// ConditionCategory selects the animation shown with a report.
type ConditionCategory string

const (
	ConditionSunny  ConditionCategory = "sunny"
	ConditionRainy  ConditionCategory = "rainy"
	ConditionCloudy ConditionCategory = "cloudy"
)

// ConditionCategories lists every category.
var ConditionCategories = []ConditionCategory{ConditionSunny, ConditionRainy, ConditionCloudy}

// Classify maps a condition description to a category. Rain wins over cloud; anything else is sunny.
func Classify(description string) ConditionCategory {
	lower := strings.ToLower(description)
	switch {
	case strings.Contains(lower, "rain"):
		return ConditionRainy
	case strings.Contains(lower, "cloud"):
		return ConditionCloudy
	default:
		return ConditionSunny
	}
}

// ParseConditionCategory resolves a category name.
func ParseConditionCategory(name string) (ConditionCategory, bool) {
	for _, category := range ConditionCategories {
		if string(category) == strings.ToLower(name) {
			return category, true
		}
	}
	return "", false
}
