package domain

// IngredientCategory groups ingredients for shopping-list display.
type IngredientCategory string

const (
	CategoryMeat       IngredientCategory = "meat"
	CategoryProduce    IngredientCategory = "produce"
	CategoryDairy      IngredientCategory = "dairy"
	CategoryPantry     IngredientCategory = "pantry"
	CategorySpices     IngredientCategory = "spices"
	CategoryCondiments IngredientCategory = "condiments"
	CategoryBread      IngredientCategory = "bread"
	CategoryOther      IngredientCategory = "other"
)

// Categories lists every valid category in display order.
var Categories = []IngredientCategory{
	CategoryMeat,
	CategoryProduce,
	CategoryDairy,
	CategoryPantry,
	CategorySpices,
	CategoryCondiments,
	CategoryBread,
	CategoryOther,
}

var validCategories = map[IngredientCategory]bool{
	CategoryMeat:       true,
	CategoryProduce:    true,
	CategoryDairy:      true,
	CategoryPantry:     true,
	CategorySpices:     true,
	CategoryCondiments: true,
	CategoryBread:      true,
	CategoryOther:      true,
}

// NormalizeCategory collapses anything outside the closed category set to
// CategoryOther. Shopping-list grouping depends on this holding, so it is
// applied wherever a category value enters the system.
func NormalizeCategory(s string) IngredientCategory {
	c := IngredientCategory(s)
	if validCategories[c] {
		return c
	}
	return CategoryOther
}

// Confidence is a per-field trust label attached by whichever component
// produced the field.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// NormalizeConfidence maps unknown confidence values to low. Unknown trust is
// treated as least trustworthy, never silently promoted.
func NormalizeConfidence(s string) Confidence {
	switch Confidence(s) {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return Confidence(s)
	default:
		return ConfidenceLow
	}
}

// ExtractionMethod records which pipeline tier produced a recipe. It is always
// set by the producing component, never inferred after the fact.
type ExtractionMethod string

const (
	MethodJSONLD    ExtractionMethod = "jsonld"
	MethodMicrodata ExtractionMethod = "microdata"
	MethodAI        ExtractionMethod = "ai"
)

// DietType is a supported dietary-conversion target.
type DietType string

const (
	DietVegetarian DietType = "vegetarian"
	DietVegan      DietType = "vegan"
	DietGlutenFree DietType = "gluten-free"
)

// ParseDietType validates a diet string; ok is false for anything outside the
// supported set.
func ParseDietType(s string) (DietType, bool) {
	switch DietType(s) {
	case DietVegetarian, DietVegan, DietGlutenFree:
		return DietType(s), true
	default:
		return "", false
	}
}
