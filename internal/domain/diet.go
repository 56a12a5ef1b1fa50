package domain

// IngredientSwap records how one ingredient line was rewritten for a target
// diet. Changed is false when the line passed through untouched.
type IngredientSwap struct {
	Original  string `json:"original"`
	Converted string `json:"converted"`
	Changed   bool   `json:"changed"`
	Reason    string `json:"reason,omitempty"`
}

// DietConversion is the structural diff produced by converting a recipe to a
// dietary constraint. It is a diff over an existing recipe, not a fresh
// extraction.
type DietConversion struct {
	Diet         DietType         `json:"diet"`
	Ingredients  []IngredientSwap `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	Changes      []string         `json:"changes,omitempty"`
	Tips         []string         `json:"tips,omitempty"`
}
