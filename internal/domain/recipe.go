package domain

// Extraction field names used as confidence-map keys. Every ExtractedRecipe
// carries an entry for each of these.
const (
	FieldTitle        = "title"
	FieldImageURL     = "imageUrl"
	FieldIngredients  = "ingredients"
	FieldInstructions = "instructions"
	FieldServings     = "servings"
	FieldPrepTime     = "prepTime"
	FieldCookTime     = "cookTime"
)

// ConfidenceFields lists every field that must have a confidence entry.
var ConfidenceFields = []string{
	FieldTitle,
	FieldImageURL,
	FieldIngredients,
	FieldInstructions,
	FieldServings,
	FieldPrepTime,
	FieldCookTime,
}

// DefaultServings is assumed when a source does not state a yield.
const DefaultServings = 4

// ParsedIngredient is a confidently decomposed ingredient line.
type ParsedIngredient struct {
	Name     string             `json:"name"`
	Quantity float64            `json:"quantity"`
	Unit     string             `json:"unit"`
	Category IngredientCategory `json:"category"`
}

// RawIngredient preserves the original source text; Parsed is set only when a
// component could confidently decompose it.
type RawIngredient struct {
	Raw    string            `json:"raw"`
	Parsed *ParsedIngredient `json:"parsed,omitempty"`
}

// ExtractedRecipe is the pipeline's universal output shape. Values are
// request-scoped: built fresh per extraction call and never mutated after
// being returned.
type ExtractedRecipe struct {
	Title        string                `json:"title"`
	ImageURL     string                `json:"imageUrl,omitempty"`
	Ingredients  []RawIngredient       `json:"ingredients"`
	Instructions []string              `json:"instructions"`
	Servings     int                   `json:"servings"`
	PrepTime     int                   `json:"prepTime"`
	CookTime     int                   `json:"cookTime"`
	Confidence   map[string]Confidence `json:"confidence"`
	Method       ExtractionMethod      `json:"extractionMethod"`
}

// YouTubeRecipe is the video-extraction output: ExtractedRecipe without
// image/method provenance, plus a free-text caveat surfaced to the user.
type YouTubeRecipe struct {
	Title           string                `json:"title"`
	Ingredients     []RawIngredient       `json:"ingredients"`
	Instructions    []string              `json:"instructions"`
	Servings        int                   `json:"servings"`
	PrepTime        int                   `json:"prepTime"`
	CookTime        int                   `json:"cookTime"`
	Confidence      map[string]Confidence `json:"confidence"`
	ExtractionNotes string                `json:"extractionNotes,omitempty"`
}

// YouTubeRecipePreview is the assembled success payload of the video flow.
type YouTubeRecipePreview struct {
	YouTubeRecipe
	VideoID      string `json:"videoId"`
	VideoTitle   string `json:"videoTitle"`
	ThumbnailURL string `json:"thumbnailUrl"`
	SourceURL    string `json:"sourceUrl"`
}

// ExtractionResult is the tagged value every orchestrator returns. Expected
// failures are values here, never panics or raw errors.
type ExtractionResult struct {
	Success bool             `json:"success"`
	Data    *ExtractedRecipe `json:"data,omitempty"`
	Err     *ExtractionError `json:"error,omitempty"`
}

// Ok wraps a successful extraction.
func Ok(data *ExtractedRecipe) ExtractionResult {
	return ExtractionResult{Success: true, Data: data}
}

// Fail wraps a typed failure.
func Fail(t ExtractionErrorType, msg string) ExtractionResult {
	return ExtractionResult{Err: NewExtractionError(t, msg)}
}

// FailErr wraps an error, coercing it to a typed ExtractionError.
func FailErr(err error) ExtractionResult {
	return ExtractionResult{Err: AsExtractionError(err)}
}

// VideoMetadata is what the video platform reports for one video.
type VideoMetadata struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Duration     int    `json:"duration"` // seconds
	ChannelTitle string `json:"channelTitle"`
}

// Recipe is the datastore record an extraction is saved as.
type Recipe struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	ImageURL     string                `json:"imageUrl,omitempty"`
	SourceURL    string                `json:"sourceUrl,omitempty"`
	Ingredients  []RawIngredient       `json:"ingredients"`
	Instructions []string              `json:"instructions"`
	Servings     int                   `json:"servings"`
	PrepTime     int                   `json:"prepTime"`
	CookTime     int                   `json:"cookTime"`
	Confidence   map[string]Confidence `json:"confidence,omitempty"`
	Method       ExtractionMethod      `json:"extractionMethod,omitempty"`
}
