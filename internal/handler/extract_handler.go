package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkful/internal/domain"
	"forkful/internal/service"
)

// maxImageBytes caps cookbook-page uploads.
const maxImageBytes = 10 << 20

// ExtractHandler serves the recipe import and conversion endpoints.
type ExtractHandler struct {
	imports service.ImportService
}

// NewExtractHandler creates an ExtractHandler.
func NewExtractHandler(imports service.ImportService) *ExtractHandler {
	return &ExtractHandler{imports: imports}
}

type webExtractRequest struct {
	URL string `json:"url" binding:"required"`
}

type youtubeExtractRequest struct {
	// URL or bare 11-character video ID.
	Video string `json:"video" binding:"required"`
}

type convertRequest struct {
	Diet string `json:"diet" binding:"required"`
}

type extractResponse struct {
	Recipe   *domain.ExtractedRecipe `json:"recipe"`
	RecipeID string                  `json:"recipeId,omitempty"`
}

// ExtractWeb runs the web-URL waterfall.
func (h *ExtractHandler) ExtractWeb(c *gin.Context) {
	var req webExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	res, saved := h.imports.ImportFromWeb(c.Request.Context(), req.URL)
	if !res.Success {
		RespondExtractionError(c, res.Err)
		return
	}
	resp := extractResponse{Recipe: res.Data}
	if saved != nil {
		resp.RecipeID = saved.ID
	}
	RespondCreated(c, resp)
}

// ExtractYouTube runs the video extraction flow.
func (h *ExtractHandler) ExtractYouTube(c *gin.Context) {
	var req youtubeExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	preview, eerr := h.imports.ImportFromYouTube(c.Request.Context(), req.Video)
	if eerr != nil {
		RespondExtractionError(c, eerr)
		return
	}
	RespondCreated(c, preview)
}

// ExtractImage accepts a multipart cookbook-page photo.
func (h *ExtractHandler) ExtractImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "image file is required")
		return
	}
	if fileHeader.Size > maxImageBytes {
		RespondError(c, http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "image exceeds 10 MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read image")
		return
	}
	defer func() { _ = file.Close() }()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not read image")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	res, saved := h.imports.ImportFromImage(c.Request.Context(), image, mimeType)
	if !res.Success {
		RespondExtractionError(c, res.Err)
		return
	}
	resp := extractResponse{Recipe: res.Data}
	if saved != nil {
		resp.RecipeID = saved.ID
	}
	RespondCreated(c, resp)
}

// ConvertDiet rewrites a stored recipe for a target diet.
func (h *ExtractHandler) ConvertDiet(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	diet, ok := domain.ParseDietType(req.Diet)
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_DIET",
			"diet must be one of: vegetarian, vegan, gluten-free")
		return
	}

	conv, err := h.imports.ConvertDiet(c.Request.Context(), c.Param("id"), diet)
	if err != nil {
		if ee := extractionErr(err); ee != nil {
			RespondExtractionError(c, ee)
			return
		}
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, conv)
}

// GetRecipe returns a stored recipe.
func (h *ExtractHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.imports.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, recipe)
}

// ListRecipes returns all stored recipes.
func (h *ExtractHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.imports.ListRecipes(c.Request.Context())
	if err != nil {
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, recipes)
}

func extractionErr(err error) *domain.ExtractionError {
	var ee *domain.ExtractionError
	if errors.As(err, &ee) {
		return ee
	}
	return nil
}
