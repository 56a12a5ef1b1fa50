package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"forkful/internal/domain"
	"forkful/internal/handler"
	"forkful/mocks"
)

func newShoppingListRouter(svc *mocks.MockImportService) *gin.Engine {
	h := handler.NewShoppingListHandler(svc)
	r := gin.New()
	r.GET("/api/v1/recipes/:id/shopping-list", h.Get)
	r.GET("/api/v1/recipes/:id/shopping-list.xlsx", h.Export)
	return r
}

func stockedRecipe() *domain.Recipe {
	return &domain.Recipe{
		ID:    "r-1",
		Title: "Stir Fry",
		Ingredients: []domain.RawIngredient{
			{Raw: "2 bell peppers", Parsed: &domain.ParsedIngredient{
				Name: "bell pepper", Quantity: 2, Unit: "item", Category: domain.CategoryProduce}},
			{Raw: "soy sauce to taste"},
		},
	}
}

func TestShoppingListGet(t *testing.T) {
	svc := new(mocks.MockImportService)
	svc.On("GetRecipe", mock.Anything, "r-1").Return(stockedRecipe(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/r-1/shopping-list", nil)
	w := httptest.NewRecorder()
	newShoppingListRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)

	groups := resp.Data.(map[string]any)
	assert.Contains(t, groups, "produce")
	assert.Contains(t, groups, "other")
}

func TestShoppingListGet_NotFound(t *testing.T) {
	svc := new(mocks.MockImportService)
	svc.On("GetRecipe", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/missing/shopping-list", nil)
	w := httptest.NewRecorder()
	newShoppingListRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShoppingListExport(t *testing.T) {
	svc := new(mocks.MockImportService)
	svc.On("GetRecipe", mock.Anything, "r-1").Return(stockedRecipe(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/r-1/shopping-list.xlsx", nil)
	w := httptest.NewRecorder()
	newShoppingListRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "shopping-list.xlsx")
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")

	// the payload is a readable workbook
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Shopping List")
	require.NoError(t, err)
	assert.Equal(t, "Stir Fry", rows[0][0])
}
