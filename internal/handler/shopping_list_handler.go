package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkful/internal/service"
	"forkful/internal/shoppinglist"
)

// ShoppingListHandler serves shopping-list views of stored recipes.
type ShoppingListHandler struct {
	imports service.ImportService
}

// NewShoppingListHandler creates a ShoppingListHandler.
func NewShoppingListHandler(imports service.ImportService) *ShoppingListHandler {
	return &ShoppingListHandler{imports: imports}
}

// Get returns the category-grouped shopping list as JSON.
func (h *ShoppingListHandler) Get(c *gin.Context) {
	recipe, err := h.imports.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, shoppinglist.Group(recipe.Ingredients))
}

// Export streams the shopping list as an XLSX workbook.
func (h *ShoppingListHandler) Export(c *gin.Context) {
	recipe, err := h.imports.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, code, msg := MapDomainError(err)
		RespondError(c, status, code, msg)
		return
	}

	var buf bytes.Buffer
	if err := shoppinglist.WriteXLSX(&buf, recipe); err != nil {
		RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping-list.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
