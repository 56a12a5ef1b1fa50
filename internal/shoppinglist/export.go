// Package shoppinglist turns a recipe's ingredients into a category-grouped
// shopping list.
package shoppinglist

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"forkful/internal/domain"
)

// Item is one shopping-list line.
type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Group groups ingredients by category in the enum's display order. Unparsed
// ingredients land under other with their raw text, quantity 1, unit "item".
func Group(ingredients []domain.RawIngredient) map[domain.IngredientCategory][]Item {
	grouped := make(map[domain.IngredientCategory][]Item)
	for _, ing := range ingredients {
		if ing.Parsed != nil {
			cat := domain.NormalizeCategory(string(ing.Parsed.Category))
			grouped[cat] = append(grouped[cat], Item{
				Name:     ing.Parsed.Name,
				Quantity: ing.Parsed.Quantity,
				Unit:     ing.Parsed.Unit,
			})
			continue
		}
		grouped[domain.CategoryOther] = append(grouped[domain.CategoryOther], Item{
			Name:     ing.Raw,
			Quantity: 1,
			Unit:     "item",
		})
	}
	return grouped
}

const sheetName = "Shopping List"

// WriteXLSX renders the recipe's shopping list as an XLSX workbook with one
// section header per non-empty category.
func WriteXLSX(w io.Writer, recipe *domain.Recipe) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	row := 1
	set := func(col string, v any) {
		_ = f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), v)
	}

	set("A", recipe.Title)
	row += 2

	grouped := Group(recipe.Ingredients)
	for _, cat := range domain.Categories {
		items := grouped[cat]
		if len(items) == 0 {
			continue
		}
		set("A", strings.ToUpper(string(cat)))
		row++
		for _, item := range items {
			set("A", item.Name)
			set("B", item.Quantity)
			set("C", item.Unit)
			row++
		}
		row++ // blank line between sections
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
