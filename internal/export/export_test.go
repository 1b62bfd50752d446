package export

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pageza/recipe-ai/internal/model"
)

var (
	testIngredients = []model.Ingredient{
		{ID: "1", Name: "Kale", Quantity: 2, IsVegetableOrFruit: true, ItemAdded: model.NewDate(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))},
		{ID: "2", Name: "Flour", Quantity: 1},
	}
	testRecipes = []model.Recipe{{
		ID:           "r1",
		Name:         "Kale Chips",
		Items:        model.StringList{"kale", "oil"},
		Instructions: model.StringList{"Tear.", "Bake."},
		CookingTime:  20,
		IsFav:        true,
		IsVeg:        true,
	}}
)

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("out/Inventory.XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = FormatFromPath("inventory.csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = FormatFromPath("inventory.json")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, IngredientsTable(testIngredients)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"1", "Kale", "2", "true", "2026-10-01"}, records[1])
	assert.Equal(t, "", records[2][4])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, IngredientsTable(testIngredients), RecipesTable(testRecipes)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Ingredients", "Recipes"}, f.GetSheetList())

	rows, err := f.GetRows("Recipes")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Kale Chips", rows[1][1])
	assert.Equal(t, "kale\noil", rows[1][3])
	assert.Equal(t, "20", rows[1][6])
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	err := WriteFile(filepath.Join(dir, "all.csv"), IngredientsTable(testIngredients), RecipesTable(testRecipes))
	assert.ErrorIs(t, err, ErrMultipleTables)

	path := filepath.Join(dir, "all.xlsx")
	require.NoError(t, WriteFile(path, IngredientsTable(testIngredients), RecipesTable(testRecipes)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Ingredients")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestFormatContentType(t *testing.T) {
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Contains(t, FormatXLSX.ContentType(), "spreadsheetml")
}
