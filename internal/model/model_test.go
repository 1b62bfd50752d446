package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRecipeDecodesCanonicalShape(t *testing.T) {
	var r Recipe
	err := json.Unmarshal([]byte(`{
		"id": "r1",
		"name": "Dal",
		"items": ["lentils", "cumin"],
		"instructions": ["rinse", "simmer"],
		"cooking_time": 30,
		"tags": ["vegan"],
		"is_fav": true,
		"is_veg": true,
		"is_recipe": true
	}`), &r)
	require.NoError(t, err)

	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, StringList{"lentils", "cumin"}, r.Items)
	assert.Equal(t, StringList{"rinse", "simmer"}, r.Instructions)
	assert.Equal(t, 30, r.CookingTime)
	assert.True(t, r.IsFav)
}

func TestRecipeDecodesAliases(t *testing.T) {
	var r Recipe
	err := json.Unmarshal([]byte(`{
		"_id": {"$oid": "65f0"},
		"name": "Toast",
		"ingredients": ["bread"],
		"steps": "toast the bread\n\n  butter it  ",
		"cooking_time": "5"
	}`), &r)
	require.NoError(t, err)

	assert.Equal(t, "65f0", r.ID)
	assert.Equal(t, StringList{"bread"}, r.Items)
	assert.Equal(t, StringList{"toast the bread", "butter it"}, r.Instructions)
	assert.Equal(t, 5, r.CookingTime)
}

func TestRecipeCanonicalKeyWins(t *testing.T) {
	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","items":["a"],"ingredients":["b"]}`), &r))
	assert.Equal(t, StringList{"a"}, r.Items)
}

func TestRecipeEncodesCanonicalShape(t *testing.T) {
	data, err := json.Marshal(Recipe{Name: "Soup", Items: StringList{"leek"}, Instructions: StringList{"boil"}})
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, []interface{}{"leek"}, out["items"])
	assert.NotContains(t, out, "ingredients")
	assert.NotContains(t, out, "id")
	assert.Equal(t, false, out["is_fav"])
}

func TestIngredientDecodesLegacyID(t *testing.T) {
	var i Ingredient
	err := json.Unmarshal([]byte(`{"_id":"abc","name":"Tomato","quantity":"3","is_vegetable_or_fruit":true,"itemAdded":"Mon, 05 Oct 2026 00:00:00 GMT"}`), &i)
	require.NoError(t, err)

	assert.Equal(t, "abc", i.ID)
	assert.Equal(t, 3, i.Quantity)
	assert.Equal(t, "2026-10-05", i.ItemAdded.String())
}

func TestDateJSON(t *testing.T) {
	d := NewDate(time.Date(2026, 3, 9, 18, 30, 0, 0, time.UTC))
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-09"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-09T23:00:00Z"`), &back))
	assert.True(t, back.Equal(d.Time))

	var zero Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &zero))
	assert.True(t, zero.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &zero))
}

func TestStringListRejectsObjects(t *testing.T) {
	var l StringList
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &l))
}

func TestRecipeTypes(t *testing.T) {
	assert.True(t, RecipeTypeExpiring.Valid())
	assert.False(t, RecipeType(4).Valid())
	assert.Equal(t, "Surprise Me", RecipeTypeSurprise.String())
}

func TestExtractedInvoiceItem(t *testing.T) {
	var item ExtractedInvoiceItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"name":"Apples","quantity":"2.0","category":"Fruit"}`), &item))

	assert.Equal(t, "7", item.Key())
	assert.Equal(t, 2, item.CommitQuantity())
	assert.True(t, item.IsProduce())

	unnamed := ExtractedInvoiceItem{Name: "Rice", Category: "grain"}
	assert.Equal(t, "Rice", unnamed.Key())
	assert.Equal(t, 1, unnamed.CommitQuantity())
	assert.False(t, unnamed.IsProduce())
}

func TestSplitByKind(t *testing.T) {
	produce, other := SplitByKind([]Ingredient{
		{Name: "Kale", IsVegetableOrFruit: true},
		{Name: "Salt"},
		{Name: "Pear", IsVegetableOrFruit: true},
	})
	assert.Len(t, produce, 2)
	assert.Equal(t, "Salt", other[0].Name)
}

func TestModelsPersistWithGorm(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Ingredient{}, &Recipe{}))

	added := NewDate(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Create(&Ingredient{ID: "i1", Name: "Milk", Quantity: 1, ItemAdded: added}).Error)
	require.NoError(t, db.Create(&Recipe{ID: "r1", Name: "Pancakes", Items: StringList{"milk", "flour"}}).Error)

	var ing Ingredient
	require.NoError(t, db.First(&ing, "id = ?", "i1").Error)
	assert.Equal(t, "2026-01-02", ing.ItemAdded.String())

	var rec Recipe
	require.NoError(t, db.First(&rec, "id = ?", "r1").Error)
	assert.Equal(t, StringList{"milk", "flour"}, rec.Items)
	assert.Equal(t, StringList{}, rec.Instructions)
}

func TestExtractedInvoiceItemFlagWithoutCategory(t *testing.T) {
	assert.True(t, ExtractedInvoiceItem{Name: "Figs", IsVegetableOrFruit: true}.IsProduce())
	assert.False(t, ExtractedInvoiceItem{Name: "Jam", Category: "pantry", IsVegetableOrFruit: true}.IsProduce())
}

func TestPartialDecodeKeepsExistingFields(t *testing.T) {
	r := Recipe{ID: "r1", Name: "Stew", CookingTime: 30}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Soup","is_fav":true}`), &r))
	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, 30, r.CookingTime)
	assert.Equal(t, "Soup", r.Name)
	assert.True(t, r.IsFav)

	i := Ingredient{ID: "a1", Name: "Leeks", Quantity: 4}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Leeks","is_vegetable_or_fruit":true}`), &i))
	assert.Equal(t, "a1", i.ID)
	assert.Equal(t, 4, i.Quantity)
	assert.True(t, i.IsVegetableOrFruit)
}
