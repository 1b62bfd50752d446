package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// StringList is an ordered list of strings stored as a JSON array
type StringList []string

// Value implements the driver.Valuer interface
func (a StringList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringList) Scan(value interface{}) error {
	if value == nil {
		*a = StringList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	return json.Unmarshal(raw, a)
}

// UnmarshalJSON accepts either an array or one block of text, which is split
// into its non-empty lines.
func (a *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*a = SplitLines(text)
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("expected string or array: %w", err)
	}
	out := make(StringList, 0, len(elems))
	for _, elem := range elems {
		var s string
		if err := json.Unmarshal(elem, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(bytes.TrimSpace(elem)))
	}
	*a = out
	return nil
}

// SplitLines returns the trimmed, non-empty lines of text
func SplitLines(text string) StringList {
	var out StringList
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// RecipeType selects how the backend generates a recipe
type RecipeType int

const (
	// RecipeTypeAvailable uses only ingredients already in the inventory
	RecipeTypeAvailable RecipeType = 1
	// RecipeTypeExpiring favours ingredients that are about to expire
	RecipeTypeExpiring RecipeType = 2
	// RecipeTypeSurprise invents a new dish
	RecipeTypeSurprise RecipeType = 3
)

// RecipeTypes lists the selectable types in display order
var RecipeTypes = []RecipeType{RecipeTypeAvailable, RecipeTypeExpiring, RecipeTypeSurprise}

// Valid reports whether t is one of the known types
func (t RecipeType) Valid() bool {
	return t >= RecipeTypeAvailable && t <= RecipeTypeSurprise
}

func (t RecipeType) String() string {
	switch t {
	case RecipeTypeAvailable:
		return "Use Available Ingredients"
	case RecipeTypeExpiring:
		return "Optimize for Expiring Ingredients"
	case RecipeTypeSurprise:
		return "Surprise Me"
	default:
		return fmt.Sprintf("RecipeType(%d)", int(t))
	}
}

// Recipe is a generated or user-authored recipe
type Recipe struct {
	ID           string     `gorm:"primaryKey;size:64" json:"id,omitempty"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	Items        StringList `gorm:"type:text" json:"items"`
	Instructions StringList `gorm:"type:text" json:"instructions"`
	Tags         StringList `gorm:"type:text" json:"tags,omitempty"`
	CookingTime  int        `json:"cooking_time,omitempty"`
	IsFav        bool       `gorm:"not null;default:false" json:"is_fav"`
	IsVeg        bool       `gorm:"not null;default:false" json:"is_veg"`
	IsRecipe     bool       `gorm:"not null;default:false" json:"is_recipe"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"-"`
}

// UnmarshalJSON accepts "ingredients" for items, "steps" for instructions
// and "_id" for id. The canonical key wins when both are present. Keys
// missing from data leave the current values in place.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	type plain Recipe
	aux := struct {
		*plain
		ID          json.RawMessage `json:"id"`
		LegacyID    json.RawMessage `json:"_id"`
		Ingredients StringList      `json:"ingredients"`
		Steps       StringList      `json:"steps"`
		CookingTime json.RawMessage `json:"cooking_time"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if id := decodeID(aux.ID); id != "" {
		r.ID = id
	} else if id := decodeID(aux.LegacyID); id != "" {
		r.ID = id
	}
	if r.Items == nil {
		r.Items = aux.Ingredients
	}
	if r.Instructions == nil {
		r.Instructions = aux.Steps
	}
	if len(aux.CookingTime) > 0 {
		r.CookingTime = decodeInt(aux.CookingTime)
	}
	return nil
}

// WithFavorite returns a copy of r with IsFav set to fav
func (r Recipe) WithFavorite(fav bool) Recipe {
	r.IsFav = fav
	return r
}

// RecipeName is the accessor used for name filtering
func RecipeName(r Recipe) string { return r.Name }

// CountFavorites returns how many recipes are marked favourite
func CountFavorites(recipes []Recipe) int {
	n := 0
	for _, r := range recipes {
		if r.IsFav {
			n++
		}
	}
	return n
}
