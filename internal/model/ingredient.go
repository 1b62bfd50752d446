package model

import (
	"encoding/json"
	"math"
	"strings"
)

// Ingredient is one inventory item
type Ingredient struct {
	ID                 string `gorm:"primaryKey;size:64" json:"id"`
	Name               string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Quantity           int    `gorm:"not null;default:1" json:"quantity"`
	IsVegetableOrFruit bool   `gorm:"not null;default:false" json:"is_vegetable_or_fruit"`
	ItemAdded          Date   `gorm:"type:date" json:"itemAdded"`
}

// UnmarshalJSON accepts the legacy "_id" key as the identifier. Keys
// missing from data leave the current values in place.
func (i *Ingredient) UnmarshalJSON(data []byte) error {
	type plain Ingredient
	aux := struct {
		*plain
		ID       json.RawMessage `json:"id"`
		LegacyID json.RawMessage `json:"_id"`
		Quantity json.RawMessage `json:"quantity"`
	}{plain: (*plain)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if id := decodeID(aux.ID); id != "" {
		i.ID = id
	} else if id := decodeID(aux.LegacyID); id != "" {
		i.ID = id
	}
	if len(aux.Quantity) > 0 {
		i.Quantity = decodeInt(aux.Quantity)
	}
	return nil
}

// IngredientName is the accessor used for name filtering
func IngredientName(i Ingredient) string { return i.Name }

// SplitByKind partitions ingredients into vegetables/fruits and everything else,
// preserving order.
func SplitByKind(items []Ingredient) (produce, other []Ingredient) {
	for _, item := range items {
		if item.IsVegetableOrFruit {
			produce = append(produce, item)
		} else {
			other = append(other, item)
		}
	}
	return produce, other
}

// decodeID reads an identifier that may be a string, a number or a
// {"$oid": "..."} document.
func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var oid struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(raw, &oid); err == nil && oid.OID != "" {
		return oid.OID
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// decodeInt reads an integer sent as a number or a numeric string.
// Anything else decodes as 0.
func decodeInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(math.Round(f))
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n := json.Number(strings.TrimSpace(s))
		if v, err := n.Float64(); err == nil {
			return int(math.Round(v))
		}
	}
	return 0
}
