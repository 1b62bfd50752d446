package model

import (
	"encoding/json"
	"strings"
)

// Item categories that count as produce
const (
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"
)

// ExtractedInvoiceItem is one line item recovered from an uploaded invoice
type ExtractedInvoiceItem struct {
	ID                 string `yaml:"id" json:"id,omitempty"`
	Name               string `yaml:"name" json:"name"`
	Quantity           int    `yaml:"quantity" json:"quantity"`
	Category           string `yaml:"category" json:"category,omitempty"`
	IsVegetableOrFruit bool   `yaml:"is_vegetable_or_fruit" json:"is_vegetable_or_fruit"`
}

// UnmarshalJSON tolerates numeric ids and quantities sent as strings
func (e *ExtractedInvoiceItem) UnmarshalJSON(data []byte) error {
	type plain ExtractedInvoiceItem
	aux := struct {
		*plain
		ID       json.RawMessage `json:"id"`
		Quantity json.RawMessage `json:"quantity"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.ID = decodeID(aux.ID)
	e.Quantity = decodeInt(aux.Quantity)
	return nil
}

// Key identifies the item for selection: its id, or its name when it has none
func (e ExtractedInvoiceItem) Key() string {
	if e.ID != "" {
		return e.ID
	}
	return e.Name
}

// IsProduce reports whether the item is a vegetable or fruit. The category
// decides; the explicit flag is only used for items without one.
func (e ExtractedInvoiceItem) IsProduce() bool {
	switch strings.ToLower(strings.TrimSpace(e.Category)) {
	case CategoryVegetable, CategoryFruit:
		return true
	case "":
		return e.IsVegetableOrFruit
	}
	return false
}

// CommitQuantity is the quantity to store, defaulting to 1
func (e ExtractedInvoiceItem) CommitQuantity() int {
	if e.Quantity <= 0 {
		return 1
	}
	return e.Quantity
}
