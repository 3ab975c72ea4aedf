package models

import (
	"errors"
	"fmt"
)

type ItemCategory string

const (
	ItemCategoryFMCG        ItemCategory = "FMCG"
	ItemCategoryGarments    ItemCategory = "Garments"
	ItemCategoryGrocery     ItemCategory = "Grocery"
	ItemCategoryElectronics ItemCategory = "Electronics"
	ItemCategoryOther       ItemCategory = "Other"
)

func (c ItemCategory) Valid() bool {
	switch c {
	case ItemCategoryFMCG, ItemCategoryGarments, ItemCategoryGrocery, ItemCategoryElectronics, ItemCategoryOther:
		return true
	}
	return false
}

// categorySpecKeys lists the attributes a category's specs document must carry.
// ItemCategoryOther is an open map and accepts anything.
var categorySpecKeys = map[ItemCategory][]string{
	ItemCategoryFMCG:        {"cartons", "items_per_carton"},
	ItemCategoryGarments:    {"type", "rack"},
	ItemCategoryGrocery:     {"bags", "weight_per_bag"},
	ItemCategoryElectronics: {"brand", "warranty_months"},
}

// ValidateSpecs enforces the category-dependent shape of an item's specs document
// at construction time instead of storing an untyped blob unchecked.
func ValidateSpecs(category ItemCategory, specs SpecsDocument) error {
	if !category.Valid() {
		return fmt.Errorf("%w: unknown item category %q", ErrValidation, string(category))
	}
	required, ok := categorySpecKeys[category]
	if !ok {
		return nil
	}
	for _, key := range required {
		if _, present := specs[key]; !present {
			return fmt.Errorf("%w: category %s requires spec %q", ErrValidation, category, key)
		}
	}
	return nil
}

// ErrValidation is the root of all caller-input failures. Controllers map
// anything matching it to a 400 response before any mutation is attempted.
var ErrValidation = errors.New("validation failed")
