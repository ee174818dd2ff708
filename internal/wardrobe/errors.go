package wardrobe

import "errors"

// Domain-specific errors for the wardrobe package.
var (
	ErrMissingName     = errors.New("item name is required")
	ErrMissingBrand    = errors.New("item brand is required")
	ErrMissingCategory = errors.New("item category is required")
	ErrNegativePrice   = errors.New("item price must not be negative")
	ErrItemNotFound    = errors.New("item not found")
	ErrNothingToUpdate = errors.New("no fields to update")
	ErrStaleResponse   = errors.New("response superseded by a newer request")
)
