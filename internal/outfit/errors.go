package outfit

import "errors"

// Domain-specific errors for the outfit package.
var (
	ErrMissingName     = errors.New("outfit name is required")
	ErrNoItems         = errors.New("select at least one item")
	ErrOutfitNotFound  = errors.New("outfit not found")
	ErrSavedNotFound   = errors.New("saved outfit not found")
	ErrNothingToUpdate = errors.New("no fields to update")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrStaleResponse   = errors.New("response superseded by a newer request")
)
