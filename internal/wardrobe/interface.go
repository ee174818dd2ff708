package wardrobe

import (
	"context"

	"wardrobe-planner/internal/model"
)

// UseCase defines the business logic interface for the wardrobe domain.
type UseCase interface {
	// Add validates the form, creates the item on the backend and appends it
	// to the local collection.
	Add(ctx context.Context, input AddItemInput) (model.WardrobeItem, error)

	// Edit sends only the changed fields and patches the local copy.
	Edit(ctx context.Context, input EditItemInput) (model.WardrobeItem, error)

	// ToggleFavorite flips the favorite flag locally and syncs it.
	ToggleFavorite(ctx context.Context, id model.ID) (model.WardrobeItem, error)

	// MarkWorn records a wear on the backend and takes the item's counters
	// from the backend's copy.
	MarkWorn(ctx context.Context, input WearInput) (model.WardrobeItem, error)

	Delete(ctx context.Context, id model.ID) error

	// Refresh replaces the local collection with the backend listing.
	Refresh(ctx context.Context) error

	List(ctx context.Context, input ListInput) (ListOutput, error)
	Get(ctx context.Context, id model.ID) (model.WardrobeItem, error)

	// Items exposes the collection for other domains (outfit building).
	Items() *ItemCollection
}
