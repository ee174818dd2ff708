package repository

import (
	"time"

	"wardrobe-planner/internal/model"
)

// ImageOptions is an optional photo to upload with the item.
type ImageOptions struct {
	Filename string
	Data     []byte
}

// CreateItemOptions holds the parameters for creating an item.
type CreateItemOptions struct {
	Item  model.WardrobeItem // ID, counters and dates are ignored
	Image *ImageOptions
}

// UpdateItemOptions holds the parameters for updating an item.
type UpdateItemOptions struct {
	Changes model.ItemChanges
	Image   *ImageOptions
}

// LogWearOptions describes one wear of an item.
type LogWearOptions struct {
	WornAt time.Time
	Notes  string
}
