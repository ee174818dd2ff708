// Package localstore persists small client-side lists (saved outfits, weekly
// plans, occasion outfits) and the session token behind a pluggable Storage.
package localstore

import (
	"context"
	"errors"
)

// Keys used in durable local storage.
const (
	KeyToken           = "token"
	KeySavedOutfits    = "savedOutfits"
	KeyWeeklyPlans     = "weeklyPlans"
	KeyOccasionOutfits = "occasionOutfits"
)

var (
	ErrNotFound   = errors.New("localstore: key not found")
	ErrInvalidKey = errors.New("localstore: invalid key")
)

// Storage is a string key/value store. Get returns ErrNotFound for absent keys.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
