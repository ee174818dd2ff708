package fakebackend

import (
	"strconv"
	"sync"

	"wardrobe-planner/internal/model"
)

type account struct {
	user     model.User
	password []byte
}

// store keeps every entity in insertion order. Ids are shared integers, as
// the real backend's are.
type store struct {
	mu       sync.Mutex
	lastID   int64
	accounts map[string]*account
	items    []model.WardrobeItem
	outfits  []model.Outfit
	feedback []model.Feedback
	wears    []model.WearEntry
	profiles map[model.ID]model.Profile
}

func newStore() *store {
	return &store{
		accounts: map[string]*account{},
		profiles: map[model.ID]model.Profile{},
	}
}

// nextID must be called with mu held.
func (s *store) nextID() model.ID {
	s.lastID++
	return model.ID(strconv.FormatInt(s.lastID, 10))
}

func (s *store) accountByID(id model.ID) (*account, bool) {
	for _, a := range s.accounts {
		if a.user.ID == id {
			return a, true
		}
	}
	return nil, false
}

func indexOf[T any](list []T, match func(T) bool) int {
	for i, v := range list {
		if match(v) {
			return i
		}
	}
	return -1
}
