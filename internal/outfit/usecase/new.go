package usecase

import (
	"sync"
	"time"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit"
	"wardrobe-planner/internal/outfit/repository"
	"wardrobe-planner/pkg/collection"
	"wardrobe-planner/pkg/idgen"
	"wardrobe-planner/pkg/localstore"
	pkgLog "wardrobe-planner/pkg/log"
	"wardrobe-planner/pkg/reqseq"
)

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	store   *localstore.Bridge
	outfits *outfit.OutfitCollection
	seq     *reqseq.Tracker
	now     func() time.Time

	mu sync.Mutex
	// unsynced holds ids of outfits created without a backend entity.
	unsynced map[string]bool
}

// New creates a new outfit UseCase instance. Saved outfits go to store.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	store *localstore.Bridge,
	ids idgen.Generator,
	seq *reqseq.Tracker,
) outfit.UseCase {
	if seq == nil {
		seq = reqseq.New(0, 0)
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		store:   store,
		outfits: collection.New[model.Outfit, *model.Outfit](ids),
		seq:     seq,
		now:     time.Now,

		unsynced: map[string]bool{},
	}
}

func (uc *implUseCase) markUnsynced(id string, unsynced bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if unsynced {
		uc.unsynced[id] = true
	} else {
		delete(uc.unsynced, id)
	}
}

func (uc *implUseCase) isUnsynced(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.unsynced[id]
}

func (uc *implUseCase) Outfits() *outfit.OutfitCollection {
	return uc.outfits
}
