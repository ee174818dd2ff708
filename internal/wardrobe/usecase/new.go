package usecase

import (
	"sync"
	"time"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobe"
	"wardrobe-planner/internal/wardrobe/repository"
	"wardrobe-planner/pkg/collection"
	"wardrobe-planner/pkg/idgen"
	pkgLog "wardrobe-planner/pkg/log"
	"wardrobe-planner/pkg/reqseq"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	items *wardrobe.ItemCollection
	seq   *reqseq.Tracker
	now   func() time.Time

	mu sync.Mutex
	// unsynced holds ids of items the backend accepted without returning an
	// entity, so they only exist locally.
	unsynced map[string]bool
}

// New creates a new wardrobe UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	ids idgen.Generator,
	seq *reqseq.Tracker,
) wardrobe.UseCase {
	if seq == nil {
		seq = reqseq.New(0, 0)
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		items:    collection.New[model.WardrobeItem, *model.WardrobeItem](ids),
		seq:      seq,
		now:      time.Now,
		unsynced: map[string]bool{},
	}
}

func (uc *implUseCase) Items() *wardrobe.ItemCollection {
	return uc.items
}
