package usecase

import (
	"sync"

	"wardrobe-planner/internal/account"
	"wardrobe-planner/internal/account/repository"
	"wardrobe-planner/internal/model"
	pkgLog "wardrobe-planner/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	items   account.ItemSource
	outfits account.OutfitCounter

	mu      sync.Mutex
	profile *model.Profile
}

// New creates a new account UseCase instance. items and outfits feed the
// local statistics fallback and may be nil.
func New(l pkgLog.Logger, repo repository.Repository, items account.ItemSource, outfits account.OutfitCounter) account.UseCase {
	return &implUseCase{
		l:       l,
		repo:    repo,
		items:   items,
		outfits: outfits,
	}
}
