package usecase

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobe"
	"wardrobe-planner/internal/wardrobe/repository"
)

var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parsePrice reads the leading number in s. Text without one yields 0.
func parsePrice(s string) float64 {
	m := numberPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

// validateItem checks the fields every stored item must have.
func validateItem(item model.WardrobeItem) error {
	var errs []error
	if strings.TrimSpace(item.Name) == "" {
		errs = append(errs, wardrobe.ErrMissingName)
	}
	if strings.TrimSpace(item.Brand) == "" {
		errs = append(errs, wardrobe.ErrMissingBrand)
	}
	if strings.TrimSpace(item.Category) == "" {
		errs = append(errs, wardrobe.ErrMissingCategory)
	}
	if item.Price < 0 {
		errs = append(errs, wardrobe.ErrNegativePrice)
	}
	return errors.Join(errs...)
}

func imageOptions(in *wardrobe.ImageInput) *repository.ImageOptions {
	if in == nil || len(in.Data) == 0 {
		return nil
	}
	return &repository.ImageOptions{Filename: in.Filename, Data: in.Data}
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
