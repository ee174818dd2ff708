package usecase

import (
	"context"
	"errors"

	"wardrobe-planner/internal/account"
	"wardrobe-planner/internal/account/repository"
	"wardrobe-planner/internal/model"
)

func (uc *implUseCase) Suggestions(ctx context.Context, input account.SuggestInput) (model.WardrobeSuggestions, error) {
	var errs []error
	if input.Lat != nil && (*input.Lat < -90 || *input.Lat > 90) {
		errs = append(errs, account.ErrInvalidLatitude)
	}
	if input.Lon != nil && (*input.Lon < -180 || *input.Lon > 180) {
		errs = append(errs, account.ErrInvalidLongitude)
	}
	if err := errors.Join(errs...); err != nil {
		return model.WardrobeSuggestions{}, err
	}

	s, err := uc.repo.Suggestions(ctx, repository.SuggestionOptions{Lat: input.Lat, Lon: input.Lon})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Suggestions: %v", err)
		return model.WardrobeSuggestions{}, err
	}
	if s == nil {
		return model.WardrobeSuggestions{NewOutfitIdeas: []string{}, ItemsToAcquire: []string{}}, nil
	}
	return *s, nil
}
