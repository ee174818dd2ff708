package usecase

import (
	"context"

	"wardrobe-planner/internal/account"
	"wardrobe-planner/internal/account/repository"
	"wardrobe-planner/internal/model"
)

func (uc *implUseCase) Profile(ctx context.Context) (model.Profile, error) {
	uc.mu.Lock()
	cached := uc.profile
	uc.mu.Unlock()
	if cached != nil {
		return cloneProfile(*cached), nil
	}

	p, err := uc.repo.GetProfile(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Profile: %v", err)
		return model.Profile{}, err
	}
	if p == nil {
		p = &model.Profile{}
	}
	uc.store(*p)
	return cloneProfile(*p), nil
}

func (uc *implUseCase) UpdateProfile(ctx context.Context, input account.ProfileInput) (model.Profile, error) {
	if input.Empty() {
		return model.Profile{}, account.ErrNothingToUpdate
	}

	p, err := uc.repo.UpdateProfile(ctx, repository.UpdateProfileOptions{
		FullName:         input.FullName,
		Gender:           input.Gender,
		Location:         input.Location,
		BodyType:         input.BodyType,
		StylePreferences: input.StylePreferences,
		FavoriteColors:   input.FavoriteColors,
		Bio:              input.Bio,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProfile: %v", err)
		return model.Profile{}, err
	}

	var next model.Profile
	if p != nil {
		next = *p
	} else {
		// No body: apply the changes to what we had.
		uc.mu.Lock()
		if uc.profile != nil {
			next = cloneProfile(*uc.profile)
		}
		uc.mu.Unlock()
		applyProfile(&next, input)
	}
	uc.store(next)
	return cloneProfile(next), nil
}

func (uc *implUseCase) store(p model.Profile) {
	c := cloneProfile(p)
	uc.mu.Lock()
	uc.profile = &c
	uc.mu.Unlock()
}

func applyProfile(p *model.Profile, input account.ProfileInput) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.FullName, input.FullName)
	set(&p.Gender, input.Gender)
	set(&p.Location, input.Location)
	set(&p.BodyType, input.BodyType)
	set(&p.Bio, input.Bio)
	if input.StylePreferences != nil {
		p.StylePreferences = append([]string(nil), *input.StylePreferences...)
	}
	if input.FavoriteColors != nil {
		p.FavoriteColors = append([]string(nil), *input.FavoriteColors...)
	}
}

func cloneProfile(p model.Profile) model.Profile {
	if p.StylePreferences != nil {
		p.StylePreferences = append([]string(nil), p.StylePreferences...)
	}
	if p.FavoriteColors != nil {
		p.FavoriteColors = append([]string(nil), p.FavoriteColors...)
	}
	return p
}
