package rest

import (
	"context"

	"wardrobe-planner/internal/account/repository"
	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobeapi"
	pkgLog "wardrobe-planner/pkg/log"
)

type implRepository struct {
	client *wardrobeapi.Client
	l      pkgLog.Logger
}

// New creates the REST-backed account repository.
func New(client *wardrobeapi.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) GetProfile(ctx context.Context) (*model.Profile, error) {
	p, err := r.client.GetProfile(ctx)
	if err != nil {
		r.l.Errorf(ctx, "account rest repository: failed to get profile: %v", err)
		return nil, err
	}
	return p, nil
}

func (r *implRepository) UpdateProfile(ctx context.Context, opt repository.UpdateProfileOptions) (*model.Profile, error) {
	p, err := r.client.UpdateProfile(ctx, wardrobeapi.ProfileUpdate{
		FullName:         opt.FullName,
		Gender:           opt.Gender,
		Location:         opt.Location,
		BodyType:         opt.BodyType,
		StylePreferences: opt.StylePreferences,
		FavoriteColors:   opt.FavoriteColors,
		Bio:              opt.Bio,
	})
	if err != nil {
		r.l.Errorf(ctx, "account rest repository: failed to update profile: %v", err)
		return nil, err
	}
	return p, nil
}

func (r *implRepository) Suggestions(ctx context.Context, opt repository.SuggestionOptions) (*model.WardrobeSuggestions, error) {
	s, err := r.client.WardrobeSuggestions(ctx, wardrobeapi.Location{Lat: opt.Lat, Lon: opt.Lon})
	if err != nil {
		r.l.Errorf(ctx, "account rest repository: failed to fetch suggestions: %v", err)
		return nil, err
	}
	return s, nil
}

func (r *implRepository) Statistics(ctx context.Context) (*model.WardrobeStats, error) {
	return r.client.Statistics(ctx)
}

func (r *implRepository) ListWearHistory(ctx context.Context, opt repository.WearHistoryOptions) ([]model.WearEntry, error) {
	list, err := r.client.ListWearHistory(ctx, wardrobeapi.WearQuery{
		ItemID:   opt.ItemID,
		OutfitID: opt.OutfitID,
		Skip:     opt.Skip,
		Limit:    opt.Limit,
	})
	if err != nil {
		r.l.Errorf(ctx, "account rest repository: failed to list wear history: %v", err)
		return nil, err
	}
	return list, nil
}

func (r *implRepository) DeleteWearEntry(ctx context.Context, id model.ID) error {
	return r.client.DeleteWearEntry(ctx, id)
}

func (r *implRepository) ItemWearFrequency(ctx context.Context) ([]model.ItemWearFrequency, error) {
	return r.client.ItemWearFrequency(ctx)
}

func (r *implRepository) CategoryUsage(ctx context.Context) ([]model.CategoryUsage, error) {
	return r.client.CategoryUsage(ctx)
}
