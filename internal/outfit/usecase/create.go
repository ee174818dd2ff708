package usecase

import (
	"context"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit"
	"wardrobe-planner/internal/outfit/repository"
	"wardrobe-planner/pkg/apiclient"
)

func (uc *implUseCase) Create(ctx context.Context, input outfit.CreateInput) (model.Outfit, error) {
	if err := outfit.Validate(input.Name, len(input.ItemIDs)); err != nil {
		return model.Outfit{}, err
	}

	o := model.Outfit{
		Name:      input.Name,
		ItemIDs:   append([]model.ID(nil), input.ItemIDs...),
		Tags:      model.SplitTags(input.TagsText),
		ImageURL:  input.ImageURL,
		CreatedAt: model.NewTime(uc.now().UTC()),
		Category:  input.Category,
		Season:    input.Season,
		Occasion:  input.Occasion,
		Notes:     input.Notes,
	}

	created, err := uc.repo.CreateOutfit(ctx, repository.CreateOutfitOptions{
		Name:     o.Name,
		ItemIDs:  o.ItemIDs,
		Tags:     o.Tags,
		ImageURL: o.ImageURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create: %v", err)
		return model.Outfit{}, err
	}

	synced := created != nil && !created.ID.IsZero()
	if synced {
		o = withOrganizer(*created, o)
	}
	stored, err := uc.outfits.Insert(o)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create: insert: %v", err)
		return model.Outfit{}, err
	}
	if !synced {
		uc.markUnsynced(string(stored.ID), true)
		uc.l.Warnf(ctx, "uc.Create: backend returned no outfit, keeping placeholder %s", stored.ID)
	}
	return stored, nil
}

func (uc *implUseCase) Update(ctx context.Context, input outfit.UpdateInput) (model.Outfit, error) {
	id := string(input.ID)
	current, ok := uc.outfits.Get(id)
	if !ok {
		return model.Outfit{}, outfit.ErrOutfitNotFound
	}

	opt := repository.UpdateOutfitOptions{
		Name:     input.Name,
		ItemIDs:  input.ItemIDs,
		ImageURL: input.ImageURL,
	}
	if input.TagsText != nil {
		tags := model.SplitTags(*input.TagsText)
		opt.Tags = &tags
	}
	local := input.Category != nil || input.Season != nil || input.Occasion != nil || input.Notes != nil
	if opt.Empty() && !local {
		return model.Outfit{}, outfit.ErrNothingToUpdate
	}

	apply := func(o *model.Outfit) {
		if opt.Name != nil {
			o.Name = *opt.Name
		}
		if opt.ItemIDs != nil {
			o.ItemIDs = append([]model.ID(nil), (*opt.ItemIDs)...)
		}
		if opt.Tags != nil {
			o.Tags = append([]string(nil), (*opt.Tags)...)
		}
		if opt.ImageURL != nil {
			o.ImageURL = *opt.ImageURL
		}
		setIf(&o.Category, input.Category)
		setIf(&o.Season, input.Season)
		setIf(&o.Occasion, input.Occasion)
		setIf(&o.Notes, input.Notes)
	}

	merged := current.Clone()
	apply(&merged)
	if err := outfit.Validate(merged.Name, len(merged.ItemIDs)+len(merged.Items)); err != nil {
		return model.Outfit{}, err
	}

	if opt.Empty() {
		return uc.outfits.Patch(id, apply)
	}
	if uc.isUnsynced(id) {
		uc.l.Warnf(ctx, "uc.Update: outfit %s exists only locally, not syncing", id)
		return uc.outfits.Patch(id, apply)
	}

	ticket := uc.seq.Begin(id)
	defer uc.seq.Done(ticket)

	updated, err := uc.repo.UpdateOutfit(ctx, input.ID, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update: %v", err)
		return model.Outfit{}, err
	}
	if !uc.seq.Current(ticket) {
		uc.l.Warnf(ctx, "uc.Update: discarding stale response for outfit %s", id)
		return model.Outfit{}, outfit.ErrStaleResponse
	}

	if updated != nil && !updated.ID.IsZero() {
		return uc.outfits.Replace(id, withOrganizer(*updated, merged))
	}
	return uc.outfits.Patch(id, apply)
}

func (uc *implUseCase) Delete(ctx context.Context, id model.ID) error {
	key := string(id)
	if _, ok := uc.outfits.Get(key); !ok {
		return outfit.ErrOutfitNotFound
	}

	if !uc.isUnsynced(key) {
		ticket := uc.seq.Begin(key)
		defer uc.seq.Done(ticket)

		if err := uc.repo.DeleteOutfit(ctx, id); err != nil && !apiclient.IsNotFound(err) {
			uc.l.Errorf(ctx, "uc.Delete: %v", err)
			return err
		}
	}
	if err := uc.outfits.Remove(key); err != nil {
		return outfit.ErrOutfitNotFound
	}
	uc.markUnsynced(key, false)
	return nil
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// withOrganizer copies the client-side organiser fields of local onto the
// backend entity, which does not store them.
func withOrganizer(backend, local model.Outfit) model.Outfit {
	if backend.Category == "" {
		backend.Category = local.Category
	}
	if backend.Season == "" {
		backend.Season = local.Season
	}
	if backend.Occasion == "" {
		backend.Occasion = local.Occasion
	}
	if backend.Notes == "" {
		backend.Notes = local.Notes
	}
	if backend.Rating == 0 {
		backend.Rating = local.Rating
	}
	if backend.TimesWorn == 0 {
		backend.TimesWorn = local.TimesWorn
	}
	if backend.LastWorn.IsZero() {
		backend.LastWorn = local.LastWorn
	}
	if backend.Items == nil {
		backend.Items = local.Items
	}
	backend.Favorite = backend.Favorite || local.Favorite
	return backend
}
