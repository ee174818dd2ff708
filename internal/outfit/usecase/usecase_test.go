package usecase_test

import (
	"context"
	"errors"
	"testing"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit"
	"wardrobe-planner/internal/outfit/repository"
	"wardrobe-planner/internal/outfit/usecase"
	"wardrobe-planner/internal/view"
	"wardrobe-planner/pkg/idgen"
	"wardrobe-planner/pkg/localstore"
	pkgLog "wardrobe-planner/pkg/log"
)

func newUseCase(repo *mockRepo) (outfit.UseCase, *localstore.Memory) {
	mem := localstore.NewMemory()
	bridge := localstore.NewBridge(mem, pkgLog.NewNop(), localstore.WithIDGenerator(&idgen.Sequence{Prefix: "saved"}))
	return usecase.New(pkgLog.NewNop(), repo, bridge, &idgen.Sequence{Prefix: "outfit"}, nil), mem
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Validation", func(t *testing.T) {
		repo := &mockRepo{}
		uc, _ := newUseCase(repo)
		_, err := uc.Create(ctx, outfit.CreateInput{Name: "Office"})
		if !errors.Is(err, outfit.ErrNoItems) {
			t.Errorf("expected ErrNoItems, got %v", err)
		}
		_, err = uc.Create(ctx, outfit.CreateInput{ItemIDs: model.IDs("1")})
		if !errors.Is(err, outfit.ErrMissingName) {
			t.Errorf("expected ErrMissingName, got %v", err)
		}
		if len(repo.creates) != 0 {
			t.Errorf("expected no backend calls, got %d", len(repo.creates))
		}
	})

	t.Run("Backend Entity Keeps Organizer Fields", func(t *testing.T) {
		repo := &mockRepo{createFunc: func(opt repository.CreateOutfitOptions) (*model.Outfit, error) {
			return &model.Outfit{ID: "12", Name: opt.Name, ItemIDs: opt.ItemIDs, Tags: opt.Tags}, nil
		}}
		uc, _ := newUseCase(repo)
		got, err := uc.Create(ctx, outfit.CreateInput{
			Name:     "Office",
			ItemIDs:  model.IDs("1", "2"),
			TagsText: "work, smart",
			Occasion: "work",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "12" || got.Occasion != "work" || len(got.Tags) != 2 {
			t.Errorf("unexpected outfit: %+v", got)
		}
	})

	t.Run("Placeholder Without Backend Body", func(t *testing.T) {
		uc, _ := newUseCase(&mockRepo{})
		got, err := uc.Create(ctx, outfit.CreateInput{Name: "Office", ItemIDs: model.IDs("1")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "outfit-1" || got.CreatedAt.IsZero() {
			t.Errorf("unexpected placeholder: %+v", got)
		}
	})
}

func TestOrganize(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{outfits: []model.Outfit{
		{ID: "1", Name: "Brunch", ItemIDs: model.IDs("1")},
		{ID: "2", Name: "Gala", ItemIDs: model.IDs("2")},
	}}
	uc, _ := newUseCase(repo)
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if _, err := uc.Rate(ctx, "2", 5); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if _, err := uc.Rate(ctx, "2", 6); !errors.Is(err, outfit.ErrInvalidRating) {
		t.Errorf("expected ErrInvalidRating, got %v", err)
	}
	if _, err := uc.ToggleFavorite(ctx, "1"); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	worn, err := uc.MarkWorn(ctx, "1")
	if err != nil {
		t.Fatalf("worn: %v", err)
	}
	if worn.TimesWorn != 1 || worn.LastWorn.IsZero() {
		t.Errorf("unexpected worn state: %+v", worn)
	}
	if len(repo.wears) != 1 || repo.wears[0] != "1" {
		t.Errorf("wear not logged on the backend: %v", repo.wears)
	}
	if _, err := uc.ToggleFavorite(ctx, "404"); !errors.Is(err, outfit.ErrOutfitNotFound) {
		t.Errorf("expected ErrOutfitNotFound, got %v", err)
	}

	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	out, err := uc.List(ctx, outfit.ListInput{Query: view.OutfitQuery{Sort: view.SortRating}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.Outfits[0].ID != "2" || out.Outfits[0].Rating != 5 {
		t.Errorf("rating should survive refresh and sort first: %+v", out.Outfits)
	}

	favs, _ := uc.List(ctx, outfit.ListInput{Query: view.OutfitQuery{FavoritesOnly: true}})
	if len(favs.Outfits) != 1 || favs.Outfits[0].ID != "1" {
		t.Errorf("unexpected favorites: %+v", favs.Outfits)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{outfits: []model.Outfit{{ID: "1", Name: "Brunch", ItemIDs: model.IDs("1")}}}
	uc, _ := newUseCase(repo)
	uc.Refresh(ctx)

	occasion := "casual"
	if _, err := uc.Update(ctx, outfit.UpdateInput{ID: "1", Occasion: &occasion}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.updates) != 0 {
		t.Errorf("organiser-only update should stay local, got %d calls", len(repo.updates))
	}

	empty := []model.ID{}
	if _, err := uc.Update(ctx, outfit.UpdateInput{ID: "1", ItemIDs: &empty}); !errors.Is(err, outfit.ErrNoItems) {
		t.Errorf("expected ErrNoItems, got %v", err)
	}

	name := "Late Brunch"
	got, err := uc.Update(ctx, outfit.UpdateInput{ID: "1", Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != name || got.Occasion != "casual" || len(repo.updates) != 1 {
		t.Errorf("unexpected outfit after update: %+v", got)
	}
}

func TestUnsyncedOutfitStaysLocal(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newUseCase(repo)

	placeholder, err := uc.Create(ctx, outfit.CreateInput{Name: "Office", ItemIDs: model.IDs("1")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Office Friday"
	items := model.IDs("1", "2")
	got, err := uc.Update(ctx, outfit.UpdateInput{ID: placeholder.ID, Name: &name, ItemIDs: &items})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != name || len(got.ItemIDs) != 2 {
		t.Errorf("unexpected outfit after update: %+v", got)
	}
	if len(repo.updates) != 0 {
		t.Errorf("placeholder update reached the backend %d times", len(repo.updates))
	}

	if worn, err := uc.MarkWorn(ctx, placeholder.ID); err != nil || worn.TimesWorn != 1 {
		t.Fatalf("worn: %+v, %v", worn, err)
	}
	if len(repo.wears) != 0 {
		t.Errorf("placeholder wear reached the backend: %v", repo.wears)
	}

	if err := uc.Delete(ctx, placeholder.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deletes) != 0 {
		t.Errorf("placeholder delete reached the backend: %v", repo.deletes)
	}
	if _, ok := uc.Outfits().Get(string(placeholder.ID)); ok {
		t.Errorf("placeholder still held after delete")
	}

	repo.createFunc = func(opt repository.CreateOutfitOptions) (*model.Outfit, error) {
		return &model.Outfit{ID: "12", Name: opt.Name, ItemIDs: opt.ItemIDs}, nil
	}
	synced, err := uc.Create(ctx, outfit.CreateInput{Name: "Gala", ItemIDs: model.IDs("3")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := uc.Delete(ctx, synced.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deletes) != 1 || repo.deletes[0] != "12" {
		t.Errorf("backend deletes = %v, want [12]", repo.deletes)
	}
}

func TestMarkWornLogFailure(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{outfits: []model.Outfit{{ID: "1", Name: "Brunch", ItemIDs: model.IDs("1")}}}
	uc, _ := newUseCase(repo)
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	repo.err = errors.New("down")
	if _, err := uc.MarkWorn(ctx, "1"); err == nil {
		t.Fatal("expected the backend error")
	}
	if o, _ := uc.Outfits().Get("1"); o.TimesWorn != 0 {
		t.Errorf("outfit counted despite failed log: %+v", o)
	}
	if _, err := uc.MarkWorn(ctx, "404"); !errors.Is(err, outfit.ErrOutfitNotFound) {
		t.Errorf("expected ErrOutfitNotFound, got %v", err)
	}
}

func TestSaved(t *testing.T) {
	ctx := context.Background()
	uc, mem := newUseCase(&mockRepo{})

	if _, err := uc.Save(ctx, outfit.SaveInput{Name: "Trip"}); !errors.Is(err, outfit.ErrNoItems) {
		t.Errorf("expected ErrNoItems, got %v", err)
	}

	items := []model.WardrobeItem{{ID: "1", Name: "Tee", Tags: []string{"basic"}}}
	saved, err := uc.Save(ctx, outfit.SaveInput{Name: "Trip", Items: items})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID != "saved-1" || saved.CreatedAt.IsZero() {
		t.Errorf("expected stamped entry, got %+v", saved)
	}

	list := uc.Saved(ctx)
	if len(list) != 1 || list[0].Name != "Trip" || list[0].Items[0].Name != "Tee" {
		t.Errorf("unexpected saved outfits: %+v", list)
	}

	mem.Set(ctx, localstore.KeySavedOutfits, "{broken")
	if got := uc.Saved(ctx); len(got) != 0 {
		t.Errorf("malformed storage should read as empty, got %d", len(got))
	}

	saved, _ = uc.Save(ctx, outfit.SaveInput{Name: "Again", Items: items})
	if err := uc.DeleteSaved(ctx, saved.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.DeleteSaved(ctx, saved.ID); !errors.Is(err, outfit.ErrSavedNotFound) {
		t.Errorf("expected ErrSavedNotFound, got %v", err)
	}
}

func TestFeedback(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newUseCase(repo)

	if _, err := uc.AddFeedback(ctx, outfit.FeedbackInput{OutfitID: "1", Rating: 0}); !errors.Is(err, outfit.ErrInvalidRating) {
		t.Errorf("expected ErrInvalidRating, got %v", err)
	}
	fb, err := uc.AddFeedback(ctx, outfit.FeedbackInput{OutfitID: "1", Rating: 4, Comment: "  nice  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.ID != "9" || fb.Comment != "nice" {
		t.Errorf("unexpected feedback: %+v", fb)
	}

	list, err := uc.Feedback(ctx, "1")
	if err != nil || len(list) != 1 {
		t.Errorf("unexpected feedback list: %v %v", list, err)
	}

	repo.err = errors.New("down")
	if err := uc.DeleteFeedback(ctx, "9"); err == nil {
		t.Error("expected error")
	}
}
