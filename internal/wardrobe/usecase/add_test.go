package usecase_test

import (
	"context"
	"errors"
	"testing"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobe"
	"wardrobe-planner/internal/wardrobe/repository"
	"wardrobe-planner/internal/wardrobe/usecase"
	"wardrobe-planner/pkg/idgen"
)

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("Placeholder When Backend Returns Nothing", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, repo, &idgen.Sequence{Prefix: "item"}, nil)

		got, err := uc.Add(ctx, wardrobe.AddItemInput{
			Name:      "Blue Shirt",
			Brand:     "Zara",
			Category:  "Shirts",
			PriceText: "19.99",
			TagsText:  " casual, ,summer ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Price != 19.99 {
			t.Errorf("expected price 19.99, got %v", got.Price)
		}
		if got.ID.IsZero() {
			t.Error("expected a fresh id")
		}
		if got.Favorite || got.TimesWorn != 0 || got.DateAdded.IsZero() {
			t.Errorf("unexpected placeholder defaults: %+v", got)
		}
		if len(got.Tags) != 2 || got.Tags[0] != "casual" || got.Tags[1] != "summer" {
			t.Errorf("unexpected tags: %q", got.Tags)
		}
		if uc.Items().Len() != 1 {
			t.Errorf("expected 1 item, got %d", uc.Items().Len())
		}
	})

	t.Run("Backend Entity Wins", func(t *testing.T) {
		repo := &mockRepo{createFunc: echoCreate("42")}
		uc := usecase.New(&mockLogger{}, repo, nil, nil)

		got, err := uc.Add(ctx, wardrobe.AddItemInput{Name: "Coat", Brand: "COS", Category: "Jackets"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "42" {
			t.Errorf("expected backend id 42, got %q", got.ID)
		}
		if _, ok := uc.Items().Get("42"); !ok {
			t.Error("expected item 42 in collection")
		}
	})

	t.Run("Missing Fields Send Nothing", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, repo, nil, nil)

		_, err := uc.Add(ctx, wardrobe.AddItemInput{Category: "Shirts"})
		if !errors.Is(err, wardrobe.ErrMissingName) || !errors.Is(err, wardrobe.ErrMissingBrand) {
			t.Errorf("expected name and brand errors, got %v", err)
		}
		if len(repo.creates) != 0 {
			t.Errorf("expected no backend call, got %d", len(repo.creates))
		}
		if uc.Items().Len() != 0 {
			t.Error("expected empty collection")
		}
	})

	t.Run("Price Parsing", func(t *testing.T) {
		tests := []struct {
			text string
			want float64
		}{
			{"", 0},
			{"abc", 0},
			{"12abc", 12},
			{"  7.5 ", 7.5},
			{".5", 0.5},
			{"1e2", 100},
		}
		for _, tt := range tests {
			repo := &mockRepo{}
			uc := usecase.New(&mockLogger{}, repo, nil, nil)
			got, err := uc.Add(ctx, wardrobe.AddItemInput{Name: "n", Brand: "b", Category: "c", PriceText: tt.text})
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", tt.text, err)
			}
			if got.Price != tt.want {
				t.Errorf("%q: expected %v, got %v", tt.text, tt.want, got.Price)
			}
		}
	})

	t.Run("Negative Price Rejected", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, repo, nil, nil)
		_, err := uc.Add(ctx, wardrobe.AddItemInput{Name: "n", Brand: "b", Category: "c", PriceText: "-3"})
		if !errors.Is(err, wardrobe.ErrNegativePrice) {
			t.Errorf("expected ErrNegativePrice, got %v", err)
		}
	})

	t.Run("Backend Error Leaves Collection Untouched", func(t *testing.T) {
		repo := &mockRepo{createFunc: func(_ repository.CreateItemOptions) (*model.WardrobeItem, error) {
			return nil, errors.New("boom")
		}}
		uc := usecase.New(&mockLogger{}, repo, nil, nil)
		if _, err := uc.Add(ctx, wardrobe.AddItemInput{Name: "n", Brand: "b", Category: "c"}); err == nil {
			t.Fatal("expected error")
		}
		if uc.Items().Len() != 0 {
			t.Error("expected empty collection")
		}
	})
}
