package localstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"wardrobe-planner/pkg/idgen"
	"wardrobe-planner/pkg/localstore"
	pkgLog "wardrobe-planner/pkg/log"
)

type plan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *plan) SetID(id string)           { p.ID = id }
func (p *plan) SetCreatedAt(t time.Time) { p.CreatedAt = t }

func newBridge(s localstore.Storage) *localstore.Bridge {
	now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	return localstore.NewBridge(s, pkgLog.NewNop(),
		localstore.WithIDGenerator(&idgen.Sequence{Prefix: "plan"}),
		localstore.WithClock(func() time.Time { return now }),
	)
}

func TestLoadListFailsSoft(t *testing.T) {
	ctx := context.Background()
	mem := localstore.NewMemory()
	b := newBridge(mem)

	if got := localstore.LoadList[plan](ctx, b, localstore.KeyWeeklyPlans); got == nil || len(got) != 0 {
		t.Errorf("absent key: got %#v", got)
	}

	mem.Set(ctx, localstore.KeyWeeklyPlans, "{not json")
	if got := localstore.LoadList[plan](ctx, b, localstore.KeyWeeklyPlans); len(got) != 0 {
		t.Errorf("malformed value: got %#v", got)
	}

	mem.Set(ctx, localstore.KeyWeeklyPlans, "null")
	if got := localstore.LoadList[plan](ctx, b, localstore.KeyWeeklyPlans); got == nil {
		t.Errorf("null value should load as empty list")
	}
}

func TestAppendAndSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := newBridge(localstore.NewMemory())

	first, err := localstore.AppendAndSave(ctx, b, localstore.KeyWeeklyPlans, plan{Name: "Week 1", ID: "ignored"})
	if err != nil {
		t.Fatalf("AppendAndSave: %v", err)
	}
	second, _ := localstore.AppendAndSave(ctx, b, localstore.KeyWeeklyPlans, plan{Name: "Week 2"})

	if first.ID != "plan-1" || second.ID != "plan-2" {
		t.Errorf("ids = %q, %q", first.ID, second.ID)
	}
	if !first.CreatedAt.Equal(time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("createdAt = %v", first.CreatedAt)
	}

	got := localstore.LoadList[plan](ctx, b, localstore.KeyWeeklyPlans)
	if len(got) != 2 || got[0].Name != "Week 1" || got[1].Name != "Week 2" {
		t.Fatalf("loaded = %+v", got)
	}
	if got[1].ID != second.ID {
		t.Errorf("last element id = %q, want %q", got[1].ID, second.ID)
	}
}

func TestAppendAfterMalformedStartsFresh(t *testing.T) {
	ctx := context.Background()
	mem := localstore.NewMemory()
	mem.Set(ctx, localstore.KeySavedOutfits, "garbage")
	b := newBridge(mem)

	if _, err := localstore.AppendAndSave(ctx, b, localstore.KeySavedOutfits, plan{Name: "only"}); err != nil {
		t.Fatalf("AppendAndSave: %v", err)
	}
	if got := localstore.LoadList[plan](ctx, b, localstore.KeySavedOutfits); len(got) != 1 {
		t.Errorf("expected one entry, got %+v", got)
	}
}

func TestRemoveFromList(t *testing.T) {
	ctx := context.Background()
	b := newBridge(localstore.NewMemory())
	a, _ := localstore.AppendAndSave(ctx, b, localstore.KeyOccasionOutfits, plan{Name: "a"})
	localstore.AppendAndSave(ctx, b, localstore.KeyOccasionOutfits, plan{Name: "b"})

	n, err := localstore.RemoveFromList(ctx, b, localstore.KeyOccasionOutfits, func(p plan) bool { return p.ID == a.ID })
	if err != nil || n != 1 {
		t.Fatalf("RemoveFromList = %d, %v", n, err)
	}
	got := localstore.LoadList[plan](ctx, b, localstore.KeyOccasionOutfits)
	if len(got) != 1 || got[0].Name != "b" {
		t.Errorf("remaining = %+v", got)
	}
}

type flakyStorage struct {
	*localstore.Memory
	failGet bool
}

var errFlaky = errors.New("storage unavailable")

func (f *flakyStorage) Get(ctx context.Context, key string) (string, error) {
	if f.failGet {
		return "", errFlaky
	}
	return f.Memory.Get(ctx, key)
}

func TestReadFailureKeepsStoredList(t *testing.T) {
	ctx := context.Background()
	remove := func(b *localstore.Bridge) error {
		_, err := localstore.RemoveFromList(ctx, b, localstore.KeyWeeklyPlans, func(p plan) bool { return p.Name == "a" })
		return err
	}
	appendOne := func(b *localstore.Bridge) error {
		_, err := localstore.AppendAndSave(ctx, b, localstore.KeyWeeklyPlans, plan{Name: "d"})
		return err
	}

	tests := []struct {
		name string
		op   func(*localstore.Bridge) error
	}{
		{"append", appendOne},
		{"remove", remove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := &flakyStorage{Memory: localstore.NewMemory()}
			b := newBridge(fs)
			for _, name := range []string{"a", "b", "c"} {
				if _, err := localstore.AppendAndSave(ctx, b, localstore.KeyWeeklyPlans, plan{Name: name}); err != nil {
					t.Fatalf("seed %s: %v", name, err)
				}
			}

			fs.failGet = true
			if err := tt.op(b); !errors.Is(err, errFlaky) {
				t.Fatalf("err = %v, want %v", err, errFlaky)
			}
			if got := localstore.LoadList[plan](ctx, b, localstore.KeyWeeklyPlans); len(got) != 0 {
				t.Errorf("LoadList during outage = %+v, want empty", got)
			}

			fs.failGet = false
			got := localstore.LoadList[plan](ctx, b, localstore.KeyWeeklyPlans)
			if len(got) != 3 || got[0].Name != "a" || got[2].Name != "c" {
				t.Errorf("stored list = %+v, want the three seeded entries", got)
			}
		})
	}
}
