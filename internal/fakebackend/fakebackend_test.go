package fakebackend_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"wardrobe-planner/internal/fakebackend"
	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/session"
	"wardrobe-planner/internal/wardrobe"
	wardrobeRest "wardrobe-planner/internal/wardrobe/repository/rest"
	wardrobeUC "wardrobe-planner/internal/wardrobe/usecase"
	"wardrobe-planner/internal/wardrobeapi"
	"wardrobe-planner/pkg/apiclient"
	"wardrobe-planner/pkg/idgen"
	"wardrobe-planner/pkg/imaging"
	"wardrobe-planner/pkg/localstore"
	pkgLog "wardrobe-planner/pkg/log"
)

type harness struct {
	srv    *fakebackend.Server
	url    string
	store  *localstore.Memory
	sess   *session.Session
	client *wardrobeapi.Client
}

func newHarness(t *testing.T, cfg fakebackend.Config, opts ...wardrobeapi.Option) *harness {
	t.Helper()
	cfg.Logger = pkgLog.NewNop()
	srv, err := fakebackend.New(cfg)
	if err != nil {
		t.Fatalf("fakebackend.New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	h := &harness{srv: srv, url: ts.URL, store: localstore.NewMemory()}
	// The session is both the token source and the identity consumer, so the
	// HTTP client is wired to it after construction.
	var tokens tokenRef
	api := apiclient.New(ts.URL, apiclient.WithTokenSource(&tokens))
	h.client = wardrobeapi.New(api, opts...)
	h.sess = session.New(h.client, h.store, pkgLog.NewNop())
	tokens.src = h.sess
	return h
}

type tokenRef struct{ src apiclient.TokenSource }

func (r *tokenRef) Token() string {
	if r.src == nil {
		return ""
	}
	return r.src.Token()
}

func (h *harness) signUp(t *testing.T, username string) {
	t.Helper()
	ctx := context.Background()
	if _, err := h.sess.Register(ctx, wardrobeapi.Registration{Username: username, Email: username + "@example.com", Password: "secret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := h.sess.Login(ctx, wardrobeapi.Credentials{Username: username, Password: "secret"}); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestHealth(t *testing.T) {
	h := newHarness(t, fakebackend.Config{})
	resp, err := http.Get(h.url + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestSwaggerDoc(t *testing.T) {
	h := newHarness(t, fakebackend.Config{})
	resp, err := http.Get(h.url + "/swagger/doc.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, path := range []string{"/wardrobe/items/{id}", "/community/feedback/{id}", `"basePath": "/api"`} {
		if !strings.Contains(string(body), path) {
			t.Errorf("doc.json does not mention %s", path)
		}
	}
}

func TestNewRequiresLogger(t *testing.T) {
	if _, err := fakebackend.New(fakebackend.Config{}); err == nil {
		t.Error("expected error without logger")
	}
}

func TestAuthFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("Register Then Login", func(t *testing.T) {
		h := newHarness(t, fakebackend.Config{})

		user, err := h.sess.Register(ctx, wardrobeapi.Registration{Username: "ada", Email: "ada@example.com", Password: "pw"})
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		if user == nil || user.Username != "ada" {
			t.Fatalf("expected created user, got %+v", user)
		}
		if h.sess.Snapshot().State != session.StateAnonymous {
			t.Errorf("register without token should stay anonymous")
		}

		if err := h.sess.Login(ctx, wardrobeapi.Credentials{Username: "ada", Password: "pw"}); err != nil {
			t.Fatalf("login: %v", err)
		}
		snap := h.sess.Snapshot()
		if snap.State != session.StateAuthenticated || snap.User.Email != "ada@example.com" {
			t.Errorf("unexpected snapshot: %+v", snap)
		}
		if stored, _ := h.store.Get(ctx, localstore.KeyToken); stored != snap.Token {
			t.Errorf("token not persisted")
		}
	})

	t.Run("Register With Token", func(t *testing.T) {
		h := newHarness(t, fakebackend.Config{TokenOnRegister: true})
		if _, err := h.sess.Register(ctx, wardrobeapi.Registration{Username: "bo", Email: "bo@example.com", Password: "pw"}); err != nil {
			t.Fatalf("register: %v", err)
		}
		if h.sess.Snapshot().State != session.StateAuthenticated {
			t.Errorf("expected authenticated session")
		}
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		h := newHarness(t, fakebackend.Config{})
		h.signUp(t, "cy")
		_, err := h.sess.Register(ctx, wardrobeapi.Registration{Username: "cy", Email: "x@example.com", Password: "pw"})
		var apiErr *apiclient.Error
		if !errors.As(err, &apiErr) || apiErr.Message != "Username already registered" {
			t.Errorf("expected backend message, got %v", err)
		}
	})

	t.Run("Missing Fields", func(t *testing.T) {
		h := newHarness(t, fakebackend.Config{})
		_, err := h.sess.Register(ctx, wardrobeapi.Registration{Username: "dee"})
		if apiclient.StatusCode(err) != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %v", err)
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		h := newHarness(t, fakebackend.Config{})
		h.signUp(t, "eve")
		err := h.sess.Login(ctx, wardrobeapi.Credentials{Username: "eve", Password: "nope"})
		if !apiclient.IsUnauthorized(err) {
			t.Errorf("expected 401, got %v", err)
		}
		snap := h.sess.Snapshot()
		if snap.State != session.StateAnonymous || snap.Token != "" {
			t.Errorf("failed login must leave no token: %+v", snap)
		}
	})

	t.Run("Login Form", func(t *testing.T) {
		h := newHarness(t, fakebackend.Config{}, wardrobeapi.WithLoginForm(true))
		h.signUp(t, "fay")
		if h.sess.Snapshot().User.Username != "fay" {
			t.Errorf("form login should authenticate")
		}
	})

	t.Run("Restore Expired Token", func(t *testing.T) {
		h := newHarness(t, fakebackend.Config{})
		h.signUp(t, "gus")
		id, _ := h.srv.UserID("gus")
		expired, err := h.srv.MintToken(id, -time.Minute)
		if err != nil {
			t.Fatalf("mint: %v", err)
		}
		h.store.Set(ctx, localstore.KeyToken, expired)

		fresh := session.New(h.client, h.store, pkgLog.NewNop())
		if err := fresh.Restore(ctx); err == nil {
			t.Errorf("expected restore to fail")
		}
		if _, err := h.store.Get(ctx, localstore.KeyToken); !errors.Is(err, localstore.ErrNotFound) {
			t.Errorf("expired token should be cleared, got %v", err)
		}
	})

	t.Run("Unauthenticated Request", func(t *testing.T) {
		h := newHarness(t, fakebackend.Config{})
		if _, err := h.client.ListItems(ctx); !apiclient.IsUnauthorized(err) {
			t.Errorf("expected 401, got %v", err)
		}
	})
}

func TestItems(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, fakebackend.Config{})
	h.signUp(t, "ada")

	repo := wardrobeRest.New(h.client, imaging.NewProcessor(0, 0), pkgLog.NewNop())
	uc := wardrobeUC.New(pkgLog.NewNop(), repo, &idgen.Sequence{Prefix: "tmp"}, nil)

	item, err := uc.Add(ctx, wardrobe.AddItemInput{Name: "Blue Shirt", Brand: "Zara", Category: "Shirts", PriceText: "19.99", TagsText: "work, cotton"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !item.ID.Numeric() || item.Price != 19.99 || len(item.Tags) != 2 {
		t.Fatalf("expected backend entity, got %+v", item)
	}

	newName := "Navy Shirt"
	edited, err := uc.Edit(ctx, wardrobe.EditItemInput{ID: item.ID, Name: &newName})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Name != newName || edited.Brand != "Zara" {
		t.Errorf("unexpected edited item: %+v", edited)
	}

	if _, err := uc.ToggleFavorite(ctx, item.ID); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	remote, err := h.client.GetItem(ctx, item.ID)
	if err != nil || !remote.Favorite || remote.Name != newName {
		t.Errorf("backend out of sync: %+v, %v", remote, err)
	}

	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	out, _ := uc.List(ctx, wardrobe.ListInput{})
	if out.Total != 1 {
		t.Errorf("expected 1 item, got %d", out.Total)
	}

	if err := uc.Delete(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := h.client.GetItem(ctx, item.ID); !apiclient.IsNotFound(err) {
		t.Errorf("expected 404 after delete, got %v", err)
	}
}

func TestItemsEmptyWrites(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, fakebackend.Config{EmptyWrites: true})
	h.signUp(t, "ada")

	repo := wardrobeRest.New(h.client, imaging.NewProcessor(0, 0), pkgLog.NewNop())
	uc := wardrobeUC.New(pkgLog.NewNop(), repo, &idgen.Sequence{Prefix: "tmp"}, nil)

	item, err := uc.Add(ctx, wardrobe.AddItemInput{Name: "Boots", Brand: "Dr. Martens", Category: "Shoes", PriceText: "120"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.ID != "tmp-1" {
		t.Errorf("expected placeholder id, got %q", item.ID)
	}

	listed, err := h.client.ListItems(ctx)
	if err != nil || len(listed) != 1 || listed[0].Name != "Boots" {
		t.Errorf("backend should still hold the item: %+v, %v", listed, err)
	}
}

func TestOutfitsAndFeedback(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, fakebackend.Config{})
	h.signUp(t, "ada")

	shirt, err := h.client.CreateItem(ctx, wardrobeapi.ItemCreate{Name: "Shirt", Brand: "Zara", Category: "Shirts", Tags: []string{}}, nil)
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	if _, err := h.client.CreateOutfit(ctx, wardrobeapi.OutfitCreate{Name: "Ghost", ItemIDs: model.IDs("999")}); apiclient.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown items, got %v", err)
	}

	o, err := h.client.CreateOutfit(ctx, wardrobeapi.OutfitCreate{Name: "Office", ItemIDs: []model.ID{shirt.ID}})
	if err != nil {
		t.Fatalf("create outfit: %v", err)
	}

	name := "Office Friday"
	updated, err := h.client.UpdateOutfit(ctx, o.ID, wardrobeapi.OutfitUpdate{Name: &name})
	if err != nil || updated.Name != name || len(updated.ItemIDs) != 1 {
		t.Errorf("unexpected update: %+v, %v", updated, err)
	}

	if _, err := h.client.AddFeedback(ctx, o.ID, wardrobeapi.FeedbackCreate{Rating: 9}); apiclient.StatusCode(err) != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for bad rating, got %v", err)
	}
	fb, err := h.client.AddFeedback(ctx, o.ID, wardrobeapi.FeedbackCreate{Rating: 4, Comment: "sharp"})
	if err != nil {
		t.Fatalf("add feedback: %v", err)
	}
	list, err := h.client.ListFeedback(ctx, o.ID)
	if err != nil || len(list) != 1 || list[0].Comment != "sharp" {
		t.Errorf("unexpected feedback list: %+v, %v", list, err)
	}
	if err := h.client.DeleteFeedback(ctx, fb.ID); err != nil {
		t.Fatalf("delete feedback: %v", err)
	}

	if err := h.client.DeleteOutfit(ctx, o.ID); err != nil {
		t.Fatalf("delete outfit: %v", err)
	}
	if err := h.client.DeleteOutfit(ctx, o.ID); !apiclient.IsNotFound(err) {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestProfileAndRecommendations(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, fakebackend.Config{})
	h.signUp(t, "ada")

	bio := "minimalist"
	colors := []string{"navy", "grey"}
	p, err := h.client.UpdateProfile(ctx, wardrobeapi.ProfileUpdate{Bio: &bio, FavoriteColors: &colors})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if p.Bio != bio || len(p.FavoriteColors) != 2 {
		t.Errorf("unexpected profile: %+v", p)
	}
	got, err := h.client.GetProfile(ctx)
	if err != nil || got.Bio != bio {
		t.Errorf("profile not stored: %+v, %v", got, err)
	}

	lat, lon := 48.85, 2.35
	s, err := h.client.WardrobeSuggestions(ctx, wardrobeapi.Location{Lat: &lat, Lon: &lon})
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	if len(s.ItemsToAcquire) == 0 || len(s.NewOutfitIdeas) != 1 {
		t.Errorf("unexpected suggestions: %+v", s)
	}

	stats, err := h.client.Statistics(ctx)
	if err != nil || stats.TotalItems != 0 {
		t.Errorf("unexpected stats: %+v, %v", stats, err)
	}
}

func TestProfileRejectsForm(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, fakebackend.Config{})
	h.signUp(t, "ada")

	api := apiclient.New(h.url, apiclient.WithTokenSource(h.sess))
	_, err := api.Request(ctx, apiclient.Request{Method: http.MethodPut, Path: "/profile/me", Body: url.Values{"bio": {"x"}}})
	if apiclient.StatusCode(err) != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %v", err)
	}
}

func TestNoStatistics(t *testing.T) {
	h := newHarness(t, fakebackend.Config{NoStatistics: true})
	h.signUp(t, "ada")
	if _, err := h.client.Statistics(context.Background()); !apiclient.IsNotFound(err) {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestWearHistory(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 6, 19, 0, 0, 0, time.UTC)
	h := newHarness(t, fakebackend.Config{})
	h.signUp(t, "ada")

	repo := wardrobeRest.New(h.client, imaging.NewProcessor(0, 0), pkgLog.NewNop())
	uc := wardrobeUC.New(pkgLog.NewNop(), repo, &idgen.Sequence{Prefix: "tmp"}, nil)
	shirt, err := uc.Add(ctx, wardrobe.AddItemInput{Name: "Shirt", Brand: "Zara", Category: "Shirts"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := uc.Add(ctx, wardrobe.AddItemInput{Name: "Boots", Brand: "Dr. Martens", Category: "Shoes"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	for range 2 {
		worn, err := uc.MarkWorn(ctx, wardrobe.WearInput{ID: shirt.ID, WornAt: now, Notes: "office"})
		if err != nil {
			t.Fatalf("mark worn: %v", err)
		}
		if !worn.LastWorn.Equal(now) {
			t.Errorf("last worn = %v, want %v", worn.LastWorn, now)
		}
	}
	held, _ := uc.Get(ctx, shirt.ID)
	if held.TimesWorn != 2 {
		t.Errorf("holder times worn = %d, want 2", held.TimesWorn)
	}

	o, err := h.client.CreateOutfit(ctx, wardrobeapi.OutfitCreate{Name: "Office", ItemIDs: []model.ID{shirt.ID}})
	if err != nil {
		t.Fatalf("create outfit: %v", err)
	}
	if _, err := h.client.LogWear(ctx, wardrobeapi.WearCreate{OutfitID: o.ID, DateWorn: model.NewTime(now)}); err != nil {
		t.Fatalf("log outfit wear: %v", err)
	}

	bad := []wardrobeapi.WearCreate{
		{DateWorn: model.NewTime(now)},
		{ItemID: shirt.ID, OutfitID: o.ID, DateWorn: model.NewTime(now)},
		{ItemID: shirt.ID},
	}
	for _, w := range bad {
		if _, err := h.client.LogWear(ctx, w); apiclient.StatusCode(err) != http.StatusUnprocessableEntity {
			t.Errorf("LogWear(%+v): expected 422, got %v", w, err)
		}
	}
	if _, err := h.client.LogWear(ctx, wardrobeapi.WearCreate{ItemID: "999", DateWorn: model.NewTime(now)}); !apiclient.IsNotFound(err) {
		t.Errorf("expected 404 for unknown item, got %v", err)
	}

	all, err := h.client.ListWearHistory(ctx, wardrobeapi.WearQuery{})
	if err != nil || len(all) != 3 {
		t.Fatalf("history %+v err %v", all, err)
	}
	byOutfit, _ := h.client.ListWearHistory(ctx, wardrobeapi.WearQuery{OutfitID: o.ID})
	if len(byOutfit) != 1 || byOutfit[0].OutfitID != o.ID {
		t.Errorf("unexpected outfit history: %+v", byOutfit)
	}
	paged, _ := h.client.ListWearHistory(ctx, wardrobeapi.WearQuery{ItemID: shirt.ID, Skip: 1, Limit: 5})
	if len(paged) != 1 {
		t.Errorf("unexpected page: %+v", paged)
	}

	freq, err := h.client.ItemWearFrequency(ctx)
	if err != nil || len(freq) != 2 || freq[0].Item.ID != shirt.ID || freq[0].WearCount != 2 {
		t.Errorf("unexpected frequency: %+v, %v", freq, err)
	}
	usage, err := h.client.CategoryUsage(ctx)
	if err != nil || len(usage) != 2 || usage[0].UsagePercentage != 50 {
		t.Errorf("unexpected usage: %+v, %v", usage, err)
	}

	if err := h.client.DeleteWearEntry(ctx, all[0].ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if err := h.client.DeleteWearEntry(ctx, all[0].ID); !apiclient.IsNotFound(err) {
		t.Errorf("expected 404, got %v", err)
	}
	remote, _ := h.client.GetItem(ctx, shirt.ID)
	if remote.TimesWorn != 2 {
		t.Errorf("deleting an entry should keep the counter, got %d", remote.TimesWorn)
	}
}

func TestWearHistoryIsPerUser(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, fakebackend.Config{})
	h.signUp(t, "ada")
	item, err := h.client.CreateItem(ctx, wardrobeapi.ItemCreate{Name: "Shirt", Brand: "Zara", Category: "Shirts", Tags: []string{}}, nil)
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	entry, err := h.client.LogWear(ctx, wardrobeapi.WearCreate{ItemID: item.ID, DateWorn: model.NewTime(time.Now())})
	if err != nil {
		t.Fatalf("log wear: %v", err)
	}

	h.signUp(t, "bob")
	if _, err := h.client.LogWear(ctx, wardrobeapi.WearCreate{ItemID: item.ID, DateWorn: model.NewTime(time.Now())}); apiclient.StatusCode(err) != http.StatusForbidden {
		t.Errorf("expected 403 for another user's item, got %v", err)
	}
	if err := h.client.DeleteWearEntry(ctx, entry.ID); apiclient.StatusCode(err) != http.StatusForbidden {
		t.Errorf("expected 403 for another user's entry, got %v", err)
	}
	list, err := h.client.ListWearHistory(ctx, wardrobeapi.WearQuery{})
	if err != nil || len(list) != 0 {
		t.Errorf("expected empty history, got %+v, %v", list, err)
	}
}
