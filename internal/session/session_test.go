package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/session"
	"wardrobe-planner/internal/wardrobeapi"
	"wardrobe-planner/pkg/apiclient"
	"wardrobe-planner/pkg/localstore"
	pkgLog "wardrobe-planner/pkg/log"
)

type stubIdentity struct {
	loginToken  string
	loginErr    error
	register    *wardrobeapi.RegisterResponse
	registerErr error
	users       map[string]*model.User
	meErr       error
	meCalls     int
}

func (s *stubIdentity) Login(_ context.Context, _ wardrobeapi.Credentials) (*wardrobeapi.TokenResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &wardrobeapi.TokenResponse{AccessToken: s.loginToken, TokenType: "bearer"}, nil
}

func (s *stubIdentity) Register(_ context.Context, _ wardrobeapi.Registration) (*wardrobeapi.RegisterResponse, error) {
	return s.register, s.registerErr
}

func (s *stubIdentity) Me(_ context.Context, token string) (*model.User, error) {
	s.meCalls++
	if s.meErr != nil {
		return nil, s.meErr
	}
	return s.users[token], nil
}

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func jwtWithExp(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func newSession(api session.Identity, store localstore.Storage) *session.Session {
	return session.New(api, store, pkgLog.NewNop(), session.WithClock(func() time.Time { return now }))
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	alice := &model.User{ID: "1", Username: "alice"}
	api := &stubIdentity{loginToken: "abc", users: map[string]*model.User{"abc": alice}}
	s := newSession(api, store)

	var states []session.State
	s.Subscribe(func(snap session.Snapshot) { states = append(states, snap.State) })

	if err := s.Login(ctx, wardrobeapi.Credentials{Username: "alice", Password: "pw"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	snap := s.Snapshot()
	if snap.State != session.StateAuthenticated || snap.User == nil || snap.User.Username != "alice" {
		t.Errorf("snapshot = %+v", snap)
	}
	if tok, _ := store.Get(ctx, localstore.KeyToken); tok != "abc" {
		t.Errorf("persisted token = %q", tok)
	}
	if s.Token() != "abc" {
		t.Errorf("Token() = %q", s.Token())
	}
	if states[0] != session.StateAuthenticating || states[len(states)-1] != session.StateAuthenticated {
		t.Errorf("states = %v", states)
	}
}

func TestLoginRejected(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	store.Set(ctx, localstore.KeyToken, "stale")
	rejected := &apiclient.Error{StatusCode: 401, Message: "Incorrect username or password"}
	s := newSession(&stubIdentity{loginErr: rejected}, store)

	err := s.Login(ctx, wardrobeapi.Credentials{Username: "alice", Password: "bad"})
	if !errors.Is(err, rejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
	snap := s.Snapshot()
	if snap.State != session.StateAnonymous || snap.User != nil || snap.LastError == nil {
		t.Errorf("snapshot = %+v", snap)
	}
	if _, err := store.Get(ctx, localstore.KeyToken); !errors.Is(err, localstore.ErrNotFound) {
		t.Errorf("token should be cleared, got %v", err)
	}
}

func TestLoginIdentityFailureClearsToken(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	api := &stubIdentity{loginToken: "abc", meErr: &apiclient.Error{StatusCode: 500, Message: "down"}}
	s := newSession(api, store)

	var sawInvalid bool
	s.Subscribe(func(snap session.Snapshot) {
		if snap.State == session.StateInvalid {
			sawInvalid = true
		}
	})

	if err := s.Login(ctx, wardrobeapi.Credentials{}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := store.Get(ctx, localstore.KeyToken); !errors.Is(err, localstore.ErrNotFound) {
		t.Errorf("token retained after failed identity fetch")
	}
	if s.Token() != "" || s.Snapshot().State != session.StateAnonymous {
		t.Errorf("snapshot = %+v", s.Snapshot())
	}
	if !sawInvalid {
		t.Errorf("expected transient invalid state")
	}
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("no token", func(t *testing.T) {
		api := &stubIdentity{}
		s := newSession(api, localstore.NewMemory())
		if err := s.Restore(ctx); err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if s.Snapshot().State != session.StateAnonymous || api.meCalls != 0 {
			t.Errorf("snapshot %+v calls %d", s.Snapshot(), api.meCalls)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		store := localstore.NewMemory()
		tok := jwtWithExp(t, now.Add(time.Hour))
		store.Set(ctx, localstore.KeyToken, tok)
		s := newSession(&stubIdentity{users: map[string]*model.User{tok: {ID: "1", Username: "alice"}}}, store)

		if err := s.Restore(ctx); err != nil {
			t.Fatalf("Restore: %v", err)
		}
		if snap := s.Snapshot(); snap.State != session.StateAuthenticated || snap.Token != tok {
			t.Errorf("snapshot = %+v", snap)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		store := localstore.NewMemory()
		store.Set(ctx, localstore.KeyToken, jwtWithExp(t, now.Add(-time.Minute)))
		api := &stubIdentity{}
		s := newSession(api, store)

		err := s.Restore(ctx)
		if !errors.Is(err, session.ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
		if api.meCalls != 0 {
			t.Errorf("expired token should not reach the backend")
		}
		if snap := s.Snapshot(); snap.State != session.StateAnonymous || snap.User != nil {
			t.Errorf("snapshot = %+v", snap)
		}
		if _, err := store.Get(ctx, localstore.KeyToken); !errors.Is(err, localstore.ErrNotFound) {
			t.Errorf("expired token retained")
		}
	})

	t.Run("null identity", func(t *testing.T) {
		store := localstore.NewMemory()
		store.Set(ctx, localstore.KeyToken, "opaque")
		s := newSession(&stubIdentity{users: map[string]*model.User{}}, store)

		if err := s.Restore(ctx); !errors.Is(err, session.ErrNoIdentity) {
			t.Fatalf("expected ErrNoIdentity, got %v", err)
		}
		if s.Token() != "" {
			t.Errorf("token retained")
		}
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("without token stays anonymous", func(t *testing.T) {
		store := localstore.NewMemory()
		created := &model.User{ID: "2", Username: "bob"}
		s := newSession(&stubIdentity{register: &wardrobeapi.RegisterResponse{User: created}}, store)

		user, err := s.Register(ctx, wardrobeapi.Registration{Username: "bob"})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		if user == nil || user.Username != "bob" {
			t.Errorf("user = %+v", user)
		}
		if s.Snapshot().State != session.StateAnonymous {
			t.Errorf("state = %s", s.Snapshot().State)
		}
		if _, err := store.Get(ctx, localstore.KeyToken); !errors.Is(err, localstore.ErrNotFound) {
			t.Errorf("no token should be stored")
		}
	})

	t.Run("with token authenticates", func(t *testing.T) {
		store := localstore.NewMemory()
		api := &stubIdentity{
			register: &wardrobeapi.RegisterResponse{AccessToken: "tok"},
			users:    map[string]*model.User{"tok": {ID: "3", Username: "carol"}},
		}
		s := newSession(api, store)

		user, err := s.Register(ctx, wardrobeapi.Registration{Username: "carol"})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		if user == nil || user.Username != "carol" || s.Snapshot().State != session.StateAuthenticated {
			t.Errorf("user %+v snapshot %+v", user, s.Snapshot())
		}
	})

	t.Run("rejected", func(t *testing.T) {
		s := newSession(&stubIdentity{registerErr: errors.New("Username already registered")}, localstore.NewMemory())
		if _, err := s.Register(ctx, wardrobeapi.Registration{}); err == nil {
			t.Fatal("expected error")
		}
		if s.Snapshot().LastError == nil {
			t.Errorf("error not recorded")
		}
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	api := &stubIdentity{loginToken: "abc", users: map[string]*model.User{"abc": {ID: "1"}}}
	s := newSession(api, store)
	if err := s.Login(ctx, wardrobeapi.Credentials{}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	s.Logout(ctx)

	if snap := s.Snapshot(); snap.State != session.StateAnonymous || snap.User != nil || snap.Token != "" {
		t.Errorf("snapshot = %+v", snap)
	}
	if _, err := store.Get(ctx, localstore.KeyToken); !errors.Is(err, localstore.ErrNotFound) {
		t.Errorf("token not removed")
	}
}

func TestSessionIsTokenSource(t *testing.T) {
	var _ apiclient.TokenSource = newSession(&stubIdentity{}, localstore.NewMemory())
}

// gatedIdentity holds Login or Me until release is closed, so a Logout can
// land while the request is in flight.
type gatedIdentity struct {
	stubIdentity
	gateLogin bool
	entered   chan struct{}
	release   chan struct{}
}

func (g *gatedIdentity) wait() {
	close(g.entered)
	<-g.release
}

func (g *gatedIdentity) Login(ctx context.Context, creds wardrobeapi.Credentials) (*wardrobeapi.TokenResponse, error) {
	if g.gateLogin {
		g.wait()
	}
	return g.stubIdentity.Login(ctx, creds)
}

func (g *gatedIdentity) Me(ctx context.Context, token string) (*model.User, error) {
	if !g.gateLogin {
		g.wait()
	}
	return g.stubIdentity.Me(ctx, token)
}

func TestLogoutDuringLogin(t *testing.T) {
	tests := []struct {
		name      string
		gateLogin bool
	}{
		{name: "while exchanging credentials", gateLogin: true},
		{name: "while fetching identity", gateLogin: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := localstore.NewMemory()
			api := &gatedIdentity{
				stubIdentity: stubIdentity{loginToken: "tok-1", users: map[string]*model.User{"tok-1": {ID: "1", Username: "alice"}}},
				gateLogin:    tt.gateLogin,
				entered:      make(chan struct{}),
				release:      make(chan struct{}),
			}
			s := newSession(api, store)

			done := make(chan error, 1)
			go func() { done <- s.Login(ctx, wardrobeapi.Credentials{Username: "alice", Password: "pw"}) }()

			<-api.entered
			s.Logout(ctx)
			close(api.release)

			if err := <-done; !errors.Is(err, session.ErrSuperseded) {
				t.Fatalf("expected ErrSuperseded, got %v", err)
			}
			if snap := s.Snapshot(); snap.State != session.StateAnonymous || snap.Token != "" {
				t.Errorf("snapshot = %+v", snap)
			}
			if tok, err := store.Get(ctx, localstore.KeyToken); !errors.Is(err, localstore.ErrNotFound) {
				t.Errorf("token persisted after logout: %q, %v", tok, err)
			}

			restored := newSession(api, store)
			if err := restored.Restore(ctx); err != nil {
				t.Fatalf("Restore: %v", err)
			}
			if restored.Snapshot().State != session.StateAnonymous {
				t.Errorf("logged out session came back: %+v", restored.Snapshot())
			}
		})
	}
}
