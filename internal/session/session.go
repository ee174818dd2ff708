// Package session holds the authenticated identity and the persisted token.
// It is fail-closed: a token is never kept once an identity check tied to it
// has failed.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobeapi"
	"wardrobe-planner/pkg/localstore"
	pkgLog "wardrobe-planner/pkg/log"
)

// Session is safe for concurrent use. Each operation bumps a generation
// counter; a slow operation that finishes after a newer one started does not
// overwrite the newer outcome.
type Session struct {
	api   Identity
	store localstore.Storage
	l     pkgLog.Logger
	now   func() time.Time

	mu        sync.RWMutex
	gen       uint64
	state     State
	user      *model.User
	token     string
	lastErr   error
	observers []func(Snapshot)
}

type Option func(*Session)

// WithClock overrides the clock used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(api Identity, store localstore.Storage, l pkgLog.Logger, opts ...Option) *Session {
	s := &Session{
		api:   api,
		store: store,
		l:     l,
		now:   time.Now,
		state: StateAnonymous,
	}
	if s.l == nil {
		s.l = pkgLog.NewNop()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns the current bearer token, or "" when there is none. It makes
// Session an apiclient.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	var u *model.User
	if s.user != nil {
		cp := *s.user
		u = &cp
	}
	return Snapshot{State: s.state, User: u, Token: s.token, LastError: s.lastErr}
}

// Subscribe registers fn to be called after every state change.
func (s *Session) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// transition applies mutate under the lock if gen is still current, then
// notifies observers. It reports whether the change was applied.
func (s *Session) transition(gen uint64, mutate func()) bool {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return false
	}
	mutate()
	snap := s.snapshotLocked()
	observers := append([]func(Snapshot){}, s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
	return true
}

// begin starts a new generation in the authenticating state.
func (s *Session) begin(token string) uint64 {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	s.transition(gen, func() {
		s.state = StateAuthenticating
		s.token = token
		s.lastErr = nil
	})
	return gen
}

// Restore re-establishes a session from the persisted token. A missing token
// leaves the session anonymous without error.
func (s *Session) Restore(ctx context.Context) error {
	tok, err := s.store.Get(ctx, localstore.KeyToken)
	if err != nil && !errors.Is(err, localstore.ErrNotFound) {
		s.l.Warnf(ctx, "session.Restore: read token: %v", err)
	}
	if tok == "" {
		s.mu.Lock()
		s.gen++
		gen := s.gen
		s.mu.Unlock()
		s.transition(gen, func() {
			s.state = StateAnonymous
			s.user = nil
			s.token = ""
		})
		return nil
	}

	gen := s.begin(tok)
	user, err := s.identify(ctx, tok)
	if err != nil {
		return s.fail(ctx, gen, "session.Restore", err)
	}
	return s.succeed(ctx, gen, "session.Restore", tok, user)
}

// Login exchanges credentials for a token, persists it and fetches the
// identity it belongs to.
func (s *Session) Login(ctx context.Context, creds wardrobeapi.Credentials) error {
	gen := s.begin("")

	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		return s.fail(ctx, gen, "session.Login", err)
	}
	if resp == nil || resp.AccessToken == "" {
		return s.fail(ctx, gen, "session.Login", ErrNoToken)
	}
	return s.adopt(ctx, gen, "session.Login", resp.AccessToken)
}

// Register creates an account. When the backend hands back a token the
// session is established as with Login; otherwise the session stays
// anonymous and the created user, if any, is returned so the caller can
// prompt for a login.
func (s *Session) Register(ctx context.Context, reg wardrobeapi.Registration) (*model.User, error) {
	gen := s.begin("")

	resp, err := s.api.Register(ctx, reg)
	if err != nil {
		return nil, s.fail(ctx, gen, "session.Register", err)
	}
	if resp == nil || resp.AccessToken == "" {
		s.transition(gen, func() {
			s.state = StateAnonymous
			s.user = nil
			s.token = ""
		})
		if resp == nil {
			return nil, nil
		}
		return resp.User, nil
	}

	if err := s.adopt(ctx, gen, "session.Register", resp.AccessToken); err != nil {
		return nil, err
	}
	return s.Snapshot().User, nil
}

// Logout forgets the token locally. No backend call is made.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	if err := s.store.Remove(ctx, localstore.KeyToken); err != nil {
		s.l.Errorf(ctx, "session.Logout: remove token: %v", err)
	}
	s.transition(gen, func() {
		s.state = StateAnonymous
		s.user = nil
		s.token = ""
		s.lastErr = nil
	})
}

func (s *Session) adopt(ctx context.Context, gen uint64, op, tok string) error {
	if !s.current(gen) {
		return ErrSuperseded
	}
	if err := s.store.Set(ctx, localstore.KeyToken, tok); err != nil {
		return s.fail(ctx, gen, op, err)
	}
	if !s.transition(gen, func() { s.token = tok }) {
		s.discard(ctx, op, tok)
		return ErrSuperseded
	}

	user, err := s.identify(ctx, tok)
	if err != nil {
		err = s.fail(ctx, gen, op, err)
		if errors.Is(err, ErrSuperseded) {
			s.discard(ctx, op, tok)
		}
		return err
	}
	return s.succeed(ctx, gen, op, tok, user)
}

func (s *Session) current(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gen == s.gen
}

// discard removes tok from storage once the operation that persisted it was
// superseded, unless the live session holds the same token.
func (s *Session) discard(ctx context.Context, op, tok string) {
	s.mu.RLock()
	held := s.token == tok
	s.mu.RUnlock()
	if held {
		return
	}

	stored, err := s.store.Get(ctx, localstore.KeyToken)
	if err != nil || stored != tok {
		return
	}
	if err := s.store.Remove(ctx, localstore.KeyToken); err != nil {
		s.l.Errorf(ctx, "%s: remove superseded token: %v", op, err)
	}
}

// identify resolves tok to a user. Tokens whose exp claim has passed are
// rejected without a network call.
func (s *Session) identify(ctx context.Context, tok string) (*model.User, error) {
	if tokenExpired(tok, s.now()) {
		return nil, ErrTokenExpired
	}
	user, err := s.api.Me(ctx, tok)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoIdentity
	}
	return user, nil
}

func (s *Session) succeed(ctx context.Context, gen uint64, op, tok string, user *model.User) error {
	if !s.transition(gen, func() {
		s.state = StateAuthenticated
		s.user = user
		s.token = tok
		s.lastErr = nil
	}) {
		s.discard(ctx, op, tok)
		return ErrSuperseded
	}
	return nil
}

// fail clears the persisted token and falls back to anonymous through the
// transient invalid state.
func (s *Session) fail(ctx context.Context, gen uint64, op string, cause error) error {
	s.l.Warnf(ctx, "%s: %v", op, cause)

	if !s.current(gen) {
		return ErrSuperseded
	}

	if err := s.store.Remove(ctx, localstore.KeyToken); err != nil {
		s.l.Errorf(ctx, "%s: remove token: %v", op, err)
	}

	s.transition(gen, func() {
		s.state = StateInvalid
		s.user = nil
		s.token = ""
		s.lastErr = cause
	})
	s.transition(gen, func() { s.state = StateAnonymous })
	return cause
}

func tokenExpired(tok string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		// Opaque tokens carry no expiry; the backend decides.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
