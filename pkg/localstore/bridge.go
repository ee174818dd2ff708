package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wardrobe-planner/pkg/idgen"
	pkgLog "wardrobe-planner/pkg/log"
)

// Stampable entries receive an id and a creation time when appended.
type Stampable[T any] interface {
	*T
	SetID(string)
	SetCreatedAt(time.Time)
}

// Bridge reads and writes JSON lists on top of a Storage. Writes replace the
// whole list, so concurrent writers race and the last one wins.
type Bridge struct {
	s   Storage
	l   pkgLog.Logger
	ids idgen.Generator
	now func() time.Time
}

type BridgeOption func(*Bridge)

func WithIDGenerator(g idgen.Generator) BridgeOption {
	return func(b *Bridge) { b.ids = g }
}

func WithClock(now func() time.Time) BridgeOption {
	return func(b *Bridge) { b.now = now }
}

func NewBridge(s Storage, l pkgLog.Logger, opts ...BridgeOption) *Bridge {
	b := &Bridge{s: s, l: l, ids: idgen.Default, now: time.Now}
	if b.l == nil {
		b.l = pkgLog.NewNop()
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Storage returns the underlying store.
func (b *Bridge) Storage() Storage { return b.s }

// LoadList returns the list stored under key. A missing key, a read failure
// or malformed JSON all yield an empty list.
func LoadList[T any](ctx context.Context, b *Bridge, key string) []T {
	out, err := load[T](ctx, b, key)
	if err != nil {
		b.l.Warnf(ctx, "localstore.LoadList: read %s: %v", key, err)
		return []T{}
	}
	return out
}

// load is LoadList for read-modify-write paths: storage read failures are
// returned so the caller does not overwrite a list it could not see. A missing
// key or malformed JSON still yields an empty list.
func load[T any](ctx context.Context, b *Bridge, key string) ([]T, error) {
	raw, err := b.s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}

	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		b.l.Warnf(ctx, "localstore: malformed %s: %v", key, err)
		return []T{}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// SaveList overwrites the list stored under key.
func SaveList[T any](ctx context.Context, b *Bridge, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := b.s.Set(ctx, key, string(data)); err != nil {
		b.l.Errorf(ctx, "localstore.SaveList: %v", err)
		return err
	}
	return nil
}

// AppendAndSave stamps entry with a fresh id and the current time, appends it
// to the list under key and persists the whole list.
func AppendAndSave[T any, PT Stampable[T]](ctx context.Context, b *Bridge, key string, entry T) (T, error) {
	p := PT(&entry)
	p.SetID(b.ids.Next())
	p.SetCreatedAt(b.now().UTC())

	list, err := load[T](ctx, b, key)
	if err != nil {
		b.l.Errorf(ctx, "localstore.AppendAndSave: %v", err)
		var zero T
		return zero, err
	}
	list = append(list, entry)
	if err := SaveList(ctx, b, key, list); err != nil {
		var zero T
		return zero, err
	}
	return entry, nil
}

// RemoveFromList drops the entries for which match returns true and reports
// how many were removed.
func RemoveFromList[T any](ctx context.Context, b *Bridge, key string, match func(T) bool) (int, error) {
	list, err := load[T](ctx, b, key)
	if err != nil {
		b.l.Errorf(ctx, "localstore.RemoveFromList: %v", err)
		return 0, err
	}
	kept := list[:0]
	for _, v := range list {
		if !match(v) {
			kept = append(kept, v)
		}
	}
	removed := len(list) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, SaveList(ctx, b, key, kept)
}
