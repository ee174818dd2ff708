// Package reqseq orders concurrent writes to the same entity so that a slow
// response cannot overwrite the result of a newer request.
package reqseq

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSize = 1024
	DefaultTTL  = 10 * time.Minute
)

// Ticket identifies one in-flight request against an entity.
type Ticket struct {
	Key string
	Seq uint64
}

type entry struct {
	seq      uint64
	inflight int
}

// Tracker remembers the latest ticket issued per entity key. Old keys expire,
// so the tracker stays bounded no matter how many entities pass through it.
type Tracker struct {
	mu     sync.Mutex
	latest *expirable.LRU[string, *entry]
	next   uint64
}

// New creates a Tracker. Non-positive arguments take the defaults.
func New(size int, ttl time.Duration) *Tracker {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tracker{
		latest: expirable.NewLRU[string, *entry](size, nil, ttl),
	}
}

// Begin issues a ticket that supersedes every earlier ticket for key.
func (t *Tracker) Begin(key string) Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	e, ok := t.latest.Peek(key)
	if !ok {
		e = &entry{}
	}
	e.seq = t.next
	e.inflight++
	t.latest.Add(key, e)
	return Ticket{Key: key, Seq: t.next}
}

// Current reports whether tk is still the newest ticket for its key. A key
// that has been evicted has no newer ticket, so its holder is current.
func (t *Tracker) Current(tk Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.latest.Peek(tk.Key)
	return !ok || e.seq == tk.Seq
}

// Done releases tk. The key is forgotten once no ticket for it is in flight.
func (t *Tracker) Done(tk Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.latest.Peek(tk.Key)
	if !ok {
		return
	}
	if e.inflight--; e.inflight <= 0 {
		t.latest.Remove(tk.Key)
	}
}

// Rekey moves tracking from one key to another, used when a placeholder id
// is replaced by the backend-assigned id.
func (t *Tracker) Rekey(from, to string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.latest.Peek(from); ok {
		t.latest.Remove(from)
		t.latest.Add(to, e)
	}
}
