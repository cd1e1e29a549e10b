// Package stream fans out state snapshots to live subscribers (pending invites, chat lists,
// nearby users). Each key keeps its own sequence, and slow consumers lose their oldest snapshot
// rather than blocking producers.
package stream

import (
	"context"
	"sync"
	"time"

	"github.com/46h1/buzzer/internal/util"
)

// DefaultBufferSize is used when a Hub is created with a non-positive buffer size.
const DefaultBufferSize = 8

// Snapshot is one published state of a key.
type Snapshot[T any] struct {
	Seq  uint64    `json:"seq"`
	At   time.Time `json:"at"`
	Data T         `json:"data"`
}

// Hub routes snapshots to the subscribers of a key.
type Hub[T any] struct {
	mu         sync.Mutex
	bufferSize int
	seq        map[string]uint64
	subs       map[string]map[uint64]*Subscription[T]
	nextID     uint64
	closed     bool
	loads      *util.KeyedMutex
	now        func() time.Time
}

// NewHub creates a hub whose subscribers buffer up to bufferSize snapshots.
func NewHub[T any](bufferSize int) *Hub[T] {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	return &Hub[T]{
		bufferSize: bufferSize,
		seq:        make(map[string]uint64),
		subs:       make(map[string]map[uint64]*Subscription[T]),
		loads:      util.NewKeyedMutex(),
		now:        time.Now,
	}
}

// Subscription receives the snapshots of one key until it is closed.
type Subscription[T any] struct {
	hub  *Hub[T]
	key  string
	id   uint64
	ch   chan Snapshot[T]
	stop func() bool
	once sync.Once
}

// C returns the snapshot channel. It is closed when the subscription ends.
func (s *Subscription[T]) C() <-chan Snapshot[T] {
	return s.ch
}

// Key returns the subscribed key.
func (s *Subscription[T]) Key() string {
	return s.key
}

// Close unsubscribes. It is safe to call more than once.
func (s *Subscription[T]) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		stop := s.stop
		s.hub.mu.Unlock()

		if stop != nil {
			stop()
		}
		s.hub.remove(s)
	})
}

// Subscribe registers a subscriber for key. The subscription ends when ctx is done or Close is called.
func (h *Hub[T]) Subscribe(ctx context.Context, key string) *Subscription[T] {
	sub := &Subscription[T]{
		hub: h,
		key: key,
		ch:  make(chan Snapshot[T], h.bufferSize),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.ch)
		sub.once.Do(func() {})

		return sub
	}
	h.nextID++
	sub.id = h.nextID
	if h.subs[key] == nil {
		h.subs[key] = make(map[uint64]*Subscription[T])
	}
	h.subs[key][sub.id] = sub
	h.mu.Unlock()

	stop := context.AfterFunc(ctx, sub.Close)
	h.mu.Lock()
	sub.stop = stop
	h.mu.Unlock()

	return sub
}

// Publish sends data to every subscriber of key and returns the assigned sequence.
// A full subscriber queue drops its oldest snapshot. Keys without subscribers get no
// sequence and Publish returns 0.
func (h *Hub[T]) Publish(key string, data T) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.subs[key]) == 0 {
		return 0
	}

	h.seq[key]++
	snap := Snapshot[T]{Seq: h.seq[key], At: h.now(), Data: data}

	for _, sub := range h.subs[key] {
		select {
		case sub.ch <- snap:
			continue
		default:
		}

		// sends only happen under h.mu, so after one receive there is room
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- snap:
		default:
		}
	}

	return snap.Seq
}

// Refresh loads the current state of key and publishes it. Loads of the same key run one at a
// time, so snapshots reach subscribers in load order. Keys without subscribers are skipped.
func (h *Hub[T]) Refresh(ctx context.Context, key string, load func(context.Context) (T, error)) error {
	if !h.HasSubscribers(key) {
		return nil
	}

	unlock := h.loads.Lock(key)
	defer unlock()

	data, err := load(ctx)
	if err != nil {
		return err
	}
	h.Publish(key, data)

	return nil
}

// HasSubscribers reports whether key has at least one live subscriber.
func (h *Hub[T]) HasSubscribers(key string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs[key]) > 0
}

// Close ends every subscription. Later subscriptions are returned already closed.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	h.closed = true
	all := make([]*Subscription[T], 0)
	for _, subs := range h.subs {
		for _, sub := range subs {
			all = append(all, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range all {
		sub.Close()
	}
}

func (h *Hub[T]) remove(sub *Subscription[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.subs[sub.key]
	if _, ok := subs[sub.id]; !ok {
		return
	}
	delete(subs, sub.id)
	if len(subs) == 0 {
		delete(h.subs, sub.key)
		delete(h.seq, sub.key)
	}
	close(sub.ch)
}
