// Package session keeps the open quotation forms in memory. Nothing is
// persisted: a restart or an idle timeout discards the form.
package session

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"

	"colcal/quotation/internal/domain/quote"
	"colcal/quotation/internal/domain/quote/export"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID    string
	Form  *quote.Form
	Inbox *export.Inbox
}

// Store holds sessions in a TTL cache. Every Get pushes the expiry back, so
// only idle sessions time out.
type Store struct {
	cache   *ttlcache.Cache[string, *Session]
	count   atomic.Int64
	keep    int
	now     func() time.Time
	onCount func(n int)
	onEvict func(id string, expired bool)
}

type Option func(*Store)

// WithClock sets the clock used to date new quotations.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithCountHook is called with the number of open sessions after every change.
func WithCountHook(fn func(n int)) Option { return func(s *Store) { s.onCount = fn } }

// WithInboxSize caps the notifications kept per session.
func WithInboxSize(n int) Option { return func(s *Store) { s.keep = n } }

// WithEvictionHook is told about every session that leaves the store.
func WithEvictionHook(fn func(id string, expired bool)) Option {
	return func(s *Store) { s.onEvict = fn }
}

// NewStore starts the expiry loop; call Close to stop it. A ttl <= 0 keeps
// sessions until they are deleted.
func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		now:     time.Now,
		onCount: func(int) {},
		onEvict: func(string, bool) {},
	}
	for _, opt := range opts {
		opt(s)
	}

	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}
	s.cache = ttlcache.New[string, *Session](ttlcache.WithTTL[string, *Session](ttl))
	s.cache.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *Session]) {
		s.onCount(int(s.count.Add(-1)))
		s.onEvict(item.Key(), reason == ttlcache.EvictionReasonExpired)
	})
	go s.cache.Start()
	return s
}

func (s *Store) Create() *Session {
	sess := &Session{
		ID:    uuid.NewString(),
		Form:  quote.NewFormAt(s.now()),
		Inbox: export.NewInbox(s.keep),
	}
	s.cache.Set(sess.ID, sess, ttlcache.DefaultTTL)
	s.onCount(int(s.count.Add(1)))
	return sess
}

func (s *Store) Get(id string) (*Session, error) {
	item := s.cache.Get(id)
	if item == nil {
		return nil, ErrNotFound
	}
	return item.Value(), nil
}

func (s *Store) Delete(id string) bool {
	if s.cache.Get(id) == nil {
		return false
	}
	s.cache.Delete(id)
	return true
}

// Len drops expired sessions and returns how many remain.
func (s *Store) Len() int {
	s.cache.DeleteExpired()
	return s.cache.Len()
}

func (s *Store) Close() {
	s.cache.Stop()
}
