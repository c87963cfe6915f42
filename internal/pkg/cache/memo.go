package cache

import (
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zeebo/xxh3"
)

// Memo memoizes values of type V by arbitrary msgpack-encodable keys. Keys are reduced to
// the xxh3 hash of their msgpack encoding, so two keys encoding identically share an entry.
//
// A zero ttl disables the memo: every lookup computes.
type Memo[V any] struct {
	// m serializes computation per memo for MutexGetSet concurrent prevention
	m sync.Mutex

	prefix string
	ttl    time.Duration
	c      *cache.Cache
}

func NewMemo[V any](prefix string, ttl time.Duration) *Memo[V] {
	return &Memo[V]{
		prefix: prefix + ":",
		ttl:    ttl,
		c:      cache.New(ttl, time.Minute*10),
	}
}

// Key computes the memo key of k.
func (c *Memo[V]) Key(k any) (string, error) {
	b, err := msgpack.Marshal(k)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal memo key with msgpack")
	}
	return c.prefix + strconv.FormatUint(xxh3.Hash(b), 16), nil
}

func (c *Memo[V]) Get(k any) (V, error) {
	var zero V
	key, err := c.Key(k)
	if err != nil {
		return zero, err
	}
	v, ok := c.c.Get(key)
	if !ok {
		return zero, ErrNotFound
	}
	return v.(V), nil
}

func (c *Memo[V]) Set(k any, value V) error {
	if c.ttl <= 0 {
		return nil
	}
	key, err := c.Key(k)
	if err != nil {
		return err
	}
	if l := log.Trace(); l.Enabled() {
		l.Str("key", key).Msg("setting value to memo")
	}
	c.c.Set(key, value, c.ttl)
	return nil
}

// MutexGetSet returns the memoized value of k, or computes it with valueFunc, memoizes
// and returns it. Failed computations are not memoized.
// The boolean result reports whether the value was computed.
func (c *Memo[V]) MutexGetSet(k any, valueFunc func() (V, error)) (V, bool, error) {
	if c.ttl <= 0 {
		v, err := valueFunc()
		return v, true, err
	}

	if v, err := c.Get(k); err == nil {
		return v, false, nil
	} else if !errors.Is(err, ErrNotFound) {
		var zero V
		return zero, false, err
	}

	c.m.Lock()
	defer c.m.Unlock()
	if v, err := c.Get(k); err == nil {
		return v, false, nil
	}

	value, err := valueFunc()
	if err != nil {
		return value, true, err
	}

	if err := c.Set(k, value); err != nil {
		log.Error().Err(err).Str("prefix", c.prefix).Msg("failed to set value to memo in MutexGetSet")
	}
	return value, true, nil
}

// Len returns the number of live entries.
func (c *Memo[V]) Len() int {
	return c.c.ItemCount()
}

func (c *Memo[V]) Clear() {
	c.c.Flush()
}
