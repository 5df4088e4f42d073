package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("cache: key not found")

// Singular holds at most one value of type T, optionally expiring.
func NewSingular[T any](key string) *Singular[T] {
	return &Singular[T]{
		key: key,
		c:   cache.New(cache.NoExpiration, time.Minute*10),
	}
}

type Singular[T any] struct {
	key string

	c *cache.Cache
}

func (c *Singular[T]) Get() (T, error) {
	result, ok := c.c.Get(c.key)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return result.(T), nil
}

// Set replaces the held value. An expire of zero or less keeps it until it is
// replaced or deleted.
func (c *Singular[T]) Set(value T, expire time.Duration) {
	if expire <= 0 {
		expire = cache.NoExpiration
	}
	c.c.Set(c.key, value, expire)
}

func (c *Singular[T]) Delete() {
	c.c.Delete(c.key)
}

// OnEvicted registers f to run when the held value expires or is deleted. It does
// not run when Set overwrites a live value.
func (c *Singular[T]) OnEvicted(f func(T)) {
	c.c.OnEvicted(func(_ string, v interface{}) {
		f(v.(T))
	})
}
