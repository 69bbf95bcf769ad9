// Package cache serves repeated catalog reads from Redis.
//
// Entries are keyed by a generation number. Any successful mutation bumps the
// generation, which orphans every cached response at once; orphaned entries
// expire on their own TTL. Responses that depend on the current time rather
// than on stored data must be excluded with WithBypass, since the generation
// never changes when an event merely starts.
package cache

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"eventHub/internal/lib/logger/sl"
	"fmt"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"net/http"
	"time"
)

const (
	headerCache = "X-Cache"
	cacheHit    = "HIT"
	cacheMiss   = "MISS"
)

type Cache struct {
	log    *slog.Logger
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
	bypass func(r *http.Request) bool
}

type Option func(c *Cache)

// WithBypass sends requests matched by fn straight to the handler without
// reading or storing an entry.
func WithBypass(fn func(r *http.Request) bool) Option {
	return func(c *Cache) {
		c.bypass = fn
	}
}

type entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

func New(log *slog.Logger, rdb redis.Cmdable, prefix string, ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		log:    log.With(slog.String("component", "middleware/cache")),
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache) generationKey() string {
	return c.prefix + ":generation"
}

func (c *Cache) entryKey(gen int64, r *http.Request) string {
	sum := sha1.Sum([]byte(r.URL.RequestURI()))
	return fmt.Sprintf("%s:gen:%d:%x", c.prefix, gen, sum)
}

func (c *Cache) generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, c.generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return gen, err
}

// Read answers GET requests from the cache and stores successful responses.
// Redis failures fall through to the handler.
func (c *Cache) Read(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || (c.bypass != nil && c.bypass(r)) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()

		gen, err := c.generation(ctx)
		if err != nil {
			c.log.Warn("cache unavailable", sl.Err(err))
			next.ServeHTTP(w, r)
			return
		}

		key := c.entryKey(gen, r)

		if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
			var e entry
			if err = json.Unmarshal(raw, &e); err == nil {
				if e.ContentType != "" {
					w.Header().Set("Content-Type", e.ContentType)
				}
				w.Header().Set(headerCache, cacheHit)
				w.WriteHeader(e.Status)
				_, _ = w.Write(e.Body)
				return
			}
			c.log.Warn("dropping unreadable cache entry", slog.String("key", key), sl.Err(err))
		} else if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache read failed", sl.Err(err))
		}

		var buf bytes.Buffer

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Tee(&buf)
		ww.Header().Set(headerCache, cacheMiss)

		next.ServeHTTP(ww, r)

		if ww.Status() != http.StatusOK {
			return
		}

		raw, err := json.Marshal(entry{
			Status:      http.StatusOK,
			ContentType: ww.Header().Get("Content-Type"),
			Body:        buf.Bytes(),
		})
		if err != nil {
			c.log.Warn("failed to encode cache entry", sl.Err(err))
			return
		}

		if err = c.rdb.SetEx(context.WithoutCancel(ctx), key, raw, c.ttl).Err(); err != nil {
			c.log.Warn("cache write failed", sl.Err(err))
		}
	}

	return http.HandlerFunc(fn)
}

// Invalidate bumps the generation after a mutation succeeds.
func (c *Cache) Invalidate(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		if r.Method == http.MethodGet || ww.Status() >= http.StatusBadRequest {
			return
		}

		if err := c.rdb.Incr(context.WithoutCancel(r.Context()), c.generationKey()).Err(); err != nil {
			c.log.Warn("cache invalidation failed", sl.Err(err))
		}
	}

	return http.HandlerFunc(fn)
}
