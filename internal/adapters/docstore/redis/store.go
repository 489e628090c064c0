// Package redis provides a Redis-backed document store. Each collection is
// one hash keyed by the collection name; fields are identifier keys
// ("text:admin", "unique:<uuid>") and values are document bodies.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

// Compile-time check that Store implements ports.DocumentStore.
var _ ports.DocumentStore = (*Store)(nil)

// insertAll sets every field/value pair in ARGV only if none of the fields
// exist. It returns the first existing field, or "" on success. HSET is
// issued in chunks of 512 pairs because unpack is bounded by Lua's C stack
// (LUAI_MAXCSTACK, 8000 values).
var insertAll = goredis.NewScript(`
for i = 1, #ARGV, 2 do
  if redis.call("HEXISTS", KEYS[1], ARGV[i]) == 1 then
    return ARGV[i]
  end
end
local chunk = 1024
for i = 1, #ARGV, chunk do
  redis.call("HSET", KEYS[1], unpack(ARGV, i, math.min(i + chunk - 1, #ARGV)))
end
return ""
`)

// replaceExisting sets the field only if it already exists.
var replaceExisting = goredis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 0 then
  return 0
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
return 1
`)

// Store persists documents in Redis hashes.
type Store struct {
	rdb goredis.UniversalClient
}

// New wraps an existing client.
func New(rdb goredis.UniversalClient) *Store {
	return &Store{rdb: rdb}
}

// Open connects to addr and verifies the connection.
func Open(ctx context.Context, addr string) (*Store, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return New(rdb), nil
}

// Close closes the client.
func (s *Store) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}

// Ping verifies Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// FindByID returns the body stored under id.
func (s *Store) FindByID(ctx context.Context, collection string, id identifier.ID) ([]byte, bool, error) {
	body, err := s.rdb.HGet(ctx, collection, id.Key()).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find %s in %s: %w", id.Key(), collection, err)
	}
	return body, true, nil
}

// InsertMany inserts all records atomically. If any id already exists
// nothing is written and domain.ErrConflict is returned.
func (s *Store) InsertMany(ctx context.Context, collection string, records []ports.Record) error {
	if len(records) == 0 {
		return nil
	}

	args := make([]any, 0, len(records)*2)
	seen := make(map[identifier.ID]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%s %s: duplicate in batch: %w", collection, r.ID.Key(), domain.ErrConflict)
		}
		seen[r.ID] = struct{}{}
		args = append(args, r.ID.Key(), r.Body)
	}

	existing, err := insertAll.Run(ctx, s.rdb, []string{collection}, args...).Text()
	if err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	if existing != "" {
		return fmt.Errorf("%s %s: %w", collection, existing, domain.ErrConflict)
	}
	return nil
}

// ReplaceByID overwrites an existing document.
func (s *Store) ReplaceByID(ctx context.Context, collection string, rec ports.Record) error {
	replaced, err := replaceExisting.Run(ctx, s.rdb, []string{collection}, rec.ID.Key(), rec.Body).Int()
	if err != nil {
		return fmt.Errorf("replace %s in %s: %w", rec.ID.Key(), collection, err)
	}
	if replaced == 0 {
		return fmt.Errorf("%s %s: %w", collection, rec.ID.Key(), domain.ErrNotFound)
	}
	return nil
}

// DeleteByID removes a document if present.
func (s *Store) DeleteByID(ctx context.Context, collection string, id identifier.ID) error {
	if err := s.rdb.HDel(ctx, collection, id.Key()).Err(); err != nil {
		return fmt.Errorf("delete %s from %s: %w", id.Key(), collection, err)
	}
	return nil
}
