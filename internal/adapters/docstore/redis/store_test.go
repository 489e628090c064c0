package redis_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/storefront-core/internal/adapters/docstore/redis"
	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

// openStore connects to REDIS_ADDR and returns a fresh collection name.
// Tests are skipped when REDIS_ADDR is unset.
func openStore(t *testing.T) (*redis.Store, string) {
	t.Helper()
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	store, err := redis.Open(ctx, addr)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	coll := "storefront_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	return store, coll
}

func TestOpenRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := redis.Open(context.Background(), " "); err == nil {
		t.Fatal("expected empty address error")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, coll := openStore(t)
	ctx := context.Background()
	id := identifier.Text("admin")

	if err := store.InsertMany(ctx, coll, []ports.Record{{ID: id, Body: []byte(`{"n":1}`)}}); err != nil {
		t.Fatalf("insert many: %v", err)
	}
	t.Cleanup(func() { _ = store.DeleteByID(context.Background(), coll, id) })

	body, found, err := store.FindByID(ctx, coll, id)
	if err != nil || !found || string(body) != `{"n":1}` {
		t.Fatalf("find = %s, %v, %v", body, found, err)
	}

	if err := store.ReplaceByID(ctx, coll, ports.Record{ID: id, Body: []byte(`{"n":2}`)}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	body, _, _ = store.FindByID(ctx, coll, id)
	if string(body) != `{"n":2}` {
		t.Fatalf("body after replace = %s", body)
	}

	if err := store.DeleteByID(ctx, coll, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := store.FindByID(ctx, coll, id); found {
		t.Fatal("document still present after delete")
	}
}

func TestInsertManyConflictWritesNothing(t *testing.T) {
	t.Parallel()

	store, coll := openStore(t)
	ctx := context.Background()
	existing := identifier.Text("a")
	fresh := identifier.Text("b")
	t.Cleanup(func() {
		_ = store.DeleteByID(context.Background(), coll, existing)
		_ = store.DeleteByID(context.Background(), coll, fresh)
	})

	if err := store.InsertMany(ctx, coll, []ports.Record{{ID: existing, Body: []byte(`{}`)}}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	err := store.InsertMany(ctx, coll, []ports.Record{
		{ID: fresh, Body: []byte(`{}`)},
		{ID: existing, Body: []byte(`{}`)},
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("insert many error = %v, want ErrConflict", err)
	}
	if _, found, _ := store.FindByID(ctx, coll, fresh); found {
		t.Fatal("partial batch was written")
	}
}

func TestReplaceMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store, coll := openStore(t)
	err := store.ReplaceByID(context.Background(), coll, ports.Record{ID: identifier.Text("ghost"), Body: []byte(`{}`)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("replace error = %v, want ErrNotFound", err)
	}
}

func TestInsertManyLargeBatch(t *testing.T) {
	t.Parallel()

	store, coll := openStore(t)
	ctx := context.Background()

	const n = 20000
	records := make([]ports.Record, n)
	for i := range records {
		records[i] = ports.Record{ID: identifier.Text(fmt.Sprintf("sku-%05d", i)), Body: []byte(`{}`)}
	}
	t.Cleanup(func() {
		rdb := goredis.NewClient(&goredis.Options{Addr: os.Getenv("REDIS_ADDR")})
		defer func() { _ = rdb.Close() }()
		_ = rdb.Del(context.Background(), coll).Err()
	})

	if err := store.InsertMany(ctx, coll, records); err != nil {
		t.Fatalf("insert many: %v", err)
	}
	for _, i := range []int{0, 1023, 1024, n - 1} {
		if _, found, err := store.FindByID(ctx, coll, records[i].ID); err != nil || !found {
			t.Fatalf("record %d: found=%v err=%v", i, found, err)
		}
	}
}
