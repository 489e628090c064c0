package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

const coll = "storefront_widget"

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "docs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(" "); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestInsertFindReplaceDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)
	text := identifier.Text("admin")
	unique := identifier.NewUnique()

	if err := store.InsertMany(ctx, coll, []ports.Record{
		{ID: text, Body: []byte(`{"n":1}`)},
		{ID: unique, Body: []byte(`{"n":2}`)},
	}); err != nil {
		t.Fatalf("insert many: %v", err)
	}

	body, found, err := store.FindByID(ctx, coll, unique)
	if err != nil || !found {
		t.Fatalf("find unique = %v, %v", found, err)
	}
	if string(body) != `{"n":2}` {
		t.Fatalf("body = %s, want {\"n\":2}", body)
	}

	if err := store.ReplaceByID(ctx, coll, ports.Record{ID: text, Body: []byte(`{"n":3}`)}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	body, _, _ = store.FindByID(ctx, coll, text)
	if string(body) != `{"n":3}` {
		t.Fatalf("body after replace = %s", body)
	}

	if err := store.DeleteByID(ctx, coll, text); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := store.FindByID(ctx, coll, text); found {
		t.Fatal("document still present after delete")
	}
}

func TestFindMissingIsNotAnError(t *testing.T) {
	t.Parallel()

	_, found, err := openTempStore(t).FindByID(context.Background(), coll, identifier.Text("ghost"))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found {
		t.Fatal("found = true for missing document")
	}
}

func TestInsertManyDuplicateRollsBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)
	existing := identifier.Text("a")
	if err := store.InsertMany(ctx, coll, []ports.Record{{ID: existing, Body: []byte(`{}`)}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	fresh := identifier.Text("b")
	err := store.InsertMany(ctx, coll, []ports.Record{
		{ID: fresh, Body: []byte(`{}`)},
		{ID: existing, Body: []byte(`{}`)},
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("insert many error = %v, want ErrConflict", err)
	}
	if _, found, _ := store.FindByID(ctx, coll, fresh); found {
		t.Fatal("batch was not rolled back")
	}
}

func TestTextAndUniqueIDsDoNotCollide(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)
	unique := identifier.NewUnique()
	text := identifier.Text(unique.String())

	if err := store.InsertMany(ctx, coll, []ports.Record{
		{ID: unique, Body: []byte(`"unique"`)},
		{ID: text, Body: []byte(`"text"`)},
	}); err != nil {
		t.Fatalf("insert many: %v", err)
	}
	body, _, _ := store.FindByID(ctx, coll, text)
	if string(body) != `"text"` {
		t.Fatalf("text body = %s", body)
	}
}

func TestReplaceMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	err := openTempStore(t).ReplaceByID(context.Background(), coll, ports.Record{ID: identifier.Text("x"), Body: []byte(`{}`)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("replace error = %v, want ErrNotFound", err)
	}
}

func TestRejectsUnsafeCollectionName(t *testing.T) {
	t.Parallel()

	_, _, err := openTempStore(t).FindByID(context.Background(), "widgets; DROP TABLE x", identifier.Text("a"))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("find error = %v, want ErrValidation", err)
	}
}
