package uow_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/jsamuelsen11/storefront-core/internal/app/uow"
	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
)

type gadget struct {
	Label string `json:"label"`
}

func TestCollectionName(t *testing.T) {
	t.Parallel()

	type OrderLine struct{}

	if got, err := uow.CollectionName[widget]("storefront_"); err != nil || got != "storefront_widget" {
		t.Errorf("CollectionName[widget] = %q, %v", got, err)
	}
	if got, err := uow.CollectionName[*OrderLine]("shop_"); err != nil || got != "shop_orderline" {
		t.Errorf("CollectionName[*OrderLine] = %q, %v", got, err)
	}
	if _, err := uow.CollectionName[[]widget]("storefront_"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CollectionName[[]widget] error = %v, want ErrValidation", err)
	}
	if _, err := uow.CollectionName[struct{ A int }]("storefront_"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CollectionName[anonymous] error = %v, want ErrValidation", err)
	}
	if _, err := uow.CollectionName[widget]("store-front."); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CollectionName with bad prefix error = %v, want ErrValidation", err)
	}
}

func TestUnitOfWork_OneCollectionPerType(t *testing.T) {
	t.Parallel()

	u := uow.New(newRecordingStore())
	u.Begin()

	a, err := uow.CollectionOf[widget](u)
	if err != nil {
		t.Fatalf("CollectionOf() error = %v", err)
	}
	if err := uow.Add(u, identifier.Text("w-1"), widget{}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	b, err := uow.CollectionOf[widget](u)
	if err != nil {
		t.Fatalf("CollectionOf() error = %v", err)
	}
	if a != b {
		t.Error("CollectionOf returned a different collection for the same type")
	}
	if !b.Pending(identifier.Text("w-1")).InSaves {
		t.Error("Add did not stage into the shared collection")
	}
	if got := u.Collections(); !slices.Equal(got, []string{"storefront_widget"}) {
		t.Errorf("Collections() = %v", got)
	}
}

func TestUnitOfWork_EndCommitsInRegistrationOrder(t *testing.T) {
	t.Parallel()

	store := newRecordingStore()
	u := uow.New(store)
	u.Begin()

	mustStage(t,
		uow.Update(u, identifier.Text("g-1"), gadget{Label: "g"}),
		uow.Add(u, identifier.Text("w-1"), widget{Name: "w"}),
		uow.Delete[gadget](u, identifier.Text("g-2")),
	)

	if err := u.End(context.Background(), nil); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	want := []string{
		"replace:storefront_gadget:text:g-1",
		"delete:storefront_gadget:text:g-2",
		"insert:storefront_widget:text:w-1",
	}
	if got := store.Calls(); !slices.Equal(got, want) {
		t.Errorf("store calls = %v, want %v", got, want)
	}
}

func TestUnitOfWork_EndWithErrorCommitsNothing(t *testing.T) {
	t.Parallel()

	store := newRecordingStore()
	u := uow.New(store)
	u.Begin()
	mustStage(t,
		uow.Add(u, identifier.Text("w-1"), widget{}),
		uow.Update(u, identifier.Text("g-1"), gadget{}),
	)

	cause := errors.New("behavior rejected")
	if err := u.End(context.Background(), cause); !errors.Is(err, cause) {
		t.Fatalf("End() error = %v, want %v", err, cause)
	}
	if calls := store.Calls(); len(calls) != 0 {
		t.Errorf("store calls = %v, want none", calls)
	}
}

func TestUnitOfWork_AddThenDeleteIssuesNoWrites(t *testing.T) {
	t.Parallel()

	store := newRecordingStore()
	u := uow.New(store)
	u.Begin()

	id := identifier.NewUnique()
	mustStage(t,
		uow.Add(u, id, widget{Name: "temp"}),
		uow.Delete[widget](u, id),
	)

	c, err := uow.CollectionOf[widget](u)
	if err != nil {
		t.Fatalf("CollectionOf() error = %v", err)
	}
	if ps := c.Pending(id); ps != (uow.PendingState[widget]{}) {
		t.Errorf("Pending() = %+v, want empty", ps)
	}
	if !c.Empty() {
		t.Error("collection has pending writes")
	}

	if err := u.End(context.Background(), nil); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if calls := store.Calls(); len(calls) != 0 {
		t.Errorf("store calls = %v, want none", calls)
	}
}

func TestUnitOfWork_EmptyEndIssuesNoCalls(t *testing.T) {
	t.Parallel()

	store := newRecordingStore()
	u := uow.New(store)
	u.Begin()
	if _, err := uow.CollectionOf[widget](u); err != nil {
		t.Fatalf("CollectionOf() error = %v", err)
	}

	if err := u.End(context.Background(), nil); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if calls := store.Calls(); len(calls) != 0 {
		t.Errorf("store calls = %v, want none", calls)
	}
}

func TestUnitOfWork_PartialCommit(t *testing.T) {
	t.Parallel()

	store := newRecordingStore()
	boom := errors.New("disk full")
	store.failOn("insert", "storefront_gadget", boom)

	u := uow.New(store)
	u.Begin()
	mustStage(t,
		uow.Add(u, identifier.Text("w-1"), widget{}),
		uow.Add(u, identifier.Text("g-1"), gadget{}),
	)

	err := u.End(context.Background(), nil)

	var partial *uow.PartialCommitError
	if !errors.As(err, &partial) {
		t.Fatalf("End() error = %v, want *PartialCommitError", err)
	}
	if partial.Failed != "storefront_gadget" {
		t.Errorf("Failed = %q, want storefront_gadget", partial.Failed)
	}
	if !slices.Equal(partial.Committed, []string{"storefront_widget"}) {
		t.Errorf("Committed = %v, want [storefront_widget]", partial.Committed)
	}
	if !errors.Is(err, boom) {
		t.Errorf("error does not wrap %v", boom)
	}
}

func TestUnitOfWork_EndTwice(t *testing.T) {
	t.Parallel()

	u := uow.New(newRecordingStore())
	u.Begin()
	ctx := context.Background()

	if err := u.End(ctx, nil); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if err := u.End(ctx, nil); !errors.Is(err, uow.ErrAlreadyEnded) {
		t.Errorf("second End() error = %v, want ErrAlreadyEnded", err)
	}
	if err := uow.Add(u, identifier.Text("w-1"), widget{}); !errors.Is(err, uow.ErrAlreadyEnded) {
		t.Errorf("Add() after End error = %v, want ErrAlreadyEnded", err)
	}
	if _, err := u.Touch(identifier.Text("w-1")); !errors.Is(err, uow.ErrAlreadyEnded) {
		t.Errorf("Touch() after End error = %v, want ErrAlreadyEnded", err)
	}
}

func TestUnitOfWork_TouchedBag(t *testing.T) {
	t.Parallel()

	u := uow.New(newRecordingStore())
	id := identifier.Text("admin")

	if _, err := u.Touch(id); !errors.Is(err, uow.ErrNotBegun) {
		t.Fatalf("Touch() before Begin error = %v, want ErrNotBegun", err)
	}

	u.Begin()
	first, err := u.Touch(id)
	if err != nil || !first {
		t.Fatalf("Touch() = %v, %v; want true, nil", first, err)
	}

	u.Begin() // idempotent: keeps the bag
	again, err := u.Touch(id)
	if err != nil || again {
		t.Fatalf("second Touch() = %v, %v; want false, nil", again, err)
	}
	seen, err := u.Touched(id)
	if err != nil || !seen {
		t.Errorf("Touched() = %v, %v; want true, nil", seen, err)
	}
	other, err := u.Touched(identifier.Text("editor"))
	if err != nil || other {
		t.Errorf("Touched(other) = %v, %v; want false, nil", other, err)
	}
}

func TestUnitOfWork_GetReadsCommittedOnly(t *testing.T) {
	t.Parallel()

	store := newRecordingStore()
	id := identifier.Text("w-1")
	store.seed("storefront_widget", id, `{"name":"committed"}`)

	u := uow.New(store)
	u.Begin()
	mustStage(t, uow.Update(u, id, widget{Name: "staged"}))

	got, found, err := uow.Get[widget](context.Background(), u, id)
	if err != nil || !found {
		t.Fatalf("Get() = _, %v, %v", found, err)
	}
	if got.Name != "committed" {
		t.Errorf("Get().Name = %q, want committed", got.Name)
	}
}

func TestQuery_Unsupported(t *testing.T) {
	t.Parallel()

	u := uow.New(newRecordingStore())
	_, err := uow.Query[widget](context.Background(), u, uow.QueryDefinition{Limit: 10})
	if !errors.Is(err, domain.ErrUnsupported) {
		t.Errorf("Query() error = %v, want ErrUnsupported", err)
	}
}

func TestWithPrefix(t *testing.T) {
	t.Parallel()

	store := newRecordingStore()
	u := uow.New(store, uow.WithPrefix("test_"))
	u.Begin()
	mustStage(t, uow.Add(u, identifier.Text("w-1"), widget{}))

	if err := u.End(context.Background(), nil); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	want := []string{"insert:test_widget:text:w-1"}
	if got := store.Calls(); !slices.Equal(got, want) {
		t.Errorf("store calls = %v, want %v", got, want)
	}
}
