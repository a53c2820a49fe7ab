package repo

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	dom "github.com/Dr-Min/Scheduler/internal/domain"
	"github.com/Dr-Min/Scheduler/internal/storage"
)

func setupTestRepo(t *testing.T) *SQLiteScheduleRepo {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLiteScheduleRepo(db)
}

func strPtr(s string) *string { return &s }

func TestCreateAssignsFreshIDs(t *testing.T) {
	r := setupTestRepo(t)
	ctx := context.Background()

	first, err := r.Create(ctx, dom.Schedule{Date: "2024-01-01", User: "alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := r.Create(ctx, dom.Schedule{Date: "2024-01-01", User: "alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID <= 0 || second.ID <= 0 {
		t.Fatalf("ids must be positive, got %d and %d", first.ID, second.ID)
	}
	if first.ID == second.ID {
		t.Fatalf("sequential creates shared id %d", first.ID)
	}
}

func TestCreateRoundTripsOptionals(t *testing.T) {
	r := setupTestRepo(t)
	ctx := context.Background()

	rec, err := r.Create(ctx, dom.Schedule{
		Date:        "2024-01-02",
		User:        "bob",
		CheckInTime: strPtr("07:30"),
		Exercised:   true,
		Reflection:  strPtr("good day"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.CheckInTime == nil || *rec.CheckInTime != "07:30" {
		t.Errorf("checkInTime not stored: %v", rec.CheckInTime)
	}
	if !rec.Exercised {
		t.Errorf("exercised not stored")
	}
	if rec.Reflection == nil || *rec.Reflection != "good day" {
		t.Errorf("reflection not stored: %v", rec.Reflection)
	}

	bare, err := r.Create(ctx, dom.Schedule{Date: "2024-01-03", User: "bob"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if bare.CheckInTime != nil || bare.Reflection != nil {
		t.Errorf("optionals should stay NULL, got %v / %v", bare.CheckInTime, bare.Reflection)
	}
	if bare.Exercised {
		t.Errorf("exercised should default to false")
	}
}

func TestListReturnsEverythingInInsertionOrder(t *testing.T) {
	r := setupTestRepo(t)
	ctx := context.Background()

	for _, user := range []string{"alice", "bob", "alice"} {
		if _, err := r.Create(ctx, dom.Schedule{Date: "2024-02-01", User: user}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("list not in id order: %d before %d", list[i-1].ID, list[i].ID)
		}
	}
}

func TestUpdateWritesMutableFieldsOnly(t *testing.T) {
	r := setupTestRepo(t)
	ctx := context.Background()

	rec, err := r.Create(ctx, dom.Schedule{Date: "2024-01-01", User: "alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	patch := rec
	patch.CheckInTime = strPtr("08:00")
	patch.Exercised = true
	updated, err := r.Update(ctx, rec.ID, patch)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != rec.ID || updated.Date != "2024-01-01" || updated.User != "alice" {
		t.Errorf("immutable fields changed: %+v", updated)
	}
	if updated.CheckInTime == nil || *updated.CheckInTime != "08:00" {
		t.Errorf("checkInTime not updated: %v", updated.CheckInTime)
	}
	if !updated.Exercised {
		t.Errorf("exercised not updated")
	}
	if updated.Reflection != nil {
		t.Errorf("reflection should still be NULL, got %v", *updated.Reflection)
	}
}

func TestUpdateUnknownIDReturnsNoRows(t *testing.T) {
	r := setupTestRepo(t)

	_, err := r.Update(context.Background(), 999, dom.Schedule{Exercised: true})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestFindOne(t *testing.T) {
	r := setupTestRepo(t)
	ctx := context.Background()

	_, err := r.FindOne(ctx, "alice", "2024-01-01")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows on empty table, got %v", err)
	}

	first, err := r.Create(ctx, dom.Schedule{Date: "2024-01-01", User: "alice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// A duplicate user/date pair is allowed; FindOne picks the earliest.
	if _, err := r.Create(ctx, dom.Schedule{Date: "2024-01-01", User: "alice"}); err != nil {
		t.Fatalf("create duplicate: %v", err)
	}

	got, err := r.FindOne(ctx, "alice", "2024-01-01")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("expected earliest record %d, got %d", first.ID, got.ID)
	}
}

func TestListByUserFilters(t *testing.T) {
	r := setupTestRepo(t)
	ctx := context.Background()

	for _, s := range []dom.Schedule{
		{Date: "2024-01-01", User: "alice"},
		{Date: "2024-01-02", User: "alice"},
		{Date: "2024-01-01", User: "bob"},
	} {
		if _, err := r.Create(ctx, s); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := r.ListByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows for alice, got %d", len(list))
	}
	for _, s := range list {
		if s.User != "alice" {
			t.Errorf("foreign record in result: %+v", s)
		}
	}
}
