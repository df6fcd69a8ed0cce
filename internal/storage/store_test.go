package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tracker.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	if _, found, err := store.Get(ctx, KeyExpenses); err != nil || found {
		t.Fatalf("fresh store should have no expenses doc (found=%v err=%v)", found, err)
	}

	if err := store.Put(ctx, KeyExpenses, `[]`); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, KeyExpenses, `[{"id":1}]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, found, err := store.Get(ctx, KeyExpenses)
	if err != nil || !found {
		t.Fatalf("get after put (found=%v err=%v)", found, err)
	}
	if got != `[{"id":1}]` {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestSQLiteStoreIndependentKeys(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tracker.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Put(ctx, KeyIncome, "1234.50"); err != nil {
		t.Fatalf("put income: %v", err)
	}
	if err := store.Put(ctx, KeyCategories, `["Pets"]`); err != nil {
		t.Fatalf("put categories: %v", err)
	}

	income, found, err := store.Get(ctx, KeyIncome)
	if err != nil || !found || income != "1234.50" {
		t.Fatalf("income doc mismatch: %q (found=%v err=%v)", income, found, err)
	}
	cats, found, err := store.Get(ctx, KeyCategories)
	if err != nil || !found || cats != `["Pets"]` {
		t.Fatalf("categories doc mismatch: %q (found=%v err=%v)", cats, found, err)
	}
}

func TestMemoryStoreFailPuts(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, KeyIncome, "0.00"); err != nil {
		t.Fatalf("put: %v", err)
	}
	store.FailPuts = context.DeadlineExceeded
	if err := store.Put(ctx, KeyIncome, "1.00"); err == nil {
		t.Fatal("expected forced put failure")
	}
	// The failed write must not have replaced the stored value.
	v, found, _ := store.Get(ctx, KeyIncome)
	if !found || v != "0.00" {
		t.Fatalf("expected previous value to survive, got %q (found=%v)", v, found)
	}
}
