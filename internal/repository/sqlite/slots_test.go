package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "slots.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSlotsRoundTrip(t *testing.T) {
	ctx := context.Background()
	slots := openTestDB(t).Scope(LocalScope)

	if _, found, err := slots.Get(ctx, "k"); err != nil || found {
		t.Fatalf("Get() on empty db = found %v, err %v", found, err)
	}

	if err := slots.Set(ctx, "k", `{"push":true}`); err != nil {
		t.Fatal(err)
	}
	if err := slots.Set(ctx, "k", `{"push":false}`); err != nil {
		t.Fatal(err)
	}

	v, found, err := slots.Get(ctx, "k")
	if err != nil || !found || v != `{"push":false}` {
		t.Errorf("Get() = %q, %v, %v", v, found, err)
	}

	if err := slots.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if err := slots.Delete(ctx, "k"); err != nil {
		t.Errorf("deleting an absent slot should not fail: %v", err)
	}
	if _, found, _ := slots.Get(ctx, "k"); found {
		t.Error("slot should be gone")
	}
}

func TestSlotsSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "slots.db")

	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Scope(LocalScope).Set(ctx, "premium-card-dismissed", "true"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if v, found, _ := db.Scope(LocalScope).Get(ctx, "premium-card-dismissed"); !found || v != "true" {
		t.Errorf("after reopen Get() = %q, %v", v, found)
	}
}

func TestScopesAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	user := uuid.New()

	if err := db.ForUser(user).Set(ctx, "k", "user"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := db.Scope(LocalScope).Get(ctx, "k"); found {
		t.Error("local scope should not see user slot")
	}
	if v, _, _ := db.ForUser(user).Get(ctx, "k"); v != "user" {
		t.Errorf("user slot = %q", v)
	}
}
