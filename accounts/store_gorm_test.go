package accounts

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/paypay-hub/paypay-admin-bot/errors"
)

func testStore(t *testing.T) Store {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&Account{}); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return NewGormStore(db)
}

func TestGormStoreAccountIDs(t *testing.T) {
	store := testStore(t)

	for _, id := range []string{"a3", "a1", "a2"} {
		if err := store.InsertAccount(&Account{ID: id, Phone: "p", Pass: "s"}); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := store.AccountIDs()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"a1", "a2", "a3"}, ids); diff != "" {
		t.Errorf("expected ascending ids (-want +got):\n%s", diff)
	}
}

func TestGormStoreAccountNotFound(t *testing.T) {
	store := testStore(t)

	if _, err := store.Account("missing"); !errors.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestGormStoreUpdateTokens(t *testing.T) {
	t.Run("replaces both tokens", func(t *testing.T) {
		store := testStore(t)

		a := Account{ID: "a1", Phone: "p", Pass: "s", AccessToken: "old-at", RefreshToken: "old-rt"}
		if err := store.InsertAccount(&a); err != nil {
			t.Fatal(err)
		}

		if err := store.UpdateTokens("a1", "new-at", "new-rt"); err != nil {
			t.Fatal(err)
		}

		got, err := store.Account("a1")
		if err != nil {
			t.Fatal(err)
		}
		if got.AccessToken != "new-at" || got.RefreshToken != "new-rt" {
			t.Errorf("expected rotated pair, got %q/%q", got.AccessToken, got.RefreshToken)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		store := testStore(t)

		if err := store.UpdateTokens("missing", "at", "rt"); !errors.IsNotFound(err) {
			t.Errorf("expected not-found, got %v", err)
		}
	})
}
