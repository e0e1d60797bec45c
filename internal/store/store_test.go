package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raysh454/fhscan/internal/catalog"
	"github.com/raysh454/fhscan/internal/scanner"
	"github.com/raysh454/fhscan/internal/score"
	"github.com/raysh454/fhscan/internal/store"
	"github.com/raysh454/fhscan/internal/testutil"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir(), &testutil.DummyLogger{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func summary(text, jurisdiction string) scanner.Summary {
	return scanner.New(catalog.MustDefault(), nil).QuickScan(text, jurisdiction)
}

// ─── Save / Get ─────────────────────────────────────────────────────────

func TestSaveAndGet(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	ctx := context.Background()

	text := "No kids. Master bedroom."
	sum := summary(text, "CA")
	rec, err := s.Save(ctx, "text", text, sum)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Score != 70 || got.Risk != score.High || got.HighCount != 1 || got.LowCount != 1 {
		t.Errorf("unexpected record %+v", got)
	}
	if got.Jurisdiction != "CA" || got.Excerpt != text || got.Source != "text" {
		t.Errorf("unexpected metadata %+v", got)
	}
	if len(got.Violations) != 2 || got.Violations[0].RuleID != sum.Violations[0].RuleID {
		t.Errorf("violations not round-tripped: %+v", got.Violations)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("created_at %v != %v", got.CreatedAt, rec.CreatedAt)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, store.ErrScanNotFound) {
		t.Errorf("expected ErrScanNotFound, got %v", err)
	}
}

func TestSave_TruncatesExcerpt(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	long := strings.Repeat("é", store.ExcerptLen+20)
	rec, err := s.Save(context.Background(), "text", long, summary(long, ""))
	if err != nil {
		t.Fatal(err)
	}
	if n := len([]rune(rec.Excerpt)); n != store.ExcerptLen+1 {
		t.Errorf("excerpt has %d runes", n)
	}
}

// ─── List / Delete ──────────────────────────────────────────────────────

func TestList_NewestFirstWithLimit(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	ctx := context.Background()

	var ids []string
	for _, text := range []string{"one", "two", "three"} {
		rec, err := s.Save(ctx, "text", text, summary(text, ""))
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, rec.ID)
	}

	all, err := s.List(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].ID != ids[2] || all[2].ID != ids[0] {
		t.Errorf("unexpected order: %v vs %v", all, ids)
	}

	two, _ := s.List(ctx, 2)
	if len(two) != 2 {
		t.Errorf("expected limit 2, got %d", len(two))
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	ctx := context.Background()
	rec, _ := s.Save(ctx, "text", "x", summary("x", ""))

	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, rec.ID); !errors.Is(err, store.ErrScanNotFound) {
		t.Errorf("second delete: %v", err)
	}
}

func TestOpen_CreatesDatabaseFile(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "nested", "root")
	s, err := store.Open(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, err := os.Stat(filepath.Join(dir, store.DBFile)); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}
