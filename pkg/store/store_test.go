package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

func testChart() *astro.Chart {
	return &astro.Chart{
		Mode: astro.ModeNatal,
		First: astro.Subject{
			Name:      "John",
			City:      "Liverpool",
			Nation:    "GB",
			Lat:       53.4,
			Lng:       -2.98,
			LocalTime: time.Date(1940, 10, 9, 18, 30, 0, 0, time.UTC),
		},
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(testChart())
	if _, err := uuid.Parse(doc.ID); err != nil {
		t.Errorf("expected UUID document ID, got %q", doc.ID)
	}
	if doc.CreatedAt.IsZero() || !doc.CreatedAt.Equal(doc.UpdatedAt) {
		t.Error("timestamps should be set and equal on creation")
	}

	// A chart with its own ID keeps it.
	chart := testChart()
	chart.ID = "chart-42"
	if doc := NewDocument(chart); doc.ID != "chart-42" {
		t.Errorf("document ID = %q, want chart-42", doc.ID)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer s.Close(ctx)

	doc := NewDocument(testChart())
	doc.SVG = "<svg/>"
	doc.Theme = "classic"
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != doc.ID || got.SVG != "<svg/>" || got.Theme != "classic" {
		t.Errorf("Get returned %+v", got)
	}
	if got.Chart == nil || got.Chart.First.Name != "John" {
		t.Error("chart payload not preserved")
	}

	// Put replaces.
	doc.SVG = "<svg>v2</svg>"
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	got, _ = s.Get(ctx, doc.ID)
	if got.SVG != "<svg>v2</svg>" {
		t.Errorf("replace did not take: %q", got.SVG)
	}
}

func TestFileStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete missing = %v, want ErrNotFound", err)
	}
}

func TestFileStoreRejectsPathIDs(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	for _, id := range []string{"", "..", "a/b", `a\b`} {
		if _, err := s.Get(ctx, id); err == nil || errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%q) should reject the ID", id)
		}
		if err := s.Put(ctx, &ChartDocument{ID: id}); err == nil {
			t.Errorf("Put(%q) should reject the ID", id)
		}
	}
}

func TestFileStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	for _, id := range []string{"b", "a", "c"} {
		chart := testChart()
		chart.ID = id
		if err := s.Put(ctx, NewDocument(chart)); err != nil {
			t.Fatalf("Put %s: %v", id, err)
		}
	}

	ids, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("List = %v, want sorted [a b c]", ids)
	}

	if err := s.Delete(ctx, "b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	ids, _ = s.List(ctx)
	if len(ids) != 2 {
		t.Errorf("List after delete = %v", ids)
	}
}

// TestMongoStore runs against a live MongoDB when ASTROWHEEL_MONGO_URI is set,
// e.g. ASTROWHEEL_MONGO_URI=mongodb://localhost:27017 go test ./pkg/store/...
func TestMongoStore(t *testing.T) {
	uri := os.Getenv("ASTROWHEEL_MONGO_URI")
	if uri == "" {
		t.Skip("ASTROWHEEL_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := NewMongoStore(ctx, uri, "astrowheel_test", "charts")
	if err != nil {
		t.Fatalf("NewMongoStore: %v", err)
	}
	defer s.Close(ctx)

	doc := NewDocument(testChart())
	doc.SVG = "<svg/>"
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}
	defer s.Delete(ctx, doc.ID)

	got, err := s.Get(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.SVG != "<svg/>" || got.Chart == nil || got.Chart.First.Name != "John" {
		t.Errorf("Get returned %+v", got)
	}

	ids, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, id := range ids {
		if id == doc.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("List should contain %s", doc.ID)
	}

	if err := s.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
}
