package favorites

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/dashtab/dashtab/internal/config"
	"github.com/dashtab/dashtab/internal/model"
)

// newTestService returns a service over a fresh in-memory store seeded with
// favorites A, B, C.
func newTestService(t *testing.T) (*Service, *config.Store) {
	t.Helper()

	store := config.NewStore(test.NewApp())
	settings := store.Load()
	settings.Favorites = []model.Favorite{
		{ID: "a", Name: "A", URL: "https://a.com"},
		{ID: "b", Name: "B", URL: "https://b.com"},
		{ID: "c", Name: "C", URL: "https://c.com"},
	}
	store.Save(settings)

	return NewService(store), store
}

func favoriteIDs(store *config.Store) []string {
	var ids []string
	for _, favorite := range store.Current().Favorites {
		ids = append(ids, favorite.ID)
	}
	return ids
}

func assertOrder(t *testing.T, store *config.Store, expected ...string) {
	t.Helper()

	ids := favoriteIDs(store)
	if len(ids) != len(expected) {
		t.Fatalf("Expected favorites %v, got %v", expected, ids)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Fatalf("Expected favorites %v, got %v", expected, ids)
		}
	}
}

func TestService_Add(t *testing.T) {
	svc, store := newTestService(t)

	favorite, ok := svc.Add("Docs", "docs.example.com")
	if !ok {
		t.Fatal("Add() with a non-empty URL should succeed")
	}
	if favorite.URL != "https://docs.example.com" {
		t.Errorf("Expected scheme-prefixed URL, got %q", favorite.URL)
	}
	if favorite.ID == "" {
		t.Error("Expected a generated id")
	}
	if len(store.Current().Favorites) != 4 {
		t.Errorf("Expected 4 favorites after add, got %d", len(store.Current().Favorites))
	}
}

func TestService_AddEmptyURL(t *testing.T) {
	svc, store := newTestService(t)

	if _, ok := svc.Add("Name only", ""); ok {
		t.Error("Add() with an empty URL should be rejected")
	}
	if _, ok := svc.Add("Name only", "   "); ok {
		t.Error("Add() with a blank URL should be rejected")
	}
	if len(store.Current().Favorites) != 3 {
		t.Errorf("Favorites should be unchanged, got %d entries", len(store.Current().Favorites))
	}
}

func TestService_Edit(t *testing.T) {
	svc, store := newTestService(t)

	ok := svc.Edit("b", model.Favorite{Name: "Bee", URL: "bee.example.com", IconURL: "https://bee.example.com/icon.png"})
	if !ok {
		t.Fatal("Edit() of an existing favorite should succeed")
	}

	assertOrder(t, store, "a", "b", "c")
	edited := store.Current().Favorites[1]
	if edited.Name != "Bee" {
		t.Errorf("Expected edited name Bee, got %q", edited.Name)
	}
	if edited.URL != "https://bee.example.com" {
		t.Errorf("Expected normalized URL, got %q", edited.URL)
	}
	if edited.IconURL != "https://bee.example.com/icon.png" {
		t.Errorf("Expected icon URL to be applied, got %q", edited.IconURL)
	}
}

func TestService_EditRejections(t *testing.T) {
	svc, store := newTestService(t)

	if svc.Edit("b", model.Favorite{Name: "Bee", URL: ""}) {
		t.Error("Edit() with an empty URL should be rejected")
	}
	if svc.Edit("missing", model.Favorite{Name: "X", URL: "https://x.com"}) {
		t.Error("Edit() with an unknown id should be a no-op")
	}
	if store.Current().Favorites[1].Name != "B" {
		t.Error("Rejected edits must not modify the favorite")
	}
}

func TestService_RemoveAndUndoRestoresIndex(t *testing.T) {
	svc, store := newTestService(t)

	token, removed, ok := svc.Remove("b")
	if !ok {
		t.Fatal("Remove() of an existing favorite should succeed")
	}
	if removed.ID != "b" {
		t.Errorf("Expected removed favorite b, got %s", removed.ID)
	}
	assertOrder(t, store, "a", "c")

	if !svc.Undo(token) {
		t.Fatal("Undo() within the window should succeed")
	}
	assertOrder(t, store, "a", "b", "c")
}

func TestService_UndoAfterExpiry(t *testing.T) {
	svc, store := newTestService(t)
	svc.SetUndoWindow(10 * time.Millisecond)

	token, _, ok := svc.Remove("b")
	if !ok {
		t.Fatal("Remove() should succeed")
	}

	time.Sleep(50 * time.Millisecond)

	if svc.Undo(token) {
		t.Error("Undo() after the window elapsed should be a no-op")
	}
	assertOrder(t, store, "a", "c")
}

func TestService_RemoveUnknownID(t *testing.T) {
	svc, store := newTestService(t)

	if _, _, ok := svc.Remove("missing"); ok {
		t.Error("Remove() with an unknown id should be a no-op")
	}
	assertOrder(t, store, "a", "b", "c")
}

func TestService_IndependentUndoOffers(t *testing.T) {
	svc, store := newTestService(t)

	tokenB, _, _ := svc.Remove("b")
	tokenC, _, _ := svc.Remove("c")
	assertOrder(t, store, "a")

	if !svc.Undo(tokenC) {
		t.Fatal("Second undo offer should be independent of the first")
	}
	if !svc.Undo(tokenB) {
		t.Fatal("First undo offer should still be open")
	}
	assertOrder(t, store, "a", "b", "c")
}

func TestService_Reorder(t *testing.T) {
	svc, store := newTestService(t)

	if !svc.Reorder("a", "c") {
		t.Fatal("Reorder() of known ids should succeed")
	}
	assertOrder(t, store, "b", "c", "a")
}

func TestService_ReorderNoOps(t *testing.T) {
	svc, store := newTestService(t)

	if svc.Reorder("a", "a") {
		t.Error("Reorder() onto itself should be a no-op")
	}
	if svc.Reorder("a", "missing") {
		t.Error("Reorder() with an unknown target should be a no-op")
	}
	if svc.Reorder("missing", "a") {
		t.Error("Reorder() with an unknown dragged id should be a no-op")
	}
	assertOrder(t, store, "a", "b", "c")
}
