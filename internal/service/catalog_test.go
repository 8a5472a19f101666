package service_test

import (
	"testing"

	"github.com/nutrijourney/nutri/internal/service"
)

func TestCatalogFoodsListsSeededRows(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	// The catalog is seeded outside this application; emulate that with
	// direct inserts, including a legacy row with no water value.
	if _, err := db.Exec(`
INSERT INTO foods(name, calories, protein, fat, carbs, water) VALUES
  ('pisang', 89, 1.1, 0.3, 23, 75),
  ('apel', 52, 0.3, 0.2, 14, NULL);
`); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	foods, err := service.CatalogFoods(db)
	if err != nil {
		t.Fatalf("catalog foods: %v", err)
	}
	if len(foods) != 2 {
		t.Fatalf("expected 2 catalog foods, got %d", len(foods))
	}
	if foods[0].Name != "apel" || foods[1].Name != "pisang" {
		t.Fatalf("expected name order apel, pisang; got %+v", foods)
	}
	if foods[0].Water != 0 {
		t.Fatalf("expected NULL water coalesced to 0, got %f", foods[0].Water)
	}
	if foods[1].Water != 75 {
		t.Fatalf("expected water 75 for pisang, got %f", foods[1].Water)
	}
}

func TestCatalogFoodsEmptyCatalog(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	foods, err := service.CatalogFoods(db)
	if err != nil {
		t.Fatalf("catalog foods: %v", err)
	}
	if len(foods) != 0 {
		t.Fatalf("expected empty catalog, got %d rows", len(foods))
	}
}
