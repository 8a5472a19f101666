package service

import (
	"database/sql"
	"fmt"

	"github.com/nutrijourney/nutri/internal/model"
)

// CatalogFoods returns the full reference catalog. The catalog is seeded
// externally and read-only here; water is coalesced to 0 for rows that
// predate the column.
func CatalogFoods(sqldb *sql.DB) ([]model.Food, error) {
	rows, err := sqldb.Query(`
SELECT name, calories, protein, fat, carbs, IFNULL(water, 0)
FROM foods ORDER BY name
`)
	if err != nil {
		return nil, fmt.Errorf("list catalog foods: %w", err)
	}
	defer rows.Close()

	foods := make([]model.Food, 0)
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.Name, &f.Calories, &f.Protein, &f.Fat, &f.Carbs, &f.Water); err != nil {
			return nil, fmt.Errorf("scan catalog food: %w", err)
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog foods: %w", err)
	}
	return foods, nil
}
