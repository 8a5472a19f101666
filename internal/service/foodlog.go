package service

import (
	"database/sql"
	"fmt"

	"github.com/nutrijourney/nutri/internal/model"
)

// LogFood appends one food-log row for the user and returns the new row id.
// date and day are stored as given; callers are expected to use YYYY-MM-DD
// dates so that the chronological ordering below matches the calendar.
func LogFood(sqldb *sql.DB, username string, food model.Food, date, day string) (int64, error) {
	if err := requireNonEmpty("username", username); err != nil {
		return 0, err
	}
	if err := requireNonEmpty("food name", food.Name); err != nil {
		return 0, err
	}
	res, err := sqldb.Exec(`
INSERT INTO food_log(username, food_name, calories, protein, fat, carbs, water, consumption_date, consumption_day)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
`, username, food.Name, food.Calories, food.Protein, food.Fat, food.Carbs, food.Water, date, day)
	if err != nil {
		return 0, fmt.Errorf("log food for %q: %w", username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve food log id: %w", err)
	}
	return id, nil
}

// FoodLog returns all log rows for the user in insertion order.
func FoodLog(sqldb *sql.DB, username string) ([]model.Food, error) {
	if err := requireNonEmpty("username", username); err != nil {
		return nil, err
	}
	return queryFoodLog(sqldb, `
SELECT id, food_name, calories, protein, fat, carbs, water, consumption_date, consumption_day
FROM food_log WHERE username = ? ORDER BY id
`, username)
}

// ChronologicalFoodLog returns all log rows for the user ordered by
// (consumption_date, consumption_day) ascending. The ordering compares the
// stored strings, so only ISO-formatted dates sort in calendar order.
func ChronologicalFoodLog(sqldb *sql.DB, username string) ([]model.Food, error) {
	if err := requireNonEmpty("username", username); err != nil {
		return nil, err
	}
	return queryFoodLog(sqldb, `
SELECT id, food_name, calories, protein, fat, carbs, water, consumption_date, consumption_day
FROM food_log WHERE username = ? ORDER BY consumption_date, consumption_day
`, username)
}

func queryFoodLog(sqldb *sql.DB, query, username string) ([]model.Food, error) {
	rows, err := sqldb.Query(query, username)
	if err != nil {
		return nil, fmt.Errorf("list food log for %q: %w", username, err)
	}
	defer rows.Close()

	log := make([]model.Food, 0)
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Fat, &f.Carbs, &f.Water, &f.Date, &f.Day); err != nil {
			return nil, fmt.Errorf("scan food log row: %w", err)
		}
		log = append(log, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food log: %w", err)
	}
	return log, nil
}

// UpdateFoodLog rewrites the name, macros, and water of every row matching
// (username, date, day) and returns how many rows were touched. The
// composite key is not unique, so the count can exceed one; use
// UpdateFoodLogEntry to address a single row.
func UpdateFoodLog(sqldb *sql.DB, username string, food model.Food, date, day string) (int64, error) {
	if err := requireNonEmpty("username", username); err != nil {
		return 0, err
	}
	if err := requireNonEmpty("food name", food.Name); err != nil {
		return 0, err
	}
	res, err := sqldb.Exec(`
UPDATE food_log
SET food_name = ?, calories = ?, protein = ?, fat = ?, carbs = ?, water = ?
WHERE username = ? AND consumption_date = ? AND consumption_day = ?
`, food.Name, food.Calories, food.Protein, food.Fat, food.Carbs, food.Water, username, date, day)
	if err != nil {
		return 0, fmt.Errorf("update food log for %q: %w", username, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read rows affected: %w", err)
	}
	return affected, nil
}

// DeleteFoodLog removes every row exactly matching all four key fields and
// returns how many rows were removed.
func DeleteFoodLog(sqldb *sql.DB, username, foodName, date, day string) (int64, error) {
	if err := requireNonEmpty("username", username); err != nil {
		return 0, err
	}
	if err := requireNonEmpty("food name", foodName); err != nil {
		return 0, err
	}
	if err := requireNonEmpty("date", date); err != nil {
		return 0, err
	}
	if err := requireNonEmpty("day", day); err != nil {
		return 0, err
	}
	res, err := sqldb.Exec(`
DELETE FROM food_log
WHERE username = ? AND food_name = ? AND consumption_date = ? AND consumption_day = ?
`, username, foodName, date, day)
	if err != nil {
		return 0, fmt.Errorf("delete food log for %q: %w", username, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read rows affected: %w", err)
	}
	return affected, nil
}

// UpdateFoodLogEntry rewrites a single row addressed by its id.
func UpdateFoodLogEntry(sqldb *sql.DB, id int64, food model.Food) error {
	if id <= 0 {
		return fmt.Errorf("entry id must be > 0")
	}
	if err := requireNonEmpty("food name", food.Name); err != nil {
		return err
	}
	res, err := sqldb.Exec(`
UPDATE food_log
SET food_name = ?, calories = ?, protein = ?, fat = ?, carbs = ?, water = ?
WHERE id = ?
`, food.Name, food.Calories, food.Protein, food.Fat, food.Carbs, food.Water, id)
	if err != nil {
		return fmt.Errorf("update food log entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update food log entry %d: %w", id, ErrEntryNotFound)
	}
	return nil
}

// DeleteFoodLogEntry removes a single row addressed by its id.
func DeleteFoodLogEntry(sqldb *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("entry id must be > 0")
	}
	res, err := sqldb.Exec(`DELETE FROM food_log WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete food log entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete food log entry %d: %w", id, ErrEntryNotFound)
	}
	return nil
}
