package model

// Food is one nutritional record: either a food-log row tied to a user and a
// consumption date/day, or a reference-catalog entry (Date and Day empty).
// Water is in ml, macros in grams, calories in kcal.
type Food struct {
	ID       int64
	Name     string
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
	Water    float64
	Date     string
	Day      string
}

// NewFood builds a Food with no water content recorded.
func NewFood(name string, calories, protein, fat, carbs float64) Food {
	return Food{
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Fat:      fat,
		Carbs:    carbs,
	}
}

// User is a profile plus an in-memory view of that user's food log. The
// struct is a plain value container: loading and persisting it is the
// service layer's job.
type User struct {
	Username      string
	Password      string
	FullName      string
	Age           int
	Weight        float64 // kg
	Height        float64 // cm
	Gender        string
	ActivityLevel float64
	FoodLog       []Food
}
