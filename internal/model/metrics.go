package model

import "strings"

// The totals sum the in-memory food log, not the store: reload the log
// first if persisted rows may have changed.

func (u *User) TotalCalories() float64 {
	var sum float64
	for _, f := range u.FoodLog {
		sum += f.Calories
	}
	return sum
}

func (u *User) TotalProtein() float64 {
	var sum float64
	for _, f := range u.FoodLog {
		sum += f.Protein
	}
	return sum
}

func (u *User) TotalFat() float64 {
	var sum float64
	for _, f := range u.FoodLog {
		sum += f.Fat
	}
	return sum
}

func (u *User) TotalCarbs() float64 {
	var sum float64
	for _, f := range u.FoodLog {
		sum += f.Carbs
	}
	return sum
}

func (u *User) TotalWater() float64 {
	var sum float64
	for _, f := range u.FoodLog {
		sum += f.Water
	}
	return sum
}

// BMI is weight over squared height in meters.
func (u *User) BMI() float64 {
	meters := u.Height / 100
	return u.Weight / (meters * meters)
}

// BMR estimates basal metabolic rate with the revised Harris-Benedict
// equations. Any gender other than "male" (case-insensitive) takes the
// female branch.
func (u *User) BMR() float64 {
	if strings.EqualFold(u.Gender, "male") {
		return 88.362 + 13.397*u.Weight + 4.799*u.Height - 5.677*float64(u.Age)
	}
	return 447.593 + 9.247*u.Weight + 3.098*u.Height - 4.330*float64(u.Age)
}

// TDEE scales BMR by the user's activity multiplier.
func (u *User) TDEE() float64 {
	return u.BMR() * u.ActivityLevel
}

// DailyCalorieTarget is the daily intake target; currently the TDEE with no
// surplus or deficit adjustment.
func (u *User) DailyCalorieTarget() float64 {
	return u.TDEE()
}
