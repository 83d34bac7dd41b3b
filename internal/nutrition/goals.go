// Package nutrition computes daily intake goals from a user's body profile.
package nutrition

import (
	"fmt"
	"math"
	"time"
)

// Recognized activity levels and their TDEE multipliers.
var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"very":      1.725,
	"extra":     1.9,
}

// Calorie adjustment applied on top of TDEE for each goal.
var goalAdjustments = map[string]float64{
	"lose":     -500,
	"maintain": 0,
	"gain":     300,
}

// Goals is the recommended daily intake, all values in whole units
// (kcal for calories, grams for macros).
type Goals struct {
	Calories int `json:"calories"`
	Carbs    int `json:"carbs"`
	Protein  int `json:"protein"`
	Fats     int `json:"fats"`
}

// Profile is the input to the goal calculation.
type Profile struct {
	Birthdate     time.Time
	HeightCm      float64
	WeightKg      float64
	Gender        string // "male" or "female"
	ActivityLevel string
	Goal          string
}

// Calculate derives daily goals with the Mifflin-St Jeor equation: BMR from
// weight/height/age/sex, TDEE via the activity multiplier, target calories
// via the goal adjustment, then a 40/30/30 carb/protein/fat calorie split at
// 4/4/9 kcal per gram. now is the reference time for the age computation.
func Calculate(p Profile, now time.Time) (Goals, error) {
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		return Goals{}, fmt.Errorf("unknown activity level %q", p.ActivityLevel)
	}
	adj, ok := goalAdjustments[p.Goal]
	if !ok {
		return Goals{}, fmt.Errorf("unknown goal %q", p.Goal)
	}

	age := Age(p.Birthdate, now)

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * mult
	calories := tdee + adj

	return Goals{
		Calories: int(math.Round(calories)),
		Carbs:    int(math.Round(calories * 0.40 / 4)),
		Protein:  int(math.Round(calories * 0.30 / 4)),
		Fats:     int(math.Round(calories * 0.30 / 9)),
	}, nil
}

// Age returns the number of whole years between birthdate and now.
func Age(birthdate, now time.Time) int {
	years := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		years--
	}
	return years
}
