// Package validate provides request field validation.
package validate

import (
	"errors"
	"strings"
	"time"
)

// ObjectKey checks that an object key is present and non-empty.
func ObjectKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("objectKey is required")
	}
	return nil
}

// Gender checks the onboarding gender value.
func Gender(g string) error {
	if g != "male" && g != "female" {
		return errors.New("gender must be male or female")
	}
	return nil
}

// ActivityLevel checks the onboarding activity level value.
func ActivityLevel(a string) error {
	switch a {
	case "sedentary", "light", "moderate", "very", "extra":
		return nil
	}
	return errors.New("activity_level must be one of sedentary, light, moderate, very, extra")
}

// Goal checks the onboarding goal value.
func Goal(g string) error {
	switch g {
	case "lose", "maintain", "gain":
		return nil
	}
	return errors.New("goal must be lose, maintain, or gain")
}

// BirthdateISO parses an ISO date (YYYY-MM-DD).
func BirthdateISO(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.New("birthdate must be an ISO date (YYYY-MM-DD)")
	}
	return t, nil
}
