// Package cognito maps user-pool attributes to and from profile records.
package cognito

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mealsnap/serverless-backend/internal/models"
	"github.com/mealsnap/serverless-backend/internal/nutrition"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// ErrUserNotFound is returned when the directory has no user for the subject.
var ErrUserNotFound = errors.New("user not found")

// AdminAPI is the slice of the identity provider client the repo needs.
type AdminAPI interface {
	AdminGetUser(ctx context.Context, params *cip.AdminGetUserInput, optFns ...func(*cip.Options)) (*cip.AdminGetUserOutput, error)
	AdminUpdateUserAttributes(ctx context.Context, params *cip.AdminUpdateUserAttributesInput, optFns ...func(*cip.Options)) (*cip.AdminUpdateUserAttributesOutput, error)
}

// ProfileRepo reads and updates user profiles in a user pool.
type ProfileRepo struct {
	IDP    AdminAPI
	PoolID string
}

// numericAttrs are the profile attributes coerced to numbers, int-first.
var numericAttrs = map[string]bool{
	"height":          true,
	"weight":          true,
	"target_calories": true,
	"target_carbs":    true,
	"target_protein":  true,
	"target_fats":     true,
}

// Get returns the subject's profile in its fixed template shape: every field
// present, unset attributes left null.
func (r *ProfileRepo) Get(ctx context.Context, sub string) (models.UserProfile, error) {
	out, err := r.IDP.AdminGetUser(ctx, &cip.AdminGetUserInput{
		UserPoolId: aws.String(r.PoolID),
		Username:   aws.String(sub),
	})
	if err != nil {
		var nf *types.UserNotFoundException
		if errors.As(err, &nf) {
			return models.UserProfile{}, ErrUserNotFound
		}
		return models.UserProfile{}, fmt.Errorf("get user %s: %w", sub, err)
	}

	p := profileFromAttributes(out.UserAttributes)
	p.Sub = out.Username
	return p, nil
}

// profileFromAttributes fills the profile template from directory
// attributes, stripping the custom: prefix and coercing numeric fields.
func profileFromAttributes(attrs []types.AttributeType) models.UserProfile {
	var p models.UserProfile
	for _, a := range attrs {
		if a.Name == nil || a.Value == nil {
			continue
		}
		key := strings.TrimPrefix(*a.Name, "custom:")
		val := *a.Value

		if numericAttrs[key] {
			n, ok := models.ParseNumber(val)
			if !ok {
				continue
			}
			switch key {
			case "height":
				p.Height = &n
			case "weight":
				p.Weight = &n
			case "target_calories":
				p.TargetCalories = &n
			case "target_carbs":
				p.TargetCarbs = &n
			case "target_protein":
				p.TargetProtein = &n
			case "target_fats":
				p.TargetFats = &n
			}
			continue
		}

		switch key {
		case "email":
			p.Email = &val
		case "email_verified":
			p.EmailVerified = &val
		case "birthdate":
			p.Birthdate = &val
		case "gender":
			p.Gender = &val
		case "activity_level":
			p.ActivityLevel = &val
		case "goal":
			p.Goal = &val
		}
	}
	return p
}

// OnboardingUpdate is the attribute set written after onboarding: the body
// profile the user entered plus the goals computed from it.
type OnboardingUpdate struct {
	Birthdate     string
	Gender        string
	Height        float64
	Weight        float64
	ActivityLevel string
	Goal          string
	Goals         nutrition.Goals
}

// UpdateOnboarding writes the profile and computed targets to the directory.
func (r *ProfileRepo) UpdateOnboarding(ctx context.Context, sub string, u OnboardingUpdate) error {
	attrs := []types.AttributeType{
		attr("birthdate", u.Birthdate),
		attr("gender", u.Gender),
		attr("custom:height", formatFloat(u.Height)),
		attr("custom:weight", formatFloat(u.Weight)),
		attr("custom:activity_level", u.ActivityLevel),
		attr("custom:goal", u.Goal),
		attr("custom:target_calories", strconv.Itoa(u.Goals.Calories)),
		attr("custom:target_carbs", strconv.Itoa(u.Goals.Carbs)),
		attr("custom:target_protein", strconv.Itoa(u.Goals.Protein)),
		attr("custom:target_fats", strconv.Itoa(u.Goals.Fats)),
	}
	_, err := r.IDP.AdminUpdateUserAttributes(ctx, &cip.AdminUpdateUserAttributesInput{
		UserPoolId:     aws.String(r.PoolID),
		Username:       aws.String(sub),
		UserAttributes: attrs,
	})
	if err != nil {
		return fmt.Errorf("update user %s: %w", sub, err)
	}
	return nil
}

func attr(name, value string) types.AttributeType {
	return types.AttributeType{Name: aws.String(name), Value: aws.String(value)}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
