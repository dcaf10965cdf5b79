package model

import "time"

// FitnessLevel is an ordered fitness tier.
type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

// Tier returns 1..3 for known levels and 0 otherwise.
func (f FitnessLevel) Tier() int {
	switch f {
	case FitnessBeginner:
		return 1
	case FitnessIntermediate:
		return 2
	case FitnessAdvanced:
		return 3
	}
	return 0
}

func (f FitnessLevel) IsValid() bool { return f.Tier() > 0 }

// UserPreferences are the selections collected during onboarding.
type UserPreferences struct {
	ID                 string
	UserID             string
	DietaryPreferences []string
	FitnessLevel       FitnessLevel
	ContentInterests   []string
	CreatedAt          time.Time
}
