package onboarding

import "holistic-daily/internal/model"

var (
	DietaryOptions  = []string{"vegetarian", "vegan", "gluten-free", "dairy-free", "no-restrictions"}
	FitnessOptions  = []model.FitnessLevel{model.FitnessBeginner, model.FitnessIntermediate, model.FitnessAdvanced}
	InterestOptions = []string{"science", "arts", "business", "personal-growth", "history"}
)

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
