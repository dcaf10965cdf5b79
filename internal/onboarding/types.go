package onboarding

import "holistic-daily/internal/model"

type Field string

const (
	FieldDietary   Field = "dietary"
	FieldFitness   Field = "fitness"
	FieldInterests Field = "interests"
)

// SelectInput toggles a tag, or sets the fitness level, on the current step.
type SelectInput struct {
	Field Field
	Value string
}

type SubmitInput struct {
	DietaryPreferences []string
	FitnessLevel       model.FitnessLevel
	ContentInterests   []string
}
