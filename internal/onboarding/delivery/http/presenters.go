package http

import (
	"holistic-daily/internal/model"
	"holistic-daily/internal/onboarding"
)

type submitReq struct {
	DietaryPreferences []string `json:"dietary_preferences"`
	FitnessLevel       string   `json:"fitness_level"`
	ContentInterests   []string `json:"content_interests"`
}

func (r submitReq) toInput() onboarding.SubmitInput {
	return onboarding.SubmitInput{
		DietaryPreferences: r.DietaryPreferences,
		FitnessLevel:       model.FitnessLevel(r.FitnessLevel),
		ContentInterests:   r.ContentInterests,
	}
}

type selectReq struct {
	Field string `json:"field" binding:"required,oneof=dietary fitness interests"`
	Value string `json:"value" binding:"required"`
}

func (r selectReq) toInput() onboarding.SelectInput {
	return onboarding.SelectInput{Field: onboarding.Field(r.Field), Value: r.Value}
}

type optionsResp struct {
	Dietary   []string `json:"dietary"`
	Fitness   []string `json:"fitness"`
	Interests []string `json:"interests"`
}

type wizardResp struct {
	Step              int         `json:"step"`
	StepName          string      `json:"step_name"`
	Submitted         bool        `json:"submitted"`
	DietaryPreference []string    `json:"dietary_preferences"`
	FitnessLevel      string      `json:"fitness_level"`
	ContentInterests  []string    `json:"content_interests"`
	Options           optionsResp `json:"options"`
}

func newWizardResp(s onboarding.State) wizardResp {
	fitness := make([]string, 0, len(onboarding.FitnessOptions))
	for _, f := range onboarding.FitnessOptions {
		fitness = append(fitness, string(f))
	}
	return wizardResp{
		Step:              int(s.Step),
		StepName:          s.Step.String(),
		Submitted:         s.Step == onboarding.StepSubmitted,
		DietaryPreference: s.Dietary,
		FitnessLevel:      string(s.Fitness),
		ContentInterests:  s.Interests,
		Options: optionsResp{
			Dietary:   onboarding.DietaryOptions,
			Fitness:   fitness,
			Interests: onboarding.InterestOptions,
		},
	}
}
