package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"holistic-daily/internal/model"
)

// taskNamespace seeds deterministic task IDs.
var taskNamespace = uuid.MustParse("6f1c2f0e-5d0b-4a57-9d1e-6a7c59b1e0d4")

// TaskID derives the stable ID of a user's task for a day and category.
func TaskID(userID, date string, cat model.Category) string {
	return uuid.NewSHA1(taskNamespace, []byte(userID+"|"+date+"|"+string(cat))).String()
}

// PreferencesSaver persists onboarding selections.
type PreferencesSaver interface {
	SavePreferences(ctx context.Context, prefs model.UserPreferences) error
}

// Clock reports the current calendar day.
type Clock interface {
	Today() string
}

// Generator builds a day's tasks from the catalog.
type Generator struct {
	source        Source
	clock         Clock
	placeholderID string
	prefs         PreferencesSaver
	now           func() time.Time
	newID         func() string
}

func NewGenerator(source Source, clock Clock, placeholderID string, prefs PreferencesSaver) *Generator {
	return &Generator{
		source:        source,
		clock:         clock,
		placeholderID: placeholderID,
		prefs:         prefs,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// GenerateDailyTasks returns today's three tasks for the placeholder user.
func (g *Generator) GenerateDailyTasks() []model.Task {
	return g.GenerateFor(g.placeholderID, g.clock.Today())
}

// GenerateFor returns one task per category, each from the first catalog entry.
// The selection never varies by day or user.
func (g *Generator) GenerateFor(userID, date string) []model.Task {
	c := g.source.Catalog()
	createdAt := g.now()

	tasks := make([]model.Task, 0, len(model.Categories))
	for _, cat := range model.Categories {
		e, ok := c.First(cat)
		if !ok {
			continue
		}
		tasks = append(tasks, model.Task{
			ID:          TaskID(userID, date, cat),
			Title:       e.Title,
			Description: e.Description,
			Category:    cat,
			Date:        date,
			UserID:      userID,
			ImageURL:    e.ImageURL,
			LinkURL:     e.LinkURL,
			CreatedAt:   createdAt,
		})
	}
	return tasks
}

// SaveOnboardingPreferences stores the selections verbatim under a new ID.
func (g *Generator) SaveOnboardingPreferences(ctx context.Context, userID string, dietary []string, fitness model.FitnessLevel, interests []string) error {
	return g.prefs.SavePreferences(ctx, model.UserPreferences{
		ID:                 g.newID(),
		UserID:             userID,
		DietaryPreferences: dietary,
		FitnessLevel:       fitness,
		ContentInterests:   interests,
		CreatedAt:          g.now(),
	})
}
