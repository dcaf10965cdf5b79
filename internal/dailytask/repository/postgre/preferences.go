package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	repo "holistic-daily/internal/dailytask/repository"
	"holistic-daily/internal/model"
)

// FetchPreferences returns the most recent record for the user.
// Returns zero-value preferences (ID == "") when not found.
func (r *implRepository) FetchPreferences(ctx context.Context, userID string) (model.UserPreferences, error) {
	const query = `
		SELECT id, user_id, dietary_preferences, fitness_level, content_interests, created_at
		FROM user_preferences WHERE user_id = $1
		ORDER BY created_at DESC LIMIT 1`

	var (
		p       model.UserPreferences
		fitness string
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, pq.Array(&p.DietaryPreferences), &fitness, pq.Array(&p.ContentInterests), &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserPreferences{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchPreferences"), err)
		return model.UserPreferences{}, repo.ErrFailedToGet
	}
	p.FitnessLevel = model.FitnessLevel(fitness)
	return p, nil
}

func (r *implRepository) SavePreferences(ctx context.Context, prefs model.UserPreferences) error {
	const query = `
		INSERT INTO user_preferences (id, user_id, dietary_preferences, fitness_level, content_interests, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query, prefs.ID, prefs.UserID, pq.Array(nonNil(prefs.DietaryPreferences)),
		string(prefs.FitnessLevel), pq.Array(nonNil(prefs.ContentInterests)), prefs.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SavePreferences"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
