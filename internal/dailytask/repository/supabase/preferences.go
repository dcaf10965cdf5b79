package supabase

import (
	"context"

	"github.com/supabase-community/postgrest-go"

	repo "holistic-daily/internal/dailytask/repository"
	"holistic-daily/internal/model"
)

func (r *implRepository) FetchPreferences(ctx context.Context, userID string) (model.UserPreferences, error) {
	var rows []preferencesRow
	err := ctx.Err()
	if err == nil {
		_, err = r.client.From(tablePreferences).
			Select("*", "", false).
			Eq("user_id", userID).
			Order("created_at", &postgrest.OrderOpts{Ascending: false}).
			Limit(1, "").
			ExecuteTo(&rows)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FetchPreferences"), err)
		return model.UserPreferences{}, repo.ErrFailedToGet
	}
	if len(rows) == 0 {
		return model.UserPreferences{}, nil
	}
	return rows[0].toModel(), nil
}

func (r *implRepository) SavePreferences(ctx context.Context, prefs model.UserPreferences) error {
	row := preferencesRow{
		ID:                 prefs.ID,
		UserID:             prefs.UserID,
		DietaryPreferences: nonNil(prefs.DietaryPreferences),
		FitnessLevel:       string(prefs.FitnessLevel),
		ContentInterests:   nonNil(prefs.ContentInterests),
		CreatedAt:          prefs.CreatedAt,
	}
	if err := r.insert(ctx, tablePreferences, []preferencesRow{row}); err != nil {
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
