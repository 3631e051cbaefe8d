package repository

import (
	"context"

	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/sheetdb"
)

type PreferencesRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.UserPreference, error)
	List(ctx context.Context) ([]model.UserPreference, error)
	Create(ctx context.Context, p model.UserPreference) error
	Update(ctx context.Context, email string, p model.UserPreference) error
}

type preferencesRepo struct{ client *sheetdb.Client }

func NewPreferencesRepository(client *sheetdb.Client) PreferencesRepository {
	return &preferencesRepo{client: client}
}

func (r *preferencesRepo) FindByEmail(ctx context.Context, email string) (*model.UserPreference, error) {
	rows, err := r.client.Search(ctx, sheetdb.SheetPreferences,
		map[string]string{"user_email": email}, true)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	p := model.PreferenceFromRow(rows[0])
	return &p, nil
}

func (r *preferencesRepo) List(ctx context.Context) ([]model.UserPreference, error) {
	rows, err := r.client.List(ctx, sheetdb.SheetPreferences)
	if err != nil {
		return nil, err
	}
	prefs := make([]model.UserPreference, 0, len(rows))
	for _, row := range rows {
		prefs = append(prefs, model.PreferenceFromRow(row))
	}
	return prefs, nil
}

func (r *preferencesRepo) Create(ctx context.Context, p model.UserPreference) error {
	return r.client.Create(ctx, sheetdb.SheetPreferences, p.ToRow())
}

func (r *preferencesRepo) Update(ctx context.Context, email string, p model.UserPreference) error {
	return r.client.Update(ctx, sheetdb.SheetPreferences, "user_email", email, p.ToRow())
}
