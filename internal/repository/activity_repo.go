package repository

import (
	"context"

	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/sheetdb"
)

// ActivityLogRepository is the Activity_Log sheet: the append-only audit
// trail of inventory mutations.
type ActivityLogRepository interface {
	Append(ctx context.Context, e model.ActivityEntry) error
	List(ctx context.Context) ([]model.ActivityEntry, error)
}

type activityRepo struct{ client *sheetdb.Client }

func NewActivityLogRepository(client *sheetdb.Client) ActivityLogRepository {
	return &activityRepo{client: client}
}

func (r *activityRepo) Append(ctx context.Context, e model.ActivityEntry) error {
	return r.client.Create(ctx, sheetdb.SheetActivityLog, e.ToRow())
}

func (r *activityRepo) List(ctx context.Context) ([]model.ActivityEntry, error) {
	rows, err := r.client.List(ctx, sheetdb.SheetActivityLog)
	if err != nil {
		return nil, err
	}
	entries := make([]model.ActivityEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, model.ActivityFromRow(row))
	}
	return entries, nil
}
