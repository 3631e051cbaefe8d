package repository

import (
	"context"

	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/sheetdb"
)

// OrderHistoryRepository is the Order_History sheet: terminal (complete or
// rejected) orders. Append-only — history rows are never edited or removed.
type OrderHistoryRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Append(ctx context.Context, o model.Order) error
}

type orderHistoryRepo struct{ client *sheetdb.Client }

func NewOrderHistoryRepository(client *sheetdb.Client) OrderHistoryRepository {
	return &orderHistoryRepo{client: client}
}

func (r *orderHistoryRepo) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.client.List(ctx, sheetdb.SheetOrderHistory)
	if err != nil {
		return nil, err
	}
	return decodeOrders(rows)
}

func (r *orderHistoryRepo) Append(ctx context.Context, o model.Order) error {
	return r.client.Create(ctx, sheetdb.SheetOrderHistory, o.ToRow())
}
