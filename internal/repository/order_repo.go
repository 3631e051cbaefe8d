package repository

import (
	"context"

	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/sheetdb"
)

// OrderRepository is the live Orders sheet: orders in submitted, in_process
// or fulfillment status. Completed and rejected orders move to history.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id string) (*model.Order, error)
	Create(ctx context.Context, o model.Order) error
	// Patch writes only the given columns for the row keyed by order id.
	Patch(ctx context.Context, id string, updates map[string]string) error
	Delete(ctx context.Context, id string) error
}

type orderRepo struct{ client *sheetdb.Client }

func NewOrderRepository(client *sheetdb.Client) OrderRepository {
	return &orderRepo{client: client}
}

func (r *orderRepo) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.client.List(ctx, sheetdb.SheetOrders)
	if err != nil {
		return nil, err
	}
	return decodeOrders(rows)
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	rows, err := r.client.Search(ctx, sheetdb.SheetOrders, map[string]string{"ID": id}, true)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	o, err := model.OrderFromRow(rows[0])
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) Create(ctx context.Context, o model.Order) error {
	return r.client.Create(ctx, sheetdb.SheetOrders, o.ToRow())
}

func (r *orderRepo) Patch(ctx context.Context, id string, updates map[string]string) error {
	return r.client.Update(ctx, sheetdb.SheetOrders, "ID", id, updates)
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, sheetdb.SheetOrders, "ID", id)
}

func decodeOrders(rows []sheetdb.Row) ([]model.Order, error) {
	orders := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		o, err := model.OrderFromRow(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
