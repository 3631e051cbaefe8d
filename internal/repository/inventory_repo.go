// Package repository maps the proxy's sheet-as-table partitioning onto one
// repository interface per entity, keeping persistence details out of the
// services.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/sheetdb"
)

// ErrNotFound is returned when a keyed lookup matches no row.
var ErrNotFound = errors.New("record not found")

type InventoryRepository interface {
	List(ctx context.Context) ([]model.InventoryItem, error)
	SearchByName(ctx context.Context, query string) ([]model.InventoryItem, error)
	FindByProductID(ctx context.Context, productID string) (*model.InventoryItem, error)
	Create(ctx context.Context, item model.InventoryItem) error
	// Patch writes only the given columns for the row keyed by productID.
	Patch(ctx context.Context, productID string, updates map[string]string) error
	Delete(ctx context.Context, productID string) error
}

type inventoryRepo struct{ client *sheetdb.Client }

func NewInventoryRepository(client *sheetdb.Client) InventoryRepository {
	return &inventoryRepo{client: client}
}

func (r *inventoryRepo) List(ctx context.Context) ([]model.InventoryItem, error) {
	rows, err := r.client.List(ctx, sheetdb.SheetInventory)
	if err != nil {
		return nil, err
	}
	items := make([]model.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.InventoryFromRow(row))
	}
	return items, nil
}

func (r *inventoryRepo) SearchByName(ctx context.Context, query string) ([]model.InventoryItem, error) {
	rows, err := r.client.Search(ctx, sheetdb.SheetInventory,
		map[string]string{"Product_Name": "*" + query + "*"}, false)
	if err != nil {
		return nil, err
	}
	items := make([]model.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.InventoryFromRow(row))
	}
	return items, nil
}

func (r *inventoryRepo) FindByProductID(ctx context.Context, productID string) (*model.InventoryItem, error) {
	rows, err := r.client.Search(ctx, sheetdb.SheetInventory,
		map[string]string{"Product_ID": productID}, true)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	item := model.InventoryFromRow(rows[0])
	return &item, nil
}

func (r *inventoryRepo) Create(ctx context.Context, item model.InventoryItem) error {
	row := item.ToRow()
	if row["Last_Updated"] == "" {
		row["Last_Updated"] = time.Now().UTC().Format(time.RFC3339)
	}
	return r.client.Create(ctx, sheetdb.SheetInventory, row)
}

func (r *inventoryRepo) Patch(ctx context.Context, productID string, updates map[string]string) error {
	return r.client.Update(ctx, sheetdb.SheetInventory, "Product_ID", productID, updates)
}

func (r *inventoryRepo) Delete(ctx context.Context, productID string) error {
	return r.client.Delete(ctx, sheetdb.SheetInventory, "Product_ID", productID)
}
