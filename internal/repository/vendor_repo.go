package repository

import (
	"context"

	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/sheetdb"
)

type VendorRepository interface {
	List(ctx context.Context) ([]model.Vendor, error)
	FindByName(ctx context.Context, name string) (*model.Vendor, error)
	Create(ctx context.Context, v model.Vendor) error
	// Update rewrites the row keyed by name. Renames are allowed; vendor-name
	// strings embedded in inventory and order rows are NOT cascaded.
	Update(ctx context.Context, name string, v model.Vendor) error
	Delete(ctx context.Context, name string) error
}

type vendorRepo struct{ client *sheetdb.Client }

func NewVendorRepository(client *sheetdb.Client) VendorRepository {
	return &vendorRepo{client: client}
}

func (r *vendorRepo) List(ctx context.Context) ([]model.Vendor, error) {
	rows, err := r.client.List(ctx, sheetdb.SheetVendors)
	if err != nil {
		return nil, err
	}
	vendors := make([]model.Vendor, 0, len(rows))
	for _, row := range rows {
		vendors = append(vendors, model.VendorFromRow(row))
	}
	return vendors, nil
}

func (r *vendorRepo) FindByName(ctx context.Context, name string) (*model.Vendor, error) {
	rows, err := r.client.Search(ctx, sheetdb.SheetVendors,
		map[string]string{"Name": name}, true)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	v := model.VendorFromRow(rows[0])
	return &v, nil
}

func (r *vendorRepo) Create(ctx context.Context, v model.Vendor) error {
	return r.client.Create(ctx, sheetdb.SheetVendors, v.ToRow())
}

func (r *vendorRepo) Update(ctx context.Context, name string, v model.Vendor) error {
	return r.client.Update(ctx, sheetdb.SheetVendors, "Name", name, v.ToRow())
}

func (r *vendorRepo) Delete(ctx context.Context, name string) error {
	return r.client.Delete(ctx, sheetdb.SheetVendors, "Name", name)
}
