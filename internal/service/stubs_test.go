package service

// In-memory repository stubs shared by the service tests. They store raw
// sheet rows so Patch semantics (partial column writes) behave like the
// real proxy.

import (
	"context"
	"strings"

	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/repository"
)

// ── InventoryRepository stub ─────────────────────────────────────────────────

type stubInventoryRepo struct {
	rows    map[string]map[string]string // keyed by Product_ID
	patches []map[string]string
	deleted []string
}

func newStubInventoryRepo(items ...model.InventoryItem) *stubInventoryRepo {
	r := &stubInventoryRepo{rows: make(map[string]map[string]string)}
	for _, it := range items {
		r.rows[it.ProductID] = it.ToRow()
	}
	return r
}

func (r *stubInventoryRepo) List(_ context.Context) ([]model.InventoryItem, error) {
	out := make([]model.InventoryItem, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, model.InventoryFromRow(row))
	}
	return out, nil
}

func (r *stubInventoryRepo) SearchByName(_ context.Context, query string) ([]model.InventoryItem, error) {
	var out []model.InventoryItem
	for _, row := range r.rows {
		if strings.Contains(strings.ToLower(row["Product_Name"]), strings.ToLower(query)) {
			out = append(out, model.InventoryFromRow(row))
		}
	}
	return out, nil
}

func (r *stubInventoryRepo) FindByProductID(_ context.Context, productID string) (*model.InventoryItem, error) {
	row, ok := r.rows[productID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	it := model.InventoryFromRow(row)
	return &it, nil
}

func (r *stubInventoryRepo) Create(_ context.Context, item model.InventoryItem) error {
	r.rows[item.ProductID] = item.ToRow()
	return nil
}

func (r *stubInventoryRepo) Patch(_ context.Context, productID string, updates map[string]string) error {
	row, ok := r.rows[productID]
	if !ok {
		return repository.ErrNotFound
	}
	for k, v := range updates {
		row[k] = v
	}
	r.patches = append(r.patches, updates)
	return nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, productID string) error {
	if _, ok := r.rows[productID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, productID)
	r.deleted = append(r.deleted, productID)
	return nil
}

// ── ActivityLogRepository stub ───────────────────────────────────────────────

type stubActivityRepo struct {
	entries []model.ActivityEntry
	failErr error
}

func (r *stubActivityRepo) Append(_ context.Context, e model.ActivityEntry) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *stubActivityRepo) List(_ context.Context) ([]model.ActivityEntry, error) {
	return r.entries, nil
}

// ── OrderRepository stub ─────────────────────────────────────────────────────

type stubOrderRepo struct {
	rows    map[string]map[string]string
	deleted []string
}

func newStubOrderRepo(orders ...model.Order) *stubOrderRepo {
	r := &stubOrderRepo{rows: make(map[string]map[string]string)}
	for _, o := range orders {
		r.rows[o.ID] = o.ToRow()
	}
	return r
}

func (r *stubOrderRepo) List(_ context.Context) ([]model.Order, error) {
	out := make([]model.Order, 0, len(r.rows))
	for _, row := range r.rows {
		o, err := model.OrderFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	o, err := model.OrderFromRow(row)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *stubOrderRepo) Create(_ context.Context, o model.Order) error {
	r.rows[o.ID] = o.ToRow()
	return nil
}

func (r *stubOrderRepo) Patch(_ context.Context, id string, updates map[string]string) error {
	row, ok := r.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	for k, v := range updates {
		row[k] = v
	}
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// ── OrderHistoryRepository stub ──────────────────────────────────────────────

type stubHistoryRepo struct {
	appended []model.Order
}

func (r *stubHistoryRepo) List(_ context.Context) ([]model.Order, error) {
	return r.appended, nil
}

func (r *stubHistoryRepo) Append(_ context.Context, o model.Order) error {
	r.appended = append(r.appended, o)
	return nil
}

// ── PreferencesRepository stub ───────────────────────────────────────────────

type stubPreferencesRepo struct {
	prefs map[string]model.UserPreference
}

func newStubPreferencesRepo() *stubPreferencesRepo {
	return &stubPreferencesRepo{prefs: make(map[string]model.UserPreference)}
}

func (r *stubPreferencesRepo) FindByEmail(_ context.Context, email string) (*model.UserPreference, error) {
	p, ok := r.prefs[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *stubPreferencesRepo) List(_ context.Context) ([]model.UserPreference, error) {
	out := make([]model.UserPreference, 0, len(r.prefs))
	for _, p := range r.prefs {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPreferencesRepo) Create(_ context.Context, p model.UserPreference) error {
	r.prefs[p.Email] = p
	return nil
}

func (r *stubPreferencesRepo) Update(_ context.Context, email string, p model.UserPreference) error {
	r.prefs[email] = p
	return nil
}
