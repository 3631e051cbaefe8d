package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mccmmj/cafe-inventory/internal/dto"
	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/repository"
)

// ActivityRecorder writes the audit trail for inventory mutations. Every
// Record* method is best-effort: a failed append is logged and swallowed so
// the triggering mutation still succeeds. Log loss is tolerated.
type ActivityRecorder interface {
	RecordCreate(ctx context.Context, item model.InventoryItem, actor string)
	RecordStockChange(ctx context.Context, item model.InventoryItem, newStock int, reason, notes, actor string)
	RecordMetadataChange(ctx context.Context, original model.InventoryItem, updates map[string]string, notes, actor string)
	RecordDelete(ctx context.Context, item model.InventoryItem, reason, notes, actor string)

	List(ctx context.Context) ([]model.ActivityEntry, error)
	UsageRecords(ctx context.Context) ([]dto.UsageRecordResponse, error)
}

type activityRecorder struct {
	repo repository.ActivityLogRepository
	now  func() time.Time
}

func NewActivityRecorder(repo repository.ActivityLogRepository) ActivityRecorder {
	return &activityRecorder{repo: repo, now: time.Now}
}

func (r *activityRecorder) RecordCreate(ctx context.Context, item model.InventoryItem, actor string) {
	r.append(ctx, model.ActivityEntry{
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		ActionType:  model.ActionCreate,
		Details:     fmt.Sprintf("Item created with stock of %d", item.CurrentStock),
		StaffMember: actor,
	})
}

func (r *activityRecorder) RecordStockChange(ctx context.Context, item model.InventoryItem, newStock int, reason, notes, actor string) {
	r.append(ctx, model.ActivityEntry{
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		ActionType:  model.ActionUpdateStock,
		Reason:      reason,
		Details:     StockChangeDetails(item.CurrentStock, newStock),
		Notes:       notes,
		StaffMember: actor,
	})
}

// RecordMetadataChange diffs the updated columns against the original row and
// appends one entry describing every changed field. Nothing is written when
// no field actually changed.
func (r *activityRecorder) RecordMetadataChange(ctx context.Context, original model.InventoryItem, updates map[string]string, notes, actor string) {
	details := MetadataChangeDetails(original.ToRow(), updates)
	if details == "" {
		return
	}
	name := original.ProductName
	if n, ok := updates["Product_Name"]; ok && n != "" {
		name = n
	}
	r.append(ctx, model.ActivityEntry{
		ProductID:   original.ProductID,
		ProductName: name,
		ActionType:  model.ActionUpdateItem,
		Details:     details,
		Notes:       notes,
		StaffMember: actor,
	})
}

func (r *activityRecorder) RecordDelete(ctx context.Context, item model.InventoryItem, reason, notes, actor string) {
	r.append(ctx, model.ActivityEntry{
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		ActionType:  model.ActionDelete,
		Reason:      reason,
		Details:     "Item deleted from inventory",
		Notes:       notes,
		StaffMember: actor,
	})
}

func (r *activityRecorder) append(ctx context.Context, e model.ActivityEntry) {
	e.Timestamp = r.now().UTC().Format(time.RFC3339)
	if err := r.repo.Append(ctx, e); err != nil {
		log.Error().
			Err(err).
			Str("product_id", e.ProductID).
			Str("action_type", string(e.ActionType)).
			Msg("activity log append failed")
	}
}

func (r *activityRecorder) List(ctx context.Context) ([]model.ActivityEntry, error) {
	return r.repo.List(ctx)
}

// UsageRecords filters the log down to stock-usage entries for the dashboard
// chart, extracting the used quantity from each entry's detail string.
func (r *activityRecorder) UsageRecords(ctx context.Context) ([]dto.UsageRecordResponse, error) {
	entries, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsageRecordResponse, 0)
	for _, e := range entries {
		if e.ActionType != model.ActionUpdateStock || e.Reason != model.ReasonRecordUsage {
			continue
		}
		u := model.UsageFromEntry(e)
		out = append(out, dto.UsageRecordResponse{
			ProductID:    u.ProductID,
			ProductName:  u.ProductName,
			QuantityUsed: u.QuantityUsed,
			StaffMember:  u.StaffMember,
			Timestamp:    u.Timestamp,
			Notes:        u.Notes,
		})
	}
	return out, nil
}

// StockChangeDetails renders the stock-adjustment description, e.g.
// "Stock changed from 20 to 15 (-5)". Positive deltas carry an explicit sign.
func StockChangeDetails(oldStock, newStock int) string {
	delta := newStock - oldStock
	sign := ""
	if delta > 0 {
		sign = "+"
	}
	return fmt.Sprintf("Stock changed from %d to %d (%s%d)", oldStock, newStock, sign, delta)
}

// MetadataChangeDetails renders one "{Field} changed from 'a' to 'b'" phrase
// per changed column, comma-joined, in canonical column order. The identity
// column is skipped, as are columns whose string value did not change.
// Returns "" when nothing changed.
func MetadataChangeDetails(original, updates map[string]string) string {
	var phrases []string
	for _, col := range model.InventoryColumns {
		if col == "Product_ID" {
			continue
		}
		newVal, ok := updates[col]
		if !ok {
			continue
		}
		oldVal := original[col]
		if oldVal == newVal {
			continue
		}
		field := strings.ReplaceAll(col, "_", " ")
		phrases = append(phrases, fmt.Sprintf("%s changed from '%s' to '%s'", field, oldVal, newVal))
	}
	return strings.Join(phrases, ", ")
}
