package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmmj/cafe-inventory/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
}

func testItem() model.InventoryItem {
	return model.InventoryItem{
		ProductID:       "prod_1",
		ProductName:     "Espresso Beans",
		Category:        "Coffee",
		CurrentStock:    20,
		MinLevel:        10,
		StorageLocation: "A1",
	}
}

func TestStockChangeDetails(t *testing.T) {
	assert.Equal(t, "Stock changed from 20 to 15 (-5)", StockChangeDetails(20, 15))
	assert.Equal(t, "Stock changed from 10 to 16 (+6)", StockChangeDetails(10, 16))
	assert.Equal(t, "Stock changed from 7 to 7 (0)", StockChangeDetails(7, 7))
}

func TestMetadataChangeDetailsSingleField(t *testing.T) {
	original := testItem().ToRow()
	details := MetadataChangeDetails(original, map[string]string{"Storage_Location": "B2"})
	assert.Equal(t, "Storage Location changed from 'A1' to 'B2'", details)
}

func TestMetadataChangeDetailsSkipsUnchangedAndIdentity(t *testing.T) {
	original := testItem().ToRow()
	details := MetadataChangeDetails(original, map[string]string{
		"Product_ID":       "prod_other", // identity column, never reported
		"Category":         "Coffee",     // unchanged
		"Storage_Location": "B2",
		"Min_Level":        "12",
	})
	// Canonical column order puts Min_Level before Storage_Location.
	assert.Equal(t, "Min Level changed from '10' to '12', Storage Location changed from 'A1' to 'B2'", details)
}

func TestMetadataChangeDetailsAllUnchanged(t *testing.T) {
	original := testItem().ToRow()
	assert.Empty(t, MetadataChangeDetails(original, map[string]string{"Category": "Coffee"}))
}

func TestRecordStockChangeWritesEntry(t *testing.T) {
	repo := &stubActivityRepo{}
	rec := &activityRecorder{repo: repo, now: fixedNow}

	rec.RecordStockChange(context.Background(), testItem(), 15, model.ReasonRecordUsage, "morning rush", "Jess")

	require.Len(t, repo.entries, 1)
	e := repo.entries[0]
	assert.Equal(t, "prod_1", e.ProductID)
	assert.Equal(t, model.ActionUpdateStock, e.ActionType)
	assert.Equal(t, model.ReasonRecordUsage, e.Reason)
	assert.Equal(t, "Stock changed from 20 to 15 (-5)", e.Details)
	assert.Equal(t, "Jess", e.StaffMember)
	assert.Equal(t, "2026-03-15T10:30:00Z", e.Timestamp)
}

func TestRecordMetadataChangeNoEntryWhenUnchanged(t *testing.T) {
	repo := &stubActivityRepo{}
	rec := &activityRecorder{repo: repo, now: fixedNow}

	rec.RecordMetadataChange(context.Background(), testItem(), map[string]string{"Category": "Coffee"}, "", "Jess")

	assert.Empty(t, repo.entries)
}

func TestRecordMetadataChangeUsesNewName(t *testing.T) {
	repo := &stubActivityRepo{}
	rec := &activityRecorder{repo: repo, now: fixedNow}

	rec.RecordMetadataChange(context.Background(), testItem(), map[string]string{"Product_Name": "House Blend"}, "", "Jess")

	require.Len(t, repo.entries, 1)
	assert.Equal(t, "House Blend", repo.entries[0].ProductName)
	assert.Equal(t, "Product Name changed from 'Espresso Beans' to 'House Blend'", repo.entries[0].Details)
}

func TestRecordSwallowsAppendFailure(t *testing.T) {
	repo := &stubActivityRepo{failErr: errors.New("sheet unavailable")}
	rec := &activityRecorder{repo: repo, now: fixedNow}

	// Must not panic or surface the error; the mutation it trails succeeds anyway.
	rec.RecordCreate(context.Background(), testItem(), "Jess")
	rec.RecordDelete(context.Background(), testItem(), "Other", "", "Jess")

	assert.Empty(t, repo.entries)
}

func TestUsageRecordsFiltersToUsageEntries(t *testing.T) {
	repo := &stubActivityRepo{entries: []model.ActivityEntry{
		{ProductID: "prod_1", ProductName: "Espresso Beans", ActionType: model.ActionUpdateStock,
			Reason: model.ReasonRecordUsage, Details: "Stock changed from 20 to 15 (-5)", StaffMember: "Jess"},
		{ProductID: "prod_1", ActionType: model.ActionUpdateStock,
			Reason: model.ReasonReceiveStock, Details: "Stock changed from 15 to 40 (+25)"},
		{ProductID: "prod_2", ActionType: model.ActionCreate, Details: "Item created with stock of 8"},
	}}
	rec := &activityRecorder{repo: repo, now: fixedNow}

	records, err := rec.UsageRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "prod_1", records[0].ProductID)
	assert.Equal(t, 5, records[0].QuantityUsed)
	assert.Equal(t, "Jess", records[0].StaffMember)
}
