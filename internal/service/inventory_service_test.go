package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmmj/cafe-inventory/internal/dto"
	"github.com/mccmmj/cafe-inventory/internal/model"
)

func newInventoryFixture(items ...model.InventoryItem) (*inventoryService, *stubInventoryRepo, *stubActivityRepo) {
	repo := newStubInventoryRepo(items...)
	activity := &stubActivityRepo{}
	rec := &activityRecorder{repo: activity, now: fixedNow}
	svc := &inventoryService{repo: repo, recorder: rec}
	return svc, repo, activity
}

func TestCreateRejectsDuplicateProductID(t *testing.T) {
	svc, _, activity := newInventoryFixture(testItem())

	_, err := svc.Create(context.Background(), dto.CreateItemRequest{
		ProductID:   "prod_1",
		ProductName: "Duplicate",
	}, "Jess")

	require.Error(t, err)
	assert.Empty(t, activity.entries)
}

func TestCreateDerivesStatusAndLogs(t *testing.T) {
	svc, repo, activity := newInventoryFixture()

	resp, err := svc.Create(context.Background(), dto.CreateItemRequest{
		ProductID:    "prod_9",
		ProductName:  "Oat Milk",
		CurrentStock: 4,
		MinLevel:     6,
	}, "Jess")

	require.NoError(t, err)
	assert.Equal(t, string(model.StatusLow), resp.Status)
	assert.Contains(t, repo.rows, "prod_9")
	require.Len(t, activity.entries, 1)
	assert.Equal(t, model.ActionCreate, activity.entries[0].ActionType)
	assert.Equal(t, "Item created with stock of 4", activity.entries[0].Details)
}

func TestAdjustStockRecordsUsage(t *testing.T) {
	svc, repo, activity := newInventoryFixture(testItem())

	resp, err := svc.AdjustStock(context.Background(), "prod_1", dto.AdjustStockRequest{
		Adjustment: -5,
		Reason:     model.ReasonRecordUsage,
		Notes:      "morning rush",
	}, "Jess")

	require.NoError(t, err)
	assert.Equal(t, 15, resp.CurrentStock)
	assert.Equal(t, "15", repo.rows["prod_1"]["Current_Stock"])

	require.Len(t, activity.entries, 1)
	assert.Equal(t, "Stock changed from 20 to 15 (-5)", activity.entries[0].Details)
	assert.Equal(t, model.ReasonRecordUsage, activity.entries[0].Reason)
	assert.Equal(t, "morning rush", activity.entries[0].Notes)
}

func TestAdjustStockRejectsNegativeResult(t *testing.T) {
	svc, repo, activity := newInventoryFixture(testItem())

	_, err := svc.AdjustStock(context.Background(), "prod_1", dto.AdjustStockRequest{
		Adjustment: -25,
		Reason:     model.ReasonRecordUsage,
	}, "Jess")

	require.Error(t, err)
	assert.Equal(t, "20", repo.rows["prod_1"]["Current_Stock"])
	assert.Empty(t, activity.entries)
}

func TestAdjustStockRejectsUnknownReason(t *testing.T) {
	svc, _, _ := newInventoryFixture(testItem())

	_, err := svc.AdjustStock(context.Background(), "prod_1", dto.AdjustStockRequest{
		Adjustment: -1,
		Reason:     "Shrinkage",
	}, "Jess")

	require.Error(t, err)
}

func TestAdjustStockUnknownItem(t *testing.T) {
	svc, _, _ := newInventoryFixture()

	_, err := svc.AdjustStock(context.Background(), "missing", dto.AdjustStockRequest{
		Adjustment: -1,
		Reason:     model.ReasonRecordUsage,
	}, "Jess")

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdatePatchesAndLogsDiff(t *testing.T) {
	svc, repo, activity := newInventoryFixture(testItem())

	loc := "B2"
	resp, err := svc.Update(context.Background(), "prod_1", dto.UpdateItemRequest{
		StorageLocation: &loc,
	}, "Jess")

	require.NoError(t, err)
	assert.Equal(t, "B2", resp.StorageLocation)
	assert.Equal(t, "B2", repo.rows["prod_1"]["Storage_Location"])

	require.Len(t, repo.patches, 1)
	assert.Contains(t, repo.patches[0], "Last_Updated")

	require.Len(t, activity.entries, 1)
	assert.Equal(t, model.ActionUpdateItem, activity.entries[0].ActionType)
	assert.Equal(t, "Storage Location changed from 'A1' to 'B2'", activity.entries[0].Details)
}

func TestUpdateNoFieldsIsNoOp(t *testing.T) {
	svc, repo, activity := newInventoryFixture(testItem())

	_, err := svc.Update(context.Background(), "prod_1", dto.UpdateItemRequest{}, "Jess")

	require.NoError(t, err)
	assert.Empty(t, repo.patches)
	assert.Empty(t, activity.entries)
}

func TestDeleteLogsBeforeRemoval(t *testing.T) {
	svc, repo, activity := newInventoryFixture(testItem())

	err := svc.Delete(context.Background(), "prod_1", dto.DeleteItemRequest{Reason: "Expired"}, "Jess")

	require.NoError(t, err)
	assert.NotContains(t, repo.rows, "prod_1")
	require.Len(t, activity.entries, 1)
	assert.Equal(t, model.ActionDelete, activity.entries[0].ActionType)
	assert.Equal(t, "Expired", activity.entries[0].Reason)
	assert.Equal(t, "Item deleted from inventory", activity.entries[0].Details)
}

func TestReceiveStockIncrementsAndStampsCosts(t *testing.T) {
	svc, repo, activity := newInventoryFixture(testItem())

	err := svc.ReceiveStock(context.Background(), "prod_1", 25, 1.5, 37.5, "Jess")

	require.NoError(t, err)
	assert.Equal(t, "45", repo.rows["prod_1"]["Current_Stock"])
	assert.Equal(t, "1.50", repo.rows["prod_1"]["Cost_Per_Unit"])
	assert.Equal(t, "37.50", repo.rows["prod_1"]["Purchase_Cost"])

	require.Len(t, activity.entries, 1)
	assert.Equal(t, model.ReasonReceiveStock, activity.entries[0].Reason)
	assert.Equal(t, "Stock changed from 20 to 45 (+25)", activity.entries[0].Details)
}

func TestStatsCountsAndTotalValue(t *testing.T) {
	svc, _, _ := newInventoryFixture(
		model.InventoryItem{ProductID: "a", CurrentStock: 10, MinLevel: 2, CostPerUnit: "$2.50"},
		model.InventoryItem{ProductID: "b", CurrentStock: 0, MinLevel: 2, CostPerUnit: "$1.00"},
		model.InventoryItem{ProductID: "c", CurrentStock: 2, MinLevel: 2, CostPerUnit: "$4.00"},
	)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 1, stats.ByStatus[string(model.StatusGood)])
	assert.Equal(t, 1, stats.ByStatus[string(model.StatusLow)])
	assert.Equal(t, 1, stats.ByStatus[string(model.StatusOutOfStock)])
	assert.Equal(t, "33.00", stats.TotalValue)
}
