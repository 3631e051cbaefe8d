package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/mccmmj/cafe-inventory/internal/dto"
	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/repository"
)

const (
	inventoryCacheKey = "inventory:list"
	inventoryCacheTTL = 30 * time.Second
)

var ErrItemNotFound = errors.New("inventory item not found")

// InventoryService defines the business logic contract for inventory items.
type InventoryService interface {
	List(ctx context.Context) ([]dto.ItemResponse, error)
	Search(ctx context.Context, query string) ([]dto.ItemResponse, error)
	Get(ctx context.Context, productID string) (*dto.ItemResponse, error)
	Create(ctx context.Context, req dto.CreateItemRequest, actor string) (*dto.ItemResponse, error)
	Update(ctx context.Context, productID string, req dto.UpdateItemRequest, actor string) (*dto.ItemResponse, error)
	AdjustStock(ctx context.Context, productID string, req dto.AdjustStockRequest, actor string) (*dto.ItemResponse, error)
	Delete(ctx context.Context, productID string, req dto.DeleteItemRequest, actor string) error
	Stats(ctx context.Context) (*dto.InventoryStatsResponse, error)

	// ReceiveStock applies one fulfillment-line receipt: stock incremented by
	// qty, costs overwritten. Returns repository.ErrNotFound when no item
	// matches the product id; the order flow skips those silently.
	ReceiveStock(ctx context.Context, productID string, qty int, costPerUnit, purchaseCost float64, actor string) error
}

type inventoryService struct {
	repo     repository.InventoryRepository
	recorder ActivityRecorder
	rdb      *redis.Client // nil disables caching (unit test mode)
}

func NewInventoryService(repo repository.InventoryRepository, recorder ActivityRecorder, rdb *redis.Client) InventoryService {
	return &inventoryService{repo: repo, recorder: recorder, rdb: rdb}
}

// List returns the full inventory with derived statuses, cache-aside in
// redis. The TTL matches the UI's refetch interval; every mutation deletes
// the key so a poll after a write sees fresh data.
func (s *inventoryService) List(ctx context.Context) ([]dto.ItemResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, inventoryCacheKey).Bytes(); err == nil {
			var items []dto.ItemResponse
			if json.Unmarshal(cached, &items) == nil {
				return items, nil
			}
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.ItemsFromModel(items)

	if s.rdb != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, inventoryCacheKey, payload, inventoryCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("inventory cache set failed")
			}
		}
	}
	return resp, nil
}

func (s *inventoryService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, inventoryCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("inventory cache invalidation failed")
	}
}

func (s *inventoryService) Search(ctx context.Context, query string) ([]dto.ItemResponse, error) {
	items, err := s.repo.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}
	return dto.ItemsFromModel(items), nil
}

func (s *inventoryService) Get(ctx context.Context, productID string) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	resp := dto.ItemFromModel(*item)
	return &resp, nil
}

func (s *inventoryService) Create(ctx context.Context, req dto.CreateItemRequest, actor string) (*dto.ItemResponse, error) {
	if existing, err := s.repo.FindByProductID(ctx, req.ProductID); err == nil && existing != nil {
		return nil, fmt.Errorf("product %s already exists", req.ProductID)
	}

	item := model.InventoryItem{
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		Category:        req.Category,
		UnitSize:        req.UnitSize,
		CurrentStock:    req.CurrentStock,
		MinLevel:        req.MinLevel,
		MaxLevel:        req.MaxLevel,
		StorageLocation: req.StorageLocation,
		PrimaryVendor:   req.PrimaryVendor,
		Vendors:         req.Vendors,
		CostPerUnit:     req.CostPerUnit,
		Notes:           req.Notes,
		LastUpdated:     time.Now().UTC().Format(time.RFC3339),
	}
	item.Status = model.DeriveStatus(item.CurrentStock, item.MinLevel)

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.recorder.RecordCreate(ctx, item, actor)
	s.invalidateCache(ctx)

	resp := dto.ItemFromModel(item)
	return &resp, nil
}

func (s *inventoryService) Update(ctx context.Context, productID string, req dto.UpdateItemRequest, actor string) (*dto.ItemResponse, error) {
	original, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	updates := metadataUpdates(req)
	if len(updates) > 0 {
		patch := make(map[string]string, len(updates)+1)
		for k, v := range updates {
			patch[k] = v
		}
		patch["Last_Updated"] = time.Now().UTC().Format(time.RFC3339)
		if err := s.repo.Patch(ctx, productID, patch); err != nil {
			return nil, err
		}
		// Diff against the user-provided columns only, so the bookkeeping
		// timestamp never shows up as a changed field.
		s.recorder.RecordMetadataChange(ctx, *original, updates, "", actor)
		s.invalidateCache(ctx)
	}

	updated, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	resp := dto.ItemFromModel(*updated)
	return &resp, nil
}

func (s *inventoryService) AdjustStock(ctx context.Context, productID string, req dto.AdjustStockRequest, actor string) (*dto.ItemResponse, error) {
	if req.Reason != model.ReasonRecordUsage && req.Reason != model.ReasonReceiveStock {
		return nil, fmt.Errorf("unknown adjustment reason %q", req.Reason)
	}

	item, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	newStock := item.CurrentStock + req.Adjustment
	if newStock < 0 {
		return nil, fmt.Errorf("adjustment would leave stock negative (%d %+d)", item.CurrentStock, req.Adjustment)
	}

	patch := map[string]string{
		"Current_Stock": strconv.Itoa(newStock),
		"Last_Updated":  time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Patch(ctx, productID, patch); err != nil {
		return nil, err
	}
	s.recorder.RecordStockChange(ctx, *item, newStock, req.Reason, req.Notes, actor)
	s.invalidateCache(ctx)

	item.CurrentStock = newStock
	item.Status = model.DeriveStatus(newStock, item.MinLevel)
	resp := dto.ItemFromModel(*item)
	return &resp, nil
}

// Delete records the audit entry before removing the row, so a deletion that
// fails halfway still leaves a trace of the intent.
func (s *inventoryService) Delete(ctx context.Context, productID string, req dto.DeleteItemRequest, actor string) error {
	item, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	s.recorder.RecordDelete(ctx, *item, req.Reason, req.Notes, actor)
	if err := s.repo.Delete(ctx, productID); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *inventoryService) Stats(ctx context.Context) (*dto.InventoryStatsResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := map[string]int{
		string(model.StatusGood):       0,
		string(model.StatusMedium):     0,
		string(model.StatusLow):        0,
		string(model.StatusOutOfStock): 0,
	}
	total := decimal.Zero
	for _, it := range items {
		byStatus[string(it.Status)]++
		total = total.Add(it.UnitCost().Mul(decimal.NewFromInt(int64(it.CurrentStock))))
	}

	return &dto.InventoryStatsResponse{
		TotalItems: len(items),
		ByStatus:   byStatus,
		TotalValue: total.StringFixed(2),
	}, nil
}

func (s *inventoryService) ReceiveStock(ctx context.Context, productID string, qty int, costPerUnit, purchaseCost float64, actor string) error {
	item, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		return err
	}

	newStock := item.CurrentStock + qty
	patch := map[string]string{
		"Current_Stock": strconv.Itoa(newStock),
		"Cost_Per_Unit": decimal.NewFromFloat(costPerUnit).StringFixed(2),
		"Purchase_Cost": decimal.NewFromFloat(purchaseCost).StringFixed(2),
		"Last_Updated":  time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Patch(ctx, productID, patch); err != nil {
		return err
	}
	s.recorder.RecordStockChange(ctx, *item, newStock, model.ReasonReceiveStock, "", actor)
	s.invalidateCache(ctx)
	return nil
}

// metadataUpdates translates the non-nil request fields into sheet columns.
func metadataUpdates(req dto.UpdateItemRequest) map[string]string {
	updates := make(map[string]string)
	if req.ProductName != nil {
		updates["Product_Name"] = *req.ProductName
	}
	if req.Category != nil {
		updates["Category"] = *req.Category
	}
	if req.UnitSize != nil {
		updates["Unit_Size"] = *req.UnitSize
	}
	if req.MinLevel != nil {
		updates["Min_Level"] = strconv.Itoa(*req.MinLevel)
	}
	if req.MaxLevel != nil {
		updates["Max_Level"] = strconv.Itoa(*req.MaxLevel)
	}
	if req.StorageLocation != nil {
		updates["Storage_Location"] = *req.StorageLocation
	}
	if req.PrimaryVendor != nil {
		updates["Primary_Vendor"] = *req.PrimaryVendor
	}
	if req.Vendors != nil {
		updates["Vendors"] = strings.Join(*req.Vendors, ",")
	}
	if req.CostPerUnit != nil {
		updates["Cost_Per_Unit"] = *req.CostPerUnit
	}
	if req.Notes != nil {
		updates["Notes"] = *req.Notes
	}
	return updates
}
