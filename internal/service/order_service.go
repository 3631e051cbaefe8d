package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mccmmj/cafe-inventory/internal/dto"
	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/repository"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// OrderService owns the purchase-order lifecycle: submission, status
// transitions, rejection and the fulfillment reconciliation flow.
//
// Terminal transitions are two sequential sheet writes (append to history,
// delete from live) with no atomicity guarantee; a crash between them can
// leave the order in both collections. The design accepts this — the proxy
// offers no transactions and no compensation is attempted.
type OrderService interface {
	Submit(ctx context.Context, req dto.SubmitOrderRequest, actor string) (*dto.OrderResponse, error)
	List(ctx context.Context, statusFilter string) ([]dto.OrderResponse, error)
	Get(ctx context.Context, id string) (*dto.OrderResponse, error)
	SetStatus(ctx context.Context, id string, newStatus model.OrderStatus, actor string) (*dto.OrderResponse, error)
	Fulfill(ctx context.Context, id string, req dto.FulfillOrderRequest, actor string) (*dto.OrderResponse, error)
}

type orderService struct {
	orders    repository.OrderRepository
	history   repository.OrderHistoryRepository
	inventory InventoryService
	now       func() time.Time
}

func NewOrderService(orders repository.OrderRepository, history repository.OrderHistoryRepository, inventory InventoryService) OrderService {
	return &orderService{orders: orders, history: history, inventory: inventory, now: time.Now}
}

func (s *orderService) Submit(ctx context.Context, req dto.SubmitOrderRequest, actor string) (*dto.OrderResponse, error) {
	items := make([]model.OrderItem, 0, len(req.Items))
	selected := 0
	for _, in := range req.Items {
		if in.Selected {
			selected++
		}
		vendor := in.SelectedVendor
		if vendor == "" {
			vendor = req.VendorName
		}
		items = append(items, model.OrderItem{
			ProductID:      in.ProductID,
			Name:           in.Name,
			Quantity:       in.Quantity,
			Unit:           in.Unit,
			CurrentStock:   in.CurrentStock,
			PricePerUnit:   in.PricePerUnit,
			VendorOptions:  in.VendorOptions,
			SelectedVendor: vendor,
			Selected:       in.Selected,
		})
	}
	if selected == 0 {
		return nil, errors.New("order has no selected lines")
	}

	now := s.now().UTC()
	ts := now.Format(time.RFC3339)
	order := model.Order{
		ID:          model.NewOrderID(now),
		VendorID:    req.VendorName,
		VendorName:  req.VendorName,
		Items:       items,
		Status:      model.OrderSubmitted,
		CreatedAt:   ts,
		UpdatedAt:   ts,
		SubmittedAt: ts,
		SubmittedBy: actor,
		UpdatedBy:   actor,
		Notes:       req.Notes,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	resp := dto.OrderFromModel(order)
	return &resp, nil
}

// List returns live orders, or history rows when filtering on a terminal
// status. An empty filter lists the live collection.
func (s *orderService) List(ctx context.Context, statusFilter string) ([]dto.OrderResponse, error) {
	status := model.OrderStatus(statusFilter)

	var (
		orders []model.Order
		err    error
	)
	if status.IsHistoryStatus() {
		orders, err = s.history.List(ctx)
	} else {
		orders, err = s.orders.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	if statusFilter == "" {
		return dto.OrdersFromModel(orders), nil
	}
	filtered := orders[:0]
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return dto.OrdersFromModel(filtered), nil
}

func (s *orderService) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.OrderFromModel(*order)
	return &resp, nil
}

// SetStatus applies plain transitions: submitted → in_process, and rejection
// from submitted or in_process. Entering fulfillment or complete goes through
// Fulfill, which reconciles received quantities instead of flipping a field.
func (s *orderService) SetStatus(ctx context.Context, id string, newStatus model.OrderStatus, actor string) (*dto.OrderResponse, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	switch newStatus {
	case model.OrderRejected:
		if !model.CanTransition(order.Status, model.OrderRejected) {
			return nil, fmt.Errorf("%w: %s → rejected", ErrInvalidTransition, order.Status)
		}
		return s.moveToHistory(ctx, *order, model.OrderRejected, actor)

	case model.OrderInProcess:
		if !model.CanTransition(order.Status, model.OrderInProcess) {
			return nil, fmt.Errorf("%w: %s → in_process", ErrInvalidTransition, order.Status)
		}
		ts := s.now().UTC().Format(time.RFC3339)
		patch := map[string]string{
			"Status":     string(model.OrderInProcess),
			"Updated_At": ts,
			"Updated_By": actor,
		}
		if err := s.orders.Patch(ctx, id, patch); err != nil {
			return nil, err
		}
		order.Status = model.OrderInProcess
		order.UpdatedAt = ts
		order.UpdatedBy = actor
		resp := dto.OrderFromModel(*order)
		return &resp, nil

	default:
		return nil, fmt.Errorf("%w: %s is not a direct transition target", ErrInvalidTransition, newStatus)
	}
}

// Fulfill runs the reconciliation flow for one delivery session.
//
// Received quantities are cumulative per line: the stored snapshot carries
// the total received so far, and inventory is incremented by the difference
// from that snapshot, so re-submitting the same totals adds no stock. Totals
// below the snapshot are rejected. Lines whose product id matches no
// inventory record are skipped silently.
func (s *orderService) Fulfill(ctx context.Context, id string, req dto.FulfillOrderRequest, actor string) (*dto.OrderResponse, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderInProcess && order.Status != model.OrderFulfillment {
		return nil, fmt.Errorf("%w: %s → fulfillment", ErrInvalidTransition, order.Status)
	}

	entered := make(map[string]dto.FulfillLine, len(req.Lines))
	for _, line := range req.Lines {
		entered[line.ProductID] = line
	}

	prev := order.ReceivedSnapshot()
	merged := make([]model.ReceivedItem, len(order.Items))
	allFulfilled := true

	for i, item := range order.Items {
		newTotal := prev[i].ReceivedQty
		costPerUnit := prev[i].CostPerUnit
		purchaseCost := prev[i].PurchaseCost
		if line, ok := entered[item.ProductID]; ok {
			if line.ReceivedQty < prev[i].ReceivedQty {
				return nil, fmt.Errorf("line %s: received total %d below previous %d",
					item.ProductID, line.ReceivedQty, prev[i].ReceivedQty)
			}
			newTotal = line.ReceivedQty
			costPerUnit = line.CostPerUnit
			purchaseCost = line.PurchaseCost
		}
		if newTotal < item.Quantity {
			allFulfilled = false
		}

		if delta := newTotal - prev[i].ReceivedQty; delta > 0 {
			err := s.inventory.ReceiveStock(ctx, item.ProductID, delta, costPerUnit, purchaseCost, actor)
			if errors.Is(err, repository.ErrNotFound) {
				log.Warn().
					Str("order_id", order.ID).
					Str("product_id", item.ProductID).
					Msg("fulfillment line matches no inventory record, skipping")
			} else if err != nil {
				return nil, err
			}
		}

		merged[i] = model.ReceivedItem{
			OrderItem:    item,
			ReceivedQty:  newTotal,
			CostPerUnit:  costPerUnit,
			PurchaseCost: purchaseCost,
		}
	}

	order.ReceivedItems = merged
	if allFulfilled {
		return s.moveToHistory(ctx, *order, model.OrderComplete, actor)
	}

	ts := s.now().UTC().Format(time.RFC3339)
	order.Status = model.OrderFulfillment
	order.UpdatedAt = ts
	order.UpdatedBy = actor
	patch := map[string]string{
		"Status":         string(model.OrderFulfillment),
		"Updated_At":     ts,
		"Updated_By":     actor,
		"Received_Items": order.ToRow()["Received_Items"],
	}
	if err := s.orders.Patch(ctx, id, patch); err != nil {
		return nil, err
	}
	resp := dto.OrderFromModel(*order)
	return &resp, nil
}

// moveToHistory copies the order into Order_History with a terminal status,
// then deletes it from the live sheet.
func (s *orderService) moveToHistory(ctx context.Context, order model.Order, status model.OrderStatus, actor string) (*dto.OrderResponse, error) {
	order.Status = status
	order.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	order.UpdatedBy = actor

	if err := s.history.Append(ctx, order); err != nil {
		return nil, err
	}
	if err := s.orders.Delete(ctx, order.ID); err != nil {
		return nil, err
	}

	resp := dto.OrderFromModel(order)
	return &resp, nil
}

func (s *orderService) find(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}
