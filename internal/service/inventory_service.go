package service

import (
	"context"
	"time"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/nthnyvllflrs/ascent-erp/internal/store"
	"github.com/nthnyvllflrs/ascent-erp/pkg/logger"
	"github.com/nthnyvllflrs/ascent-erp/pkg/metrics"
	"go.uber.org/zap"
)

const entityInventoryItem = "inventory_item"

// InventoryService manages inventory items and their stock
type InventoryService struct {
	store   InventoryStore
	metrics *metrics.Metrics
}

// NewInventoryService creates an InventoryService. m may be nil.
func NewInventoryService(s InventoryStore, m *metrics.Metrics) *InventoryService {
	return &InventoryService{store: s, metrics: m}
}

// List returns one page of items with their stock
func (s *InventoryService) List(ctx context.Context, filter store.InventoryFilter, req store.PageRequest) (store.Page[model.InventoryItem], error) {
	defer s.metrics.TrackDBOperation("query")(time.Now())
	return s.store.List(ctx, filter, req)
}

// Get returns one item with its stock
func (s *InventoryService) Get(ctx context.Context, id uint) (*model.InventoryItem, error) {
	defer s.metrics.TrackDBOperation("query")(time.Now())
	return s.store.Get(ctx, id)
}

// Create stores an item. An input without stock gets an all-zero stock row.
func (s *InventoryService) Create(ctx context.Context, in InventoryItemInput) (*model.InventoryItem, error) {
	item, stock, err := in.Item()
	if err != nil {
		return nil, err
	}
	if stock == nil {
		stock = &model.InventoryStock{}
	}

	defer s.metrics.TrackDBOperation("insert")(time.Now())
	if err := s.store.Create(ctx, item, stock); err != nil {
		return nil, err
	}

	s.metrics.RecordOperation(entityInventoryItem, "create")
	s.metrics.SetInventoryOnHand(item.ID, item.SKU, stock.QuantityOnHand)
	return item, nil
}

// Update replaces the item. Its stock is replaced only when the input
// carries one.
func (s *InventoryService) Update(ctx context.Context, id uint, in InventoryItemInput) (*model.InventoryItem, error) {
	item, stock, err := in.Item()
	if err != nil {
		return nil, err
	}
	item.ID = id

	var previousSKU string
	if current, err := s.store.Get(ctx, id); err == nil {
		previousSKU = current.SKU
	}

	defer s.metrics.TrackDBOperation("update")(time.Now())
	if err := s.store.Update(ctx, item, stock); err != nil {
		return nil, err
	}

	s.metrics.RecordOperation(entityInventoryItem, "update")
	if previousSKU != "" && previousSKU != item.SKU {
		logger.Ctx(ctx).Info("Inventory item SKU changed",
			zap.Uint("inventory_item_id", id),
			zap.String("previous_sku", previousSKU),
			zap.String("sku", item.SKU))
	}
	if item.InventoryStock != nil {
		s.metrics.SetInventoryOnHand(item.ID, item.SKU, item.InventoryStock.QuantityOnHand)
	}
	return item, nil
}

// Delete removes the item and its stock
func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	defer s.metrics.TrackDBOperation("delete")(time.Now())
	item, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.metrics.RecordOperation(entityInventoryItem, "delete")
	s.metrics.ForgetInventory(item.ID)
	return nil
}
