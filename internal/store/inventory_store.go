package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryFilter narrows an item listing. Zero values match everything.
type InventoryFilter struct {
	Status string
}

// InventoryStore persists inventory items together with their stock record
type InventoryStore struct {
	db *gorm.DB
}

// NewInventoryStore creates an InventoryStore
func NewInventoryStore(db *gorm.DB) *InventoryStore {
	return &InventoryStore{db: db}
}

func (s *InventoryStore) filtered(ctx context.Context, filter InventoryFilter) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&model.InventoryItem{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return query.Order("id")
}

// List returns one page of items ordered by id, stock included
func (s *InventoryStore) List(ctx context.Context, filter InventoryFilter, req PageRequest) (Page[model.InventoryItem], error) {
	page, err := paginate[model.InventoryItem](s.filtered(ctx, filter), req, "InventoryStock")
	if err != nil {
		return page, fmt.Errorf("list inventory items: %w", err)
	}
	return page, nil
}

// All returns every matching item with its stock, for exports
func (s *InventoryStore) All(ctx context.Context, filter InventoryFilter) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	if err := s.filtered(ctx, filter).Preload("InventoryStock").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load inventory items: %w", err)
	}
	return items, nil
}

// Get loads one item with its stock
func (s *InventoryStore) Get(ctx context.Context, id uint) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := s.db.WithContext(ctx).Preload("InventoryStock").First(&item, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// Create inserts the item, then its stock, in one transaction
func (s *InventoryStore) Create(ctx context.Context, item *model.InventoryItem, stock *model.InventoryStock) error {
	return withTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
			return fmt.Errorf("create inventory item: %w", err)
		}

		stock.InventoryItemID = item.ID
		if err := tx.Create(stock).Error; err != nil {
			return fmt.Errorf("create inventory stock: %w", err)
		}

		item.InventoryStock = stock
		return nil
	})
}

// Update replaces the item identified by item.ID. A nil stock leaves the
// stored stock untouched; otherwise the stock row is replaced (or created).
func (s *InventoryStore) Update(ctx context.Context, item *model.InventoryItem, stock *model.InventoryStock) error {
	return withTx(ctx, s.db, func(tx *gorm.DB) error {
		var existing model.InventoryItem
		if err := tx.First(&existing, item.ID).Error; err != nil {
			return notFound(err)
		}

		item.CreatedAt = existing.CreatedAt
		if err := tx.Omit(clause.Associations).Save(item).Error; err != nil {
			return fmt.Errorf("update inventory item: %w", err)
		}

		var current model.InventoryStock
		err := tx.Where("inventory_item_id = ?", item.ID).First(&current).Error
		switch {
		case err == nil:
		case errors.Is(err, gorm.ErrRecordNotFound):
			if stock == nil {
				// every item owns a stock row
				stock = &model.InventoryStock{}
			}
		default:
			return fmt.Errorf("load inventory stock: %w", err)
		}

		if stock == nil {
			item.InventoryStock = &current
			return nil
		}

		stock.ID = current.ID
		stock.CreatedAt = current.CreatedAt
		stock.InventoryItemID = item.ID
		if err := tx.Save(stock).Error; err != nil {
			return fmt.Errorf("save inventory stock: %w", err)
		}

		item.InventoryStock = stock
		return nil
	})
}

// Delete removes the item and its stock, returning the removed item so
// callers can release anything keyed by it
func (s *InventoryStore) Delete(ctx context.Context, id uint) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := withTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Where("inventory_item_id = ?", id).Delete(&model.InventoryStock{}).Error; err != nil {
			return fmt.Errorf("delete inventory stock: %w", err)
		}
		if err := tx.Delete(&model.InventoryItem{}, id).Error; err != nil {
			return fmt.Errorf("delete inventory item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
