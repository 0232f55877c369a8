package store

import (
	"context"
	"fmt"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"gorm.io/gorm"
)

// AdditionStore persists payroll addition line items
type AdditionStore struct {
	db *gorm.DB
}

// NewAdditionStore creates an AdditionStore
func NewAdditionStore(db *gorm.DB) *AdditionStore {
	return &AdditionStore{db: db}
}

// List returns one page of additions ordered by id
func (s *AdditionStore) List(ctx context.Context, req PageRequest) (Page[model.Addition], error) {
	query := s.db.WithContext(ctx).Model(&model.Addition{}).Order("id")
	page, err := paginate[model.Addition](query, req)
	if err != nil {
		return page, fmt.Errorf("list additions: %w", err)
	}
	return page, nil
}

// Get loads one addition
func (s *AdditionStore) Get(ctx context.Context, id uint) (*model.Addition, error) {
	var addition model.Addition
	if err := s.db.WithContext(ctx).First(&addition, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &addition, nil
}

// Create inserts an addition
func (s *AdditionStore) Create(ctx context.Context, addition *model.Addition) error {
	if err := s.db.WithContext(ctx).Create(addition).Error; err != nil {
		return fmt.Errorf("create addition: %w", err)
	}
	return nil
}

// Update replaces the addition identified by addition.ID
func (s *AdditionStore) Update(ctx context.Context, addition *model.Addition) error {
	return withTx(ctx, s.db, func(tx *gorm.DB) error {
		var existing model.Addition
		if err := tx.First(&existing, addition.ID).Error; err != nil {
			return notFound(err)
		}

		addition.CreatedAt = existing.CreatedAt
		if err := tx.Save(addition).Error; err != nil {
			return fmt.Errorf("update addition: %w", err)
		}
		return nil
	})
}

// Delete removes one addition
func (s *AdditionStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Addition{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete addition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
