package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"gorm.io/gorm"
)

// HolidayFilter narrows a holiday listing. Zero values match everything.
type HolidayFilter struct {
	Year int
	Type string
}

// HolidayStore persists holidays
type HolidayStore struct {
	db *gorm.DB
}

// NewHolidayStore creates a HolidayStore
func NewHolidayStore(db *gorm.DB) *HolidayStore {
	return &HolidayStore{db: db}
}

// List returns one page of holidays ordered by date
func (s *HolidayStore) List(ctx context.Context, filter HolidayFilter, req PageRequest) (Page[model.Holiday], error) {
	query := s.db.WithContext(ctx).Model(&model.Holiday{})
	if filter.Year > 0 {
		query = query.Where("date >= ? AND date <= ?",
			model.NewDate(filter.Year, time.January, 1),
			model.NewDate(filter.Year, time.December, 31))
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	page, err := paginate[model.Holiday](query.Order("date").Order("id"), req)
	if err != nil {
		return page, fmt.Errorf("list holidays: %w", err)
	}
	return page, nil
}

// Get loads one holiday
func (s *HolidayStore) Get(ctx context.Context, id uint) (*model.Holiday, error) {
	var holiday model.Holiday
	if err := s.db.WithContext(ctx).First(&holiday, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &holiday, nil
}

// Create inserts a holiday
func (s *HolidayStore) Create(ctx context.Context, holiday *model.Holiday) error {
	if err := s.db.WithContext(ctx).Create(holiday).Error; err != nil {
		return fmt.Errorf("create holiday: %w", err)
	}
	return nil
}

// Update replaces the holiday identified by holiday.ID
func (s *HolidayStore) Update(ctx context.Context, holiday *model.Holiday) error {
	return withTx(ctx, s.db, func(tx *gorm.DB) error {
		var existing model.Holiday
		if err := tx.First(&existing, holiday.ID).Error; err != nil {
			return notFound(err)
		}

		holiday.CreatedAt = existing.CreatedAt
		if err := tx.Save(holiday).Error; err != nil {
			return fmt.Errorf("update holiday: %w", err)
		}
		return nil
	})
}

// Delete removes one holiday
func (s *HolidayStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Holiday{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete holiday: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
