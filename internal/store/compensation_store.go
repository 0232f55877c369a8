package store

import (
	"context"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"gorm.io/gorm"
)

// CompensationStore reads and replaces the compensation of a single employee
type CompensationStore struct {
	db *gorm.DB
}

// NewCompensationStore creates a CompensationStore
func NewCompensationStore(db *gorm.DB) *CompensationStore {
	return &CompensationStore{db: db}
}

// GetByEmployee loads the compensation owned by employeeID
func (s *CompensationStore) GetByEmployee(ctx context.Context, employeeID uint) (*model.Compensation, error) {
	var compensation model.Compensation
	err := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&compensation).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &compensation, nil
}

// Replace overwrites the compensation of employeeID, creating it when absent.
// ErrNotFound means the employee itself does not exist.
func (s *CompensationStore) Replace(ctx context.Context, employeeID uint, compensation *model.Compensation) error {
	return withTx(ctx, s.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Employee{}).Where("id = ?", employeeID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return saveCompensation(tx, employeeID, compensation)
	})
}
