package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeStore persists employees together with their compensation
type EmployeeStore struct {
	db *gorm.DB
}

// NewEmployeeStore creates an EmployeeStore
func NewEmployeeStore(db *gorm.DB) *EmployeeStore {
	return &EmployeeStore{db: db}
}

// List returns one page of employees ordered by id, compensation included
func (s *EmployeeStore) List(ctx context.Context, req PageRequest) (Page[model.Employee], error) {
	query := s.db.WithContext(ctx).Model(&model.Employee{}).Order("id")
	page, err := paginate[model.Employee](query, req, "Compensation")
	if err != nil {
		return page, fmt.Errorf("list employees: %w", err)
	}
	return page, nil
}

// Get loads one employee with its compensation
func (s *EmployeeStore) Get(ctx context.Context, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := s.db.WithContext(ctx).Preload("Compensation").First(&employee, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &employee, nil
}

// Create inserts the employee, then its compensation, in one transaction
func (s *EmployeeStore) Create(ctx context.Context, employee *model.Employee, compensation *model.Compensation) error {
	return withTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(employee).Error; err != nil {
			return fmt.Errorf("create employee: %w", err)
		}

		compensation.EmployeeID = employee.ID
		if err := tx.Create(compensation).Error; err != nil {
			return fmt.Errorf("create compensation: %w", err)
		}

		employee.Compensation = compensation
		return nil
	})
}

// Update replaces every column of the employee identified by employee.ID and
// of its compensation, creating the compensation row if it is missing.
func (s *EmployeeStore) Update(ctx context.Context, employee *model.Employee, compensation *model.Compensation) error {
	return withTx(ctx, s.db, func(tx *gorm.DB) error {
		var existing model.Employee
		if err := tx.First(&existing, employee.ID).Error; err != nil {
			return notFound(err)
		}

		employee.CreatedAt = existing.CreatedAt
		if err := tx.Omit(clause.Associations).Save(employee).Error; err != nil {
			return fmt.Errorf("update employee: %w", err)
		}

		if err := saveCompensation(tx, employee.ID, compensation); err != nil {
			return err
		}

		employee.Compensation = compensation
		return nil
	})
}

// Delete removes the employee and its compensation
func (s *EmployeeStore) Delete(ctx context.Context, id uint) error {
	return withTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&model.Compensation{}).Error; err != nil {
			return fmt.Errorf("delete compensation: %w", err)
		}

		result := tx.Delete(&model.Employee{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete employee: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// saveCompensation replaces the compensation row of employeeID, keeping its
// id and creation time, or inserts it when the employee has none yet.
func saveCompensation(tx *gorm.DB, employeeID uint, compensation *model.Compensation) error {
	var existing model.Compensation
	err := tx.Where("employee_id = ?", employeeID).First(&existing).Error
	switch {
	case err == nil:
		compensation.ID = existing.ID
		compensation.CreatedAt = existing.CreatedAt
	case errors.Is(err, gorm.ErrRecordNotFound):
		compensation.ID = 0
	default:
		return fmt.Errorf("load compensation: %w", err)
	}

	compensation.EmployeeID = employeeID
	if err := tx.Save(compensation).Error; err != nil {
		return fmt.Errorf("save compensation: %w", err)
	}
	return nil
}
