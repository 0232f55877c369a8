package service

import (
	"context"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/nthnyvllflrs/ascent-erp/internal/store"
)

// EmployeeStore is implemented by *store.EmployeeStore
type EmployeeStore interface {
	List(ctx context.Context, req store.PageRequest) (store.Page[model.Employee], error)
	Get(ctx context.Context, id uint) (*model.Employee, error)
	Create(ctx context.Context, employee *model.Employee, compensation *model.Compensation) error
	Update(ctx context.Context, employee *model.Employee, compensation *model.Compensation) error
	Delete(ctx context.Context, id uint) error
}

// CompensationStore is implemented by *store.CompensationStore
type CompensationStore interface {
	GetByEmployee(ctx context.Context, employeeID uint) (*model.Compensation, error)
	Replace(ctx context.Context, employeeID uint, compensation *model.Compensation) error
}

// AdditionStore is implemented by *store.AdditionStore
type AdditionStore interface {
	List(ctx context.Context, req store.PageRequest) (store.Page[model.Addition], error)
	Get(ctx context.Context, id uint) (*model.Addition, error)
	Create(ctx context.Context, addition *model.Addition) error
	Update(ctx context.Context, addition *model.Addition) error
	Delete(ctx context.Context, id uint) error
}

// HolidayStore is implemented by *store.HolidayStore
type HolidayStore interface {
	List(ctx context.Context, filter store.HolidayFilter, req store.PageRequest) (store.Page[model.Holiday], error)
	Get(ctx context.Context, id uint) (*model.Holiday, error)
	Create(ctx context.Context, holiday *model.Holiday) error
	Update(ctx context.Context, holiday *model.Holiday) error
	Delete(ctx context.Context, id uint) error
}

// InventoryStore is implemented by *store.InventoryStore
type InventoryStore interface {
	List(ctx context.Context, filter store.InventoryFilter, req store.PageRequest) (store.Page[model.InventoryItem], error)
	All(ctx context.Context, filter store.InventoryFilter) ([]model.InventoryItem, error)
	Get(ctx context.Context, id uint) (*model.InventoryItem, error)
	Create(ctx context.Context, item *model.InventoryItem, stock *model.InventoryStock) error
	Update(ctx context.Context, item *model.InventoryItem, stock *model.InventoryStock) error
	Delete(ctx context.Context, id uint) (*model.InventoryItem, error)
}
