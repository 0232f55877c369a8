// Package service holds the HR and inventory operations behind the HTTP
// handlers. Inputs are validated by the caller; services convert them to
// records and persist them through the store interfaces.
package service

import (
	"context"
	"time"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/nthnyvllflrs/ascent-erp/internal/store"
	"github.com/nthnyvllflrs/ascent-erp/pkg/metrics"
)

const entityEmployee = "employee"

// EmployeeService manages employees and the compensation each one owns
type EmployeeService struct {
	store   EmployeeStore
	metrics *metrics.Metrics
}

// NewEmployeeService creates an EmployeeService. m may be nil.
func NewEmployeeService(s EmployeeStore, m *metrics.Metrics) *EmployeeService {
	return &EmployeeService{store: s, metrics: m}
}

// List returns one page of employees with their compensation
func (s *EmployeeService) List(ctx context.Context, req store.PageRequest) (store.Page[model.Employee], error) {
	defer s.metrics.TrackDBOperation("query")(time.Now())
	return s.store.List(ctx, req)
}

// Get returns one employee with its compensation
func (s *EmployeeService) Get(ctx context.Context, id uint) (*model.Employee, error) {
	defer s.metrics.TrackDBOperation("query")(time.Now())
	return s.store.Get(ctx, id)
}

// Create stores a new employee together with its compensation
func (s *EmployeeService) Create(ctx context.Context, in EmployeeInput) (*model.Employee, error) {
	employee, err := in.Employee()
	if err != nil {
		return nil, err
	}

	defer s.metrics.TrackDBOperation("insert")(time.Now())
	if err := s.store.Create(ctx, employee, in.Compensation()); err != nil {
		return nil, err
	}

	s.metrics.RecordOperation(entityEmployee, "create")
	return employee, nil
}

// Update replaces every field of the employee and of its compensation.
// Status dates missing from the input are cleared.
func (s *EmployeeService) Update(ctx context.Context, id uint, in EmployeeInput) (*model.Employee, error) {
	employee, err := in.Employee()
	if err != nil {
		return nil, err
	}
	employee.ID = id

	defer s.metrics.TrackDBOperation("update")(time.Now())
	if err := s.store.Update(ctx, employee, in.Compensation()); err != nil {
		return nil, err
	}

	s.metrics.RecordOperation(entityEmployee, "update")
	return employee, nil
}

// Delete removes the employee and its compensation
func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	defer s.metrics.TrackDBOperation("delete")(time.Now())
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.RecordOperation(entityEmployee, "delete")
	return nil
}
