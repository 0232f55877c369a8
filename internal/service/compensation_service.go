package service

import (
	"context"
	"time"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/nthnyvllflrs/ascent-erp/pkg/metrics"
)

// CompensationService reads and replaces the compensation of one employee
type CompensationService struct {
	store   CompensationStore
	metrics *metrics.Metrics
}

// NewCompensationService creates a CompensationService. m may be nil.
func NewCompensationService(s CompensationStore, m *metrics.Metrics) *CompensationService {
	return &CompensationService{store: s, metrics: m}
}

// Get returns the compensation of employeeID
func (s *CompensationService) Get(ctx context.Context, employeeID uint) (*model.Compensation, error) {
	defer s.metrics.TrackDBOperation("query")(time.Now())
	return s.store.GetByEmployee(ctx, employeeID)
}

// Replace overwrites the compensation of employeeID, creating it if missing
func (s *CompensationService) Replace(ctx context.Context, employeeID uint, in CompensationInput) (*model.Compensation, error) {
	compensation := in.Compensation()

	defer s.metrics.TrackDBOperation("update")(time.Now())
	if err := s.store.Replace(ctx, employeeID, compensation); err != nil {
		return nil, err
	}

	s.metrics.RecordOperation("compensation", "update")
	return compensation, nil
}
