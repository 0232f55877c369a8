package service

import (
	"context"
	"time"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/nthnyvllflrs/ascent-erp/internal/store"
	"github.com/nthnyvllflrs/ascent-erp/pkg/metrics"
)

// AdditionService manages payroll additions
type AdditionService struct {
	store   AdditionStore
	metrics *metrics.Metrics
}

func NewAdditionService(s AdditionStore, m *metrics.Metrics) *AdditionService {
	return &AdditionService{store: s, metrics: m}
}

func (s *AdditionService) List(ctx context.Context, req store.PageRequest) (store.Page[model.Addition], error) {
	defer s.metrics.TrackDBOperation("query")(time.Now())
	return s.store.List(ctx, req)
}

func (s *AdditionService) Get(ctx context.Context, id uint) (*model.Addition, error) {
	defer s.metrics.TrackDBOperation("query")(time.Now())
	return s.store.Get(ctx, id)
}

func (s *AdditionService) Create(ctx context.Context, in AdditionInput) (*model.Addition, error) {
	addition := &model.Addition{Name: in.Name}

	defer s.metrics.TrackDBOperation("insert")(time.Now())
	if err := s.store.Create(ctx, addition); err != nil {
		return nil, err
	}

	s.metrics.RecordOperation("addition", "create")
	return addition, nil
}

func (s *AdditionService) Update(ctx context.Context, id uint, in AdditionInput) (*model.Addition, error) {
	addition := &model.Addition{ID: id, Name: in.Name}

	defer s.metrics.TrackDBOperation("update")(time.Now())
	if err := s.store.Update(ctx, addition); err != nil {
		return nil, err
	}

	s.metrics.RecordOperation("addition", "update")
	return addition, nil
}

func (s *AdditionService) Delete(ctx context.Context, id uint) error {
	defer s.metrics.TrackDBOperation("delete")(time.Now())
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.RecordOperation("addition", "delete")
	return nil
}
