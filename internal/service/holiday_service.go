package service

import (
	"context"
	"time"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/nthnyvllflrs/ascent-erp/internal/store"
	"github.com/nthnyvllflrs/ascent-erp/pkg/metrics"
)

// HolidayService manages the holiday calendar
type HolidayService struct {
	store   HolidayStore
	metrics *metrics.Metrics
}

// NewHolidayService creates a HolidayService. m may be nil.
func NewHolidayService(s HolidayStore, m *metrics.Metrics) *HolidayService {
	return &HolidayService{store: s, metrics: m}
}

// List returns one page of holidays matching filter, in calendar order
func (s *HolidayService) List(ctx context.Context, filter store.HolidayFilter, req store.PageRequest) (store.Page[model.Holiday], error) {
	defer s.metrics.TrackDBOperation("query")(time.Now())
	return s.store.List(ctx, filter, req)
}

func (s *HolidayService) Get(ctx context.Context, id uint) (*model.Holiday, error) {
	defer s.metrics.TrackDBOperation("query")(time.Now())
	return s.store.Get(ctx, id)
}

func (s *HolidayService) Create(ctx context.Context, in HolidayInput) (*model.Holiday, error) {
	holiday, err := in.Holiday()
	if err != nil {
		return nil, err
	}

	defer s.metrics.TrackDBOperation("insert")(time.Now())
	if err := s.store.Create(ctx, holiday); err != nil {
		return nil, err
	}

	s.metrics.RecordOperation("holiday", "create")
	return holiday, nil
}

func (s *HolidayService) Update(ctx context.Context, id uint, in HolidayInput) (*model.Holiday, error) {
	holiday, err := in.Holiday()
	if err != nil {
		return nil, err
	}
	holiday.ID = id

	defer s.metrics.TrackDBOperation("update")(time.Now())
	if err := s.store.Update(ctx, holiday); err != nil {
		return nil, err
	}

	s.metrics.RecordOperation("holiday", "update")
	return holiday, nil
}

func (s *HolidayService) Delete(ctx context.Context, id uint) error {
	defer s.metrics.TrackDBOperation("delete")(time.Now())
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.RecordOperation("holiday", "delete")
	return nil
}
