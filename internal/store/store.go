// Package store persists HR and inventory records with GORM. Writes that
// touch an owner and its one-to-one sub-record run in one transaction.
package store

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id does not resolve to a record
var ErrNotFound = errors.New("record not found")

// PageRequest selects one page of an index listing. Page is 1-based.
type PageRequest struct {
	Page    int
	PerPage int
}

func (p PageRequest) offset() int {
	return (p.Page - 1) * p.PerPage
}

// Page is one page of records plus the counters clients need to navigate
type Page[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
	From        *int  `json:"from"`
	To          *int  `json:"to"`
}

// NewPage assembles the page envelope for data fetched with req
func NewPage[T any](data []T, req PageRequest, total int64) Page[T] {
	if data == nil {
		data = []T{}
	}

	lastPage := 1
	if total > 0 {
		lastPage = int(math.Ceil(float64(total) / float64(req.PerPage)))
	}

	page := Page[T]{
		Data:        data,
		CurrentPage: req.Page,
		PerPage:     req.PerPage,
		Total:       total,
		LastPage:    lastPage,
	}
	if len(data) > 0 {
		from := req.offset() + 1
		to := req.offset() + len(data)
		page.From = &from
		page.To = &to
	}
	return page
}

// paginate counts query, then fetches the requested window of it with the
// given associations preloaded
func paginate[T any](query *gorm.DB, req PageRequest, preloads ...string) (Page[T], error) {
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	find := query.Offset(req.offset()).Limit(req.PerPage)
	for _, p := range preloads {
		find = find.Preload(p)
	}

	var rows []T
	if err := find.Find(&rows).Error; err != nil {
		return Page[T]{}, err
	}

	return NewPage(rows, req, total), nil
}

// notFound maps GORM's missing-row error to ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// withTx runs fn in a transaction bound to ctx
func withTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
