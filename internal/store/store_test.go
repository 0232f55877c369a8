package store

import (
	"context"
	"testing"

	"github.com/nthnyvllflrs/ascent-erp/internal/factory"
	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/nthnyvllflrs/ascent-erp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		p := NewPage[int](nil, PageRequest{Page: 1, PerPage: 15}, 0)
		assert.Equal(t, []int{}, p.Data)
		assert.Equal(t, 1, p.LastPage)
		assert.Nil(t, p.From)
		assert.Nil(t, p.To)
	})

	t.Run("last partial page", func(t *testing.T) {
		p := NewPage([]int{1, 2}, PageRequest{Page: 3, PerPage: 15}, 32)
		assert.Equal(t, 3, p.LastPage)
		assert.Equal(t, 31, *p.From)
		assert.Equal(t, 32, *p.To)
	})

	t.Run("beyond the end", func(t *testing.T) {
		p := NewPage([]int{}, PageRequest{Page: 9, PerPage: 10}, 12)
		assert.Equal(t, 2, p.LastPage)
		assert.Nil(t, p.From)
	})
}

func TestAdditionStoreLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	s := NewAdditionStore(db)
	ctx := context.Background()

	addition := &model.Addition{Name: "Meal Allowance"}
	require.NoError(t, s.Create(ctx, addition))
	assert.NotZero(t, addition.ID)

	updated := &model.Addition{ID: addition.ID, Name: "Transport Allowance"}
	require.NoError(t, s.Update(ctx, updated))

	got, err := s.Get(ctx, addition.ID)
	require.NoError(t, err)
	assert.Equal(t, "Transport Allowance", got.Name)

	require.NoError(t, s.Delete(ctx, addition.ID))
	_, err = s.Get(ctx, addition.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, addition.ID), ErrNotFound)
	assert.ErrorIs(t, s.Update(ctx, updated), ErrNotFound)
}

func TestHolidayStoreFilters(t *testing.T) {
	db := testutil.NewDB(t)
	s := NewHolidayStore(db)
	ctx := context.Background()

	holidays := []*model.Holiday{
		{Name: "New Year", Date: model.NewDate(2024, 1, 1), Type: model.HolidayTypeRegular},
		{Name: "Ninoy Aquino Day", Date: model.NewDate(2024, 8, 21), Type: model.HolidayTypeSpecial},
		{Name: "Christmas", Date: model.NewDate(2024, 12, 25), Type: model.HolidayTypeRegular},
		{Name: "New Year", Date: model.NewDate(2025, 1, 1), Type: model.HolidayTypeRegular},
	}
	for _, h := range holidays {
		require.NoError(t, s.Create(ctx, h))
	}

	page, err := s.List(ctx, HolidayFilter{Year: 2024}, PageRequest{Page: 1, PerPage: 15})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, "2024-01-01", page.Data[0].Date.String())
	assert.Equal(t, "2024-12-25", page.Data[2].Date.String())

	page, err = s.List(ctx, HolidayFilter{Type: model.HolidayTypeSpecial}, PageRequest{Page: 1, PerPage: 15})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Ninoy Aquino Day", page.Data[0].Name)

	page, err = s.List(ctx, HolidayFilter{Year: 2025, Type: model.HolidayTypeRegular}, PageRequest{Page: 1, PerPage: 15})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
}

func TestHolidayStoreUpdate(t *testing.T) {
	s := NewHolidayStore(testutil.NewDB(t))
	ctx := context.Background()

	h := factory.Holiday()
	require.NoError(t, s.Create(ctx, h))

	replacement := &model.Holiday{ID: h.ID, Name: "Labor Day", Date: model.NewDate(2024, 5, 1), Type: model.HolidayTypeRegular}
	require.NoError(t, s.Update(ctx, replacement))

	got, err := s.Get(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Labor Day", got.Name)
	assert.Equal(t, "2024-05-01", got.Date.String())
	assert.Equal(t, model.HolidayTypeRegular, got.Type)
}

func TestInventoryStoreLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	s := NewInventoryStore(db)
	ctx := context.Background()

	item := factory.InventoryItem()
	require.NoError(t, s.Create(ctx, item, &model.InventoryStock{}))
	require.NotNil(t, item.InventoryStock)
	assert.Equal(t, item.ID, item.InventoryStock.InventoryItemID)

	// replacing the item without stock keeps the stored stock
	replacement := factory.InventoryItem()
	replacement.ID = item.ID
	require.NoError(t, s.Update(ctx, replacement, nil))
	require.NotNil(t, replacement.InventoryStock)
	assert.Equal(t, item.InventoryStock.ID, replacement.InventoryStock.ID)

	stock := &model.InventoryStock{QuantityOnHand: 40, QuantityReserved: 5, ReorderLevel: 10}
	again := factory.InventoryItem()
	again.ID = item.ID
	require.NoError(t, s.Update(ctx, again, stock))

	got, err := s.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, again.SKU, got.SKU)
	assert.Equal(t, 40.0, got.InventoryStock.QuantityOnHand)
	assert.Equal(t, 35.0, got.InventoryStock.Available())
	assert.EqualValues(t, 1, testutil.Count(t, db, &model.InventoryStock{}))

	deleted, err := s.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, again.SKU, deleted.SKU)
	assert.EqualValues(t, 0, testutil.Count(t, db, &model.InventoryItem{}))
	assert.EqualValues(t, 0, testutil.Count(t, db, &model.InventoryStock{}))

	_, err = s.Delete(ctx, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInventoryStoreListByStatus(t *testing.T) {
	s := NewInventoryStore(testutil.NewDB(t))
	ctx := context.Background()

	for _, status := range []string{"ACTIVE", "ACTIVE", "DISCONTINUED"} {
		item := factory.InventoryItem()
		item.Status = status
		require.NoError(t, s.Create(ctx, item, factory.InventoryStock()))
	}

	page, err := s.List(ctx, InventoryFilter{Status: "ACTIVE"}, PageRequest{Page: 1, PerPage: 15})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	for _, item := range page.Data {
		assert.NotNil(t, item.InventoryStock)
	}

	all, err := s.All(ctx, InventoryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
