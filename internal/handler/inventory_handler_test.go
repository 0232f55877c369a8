package handler_test

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/nthnyvllflrs/ascent-erp/internal/service"
	"github.com/nthnyvllflrs/ascent-erp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestStoreInventoryItemWithoutStockCreatesZeroStock(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodPost, "/api/inventory/items/store", map[string]interface{}{
		"sku": "CBL-UTP-305", "name": "UTP Cable Cat6", "unit_of_measure": "box", "price": 5400,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var item model.InventoryItem
	decode(t, rec, &item)
	require.NotNil(t, item.InventoryStock)
	assert.Equal(t, item.ID, item.InventoryStock.InventoryItemID)
	assert.Equal(t, 0.0, item.InventoryStock.QuantityOnHand)
	assert.Equal(t, 0.0, item.InventoryStock.QuantityReserved)
	assert.EqualValues(t, 1, testutil.Count(t, a.db, &model.InventoryStock{}))

	rec = a.do(t, http.MethodDelete, fmt.Sprintf("/api/inventory/items/destroy/%d", item.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.EqualValues(t, 0, testutil.Count(t, a.db, &model.InventoryItem{}))
	assert.EqualValues(t, 0, testutil.Count(t, a.db, &model.InventoryStock{}))
}

func TestUpdateInventoryItem(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodPost, "/api/inventory/items/store", map[string]interface{}{
		"sku": "GLV-NIT-M", "name": "Nitrile Gloves M",
		"inventory_stock": map[string]interface{}{"quantity_on_hand": 50, "reorder_level": 20},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var item model.InventoryItem
	decode(t, rec, &item)
	path := fmt.Sprintf("/api/inventory/items/update/%d", item.ID)

	// without inventory_stock the stock is left alone
	rec = a.do(t, http.MethodPut, path, map[string]interface{}{
		"sku": "GLV-NIT-M", "name": "Nitrile Gloves Medium", "status": "ACTIVE",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &item)
	assert.Equal(t, "Nitrile Gloves Medium", item.Name)
	assert.Nil(t, item.Price)
	assert.Equal(t, 50.0, item.InventoryStock.QuantityOnHand)

	rec = a.do(t, http.MethodPut, path, map[string]interface{}{
		"sku": "GLV-NIT-M", "name": "Nitrile Gloves Medium",
		"inventory_stock": map[string]interface{}{"quantity_on_hand": 35, "quantity_reserved": 5},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/items/show/%d", item.ID), nil)
	decode(t, rec, &item)
	assert.Equal(t, 35.0, item.InventoryStock.QuantityOnHand)
	assert.Equal(t, 0.0, item.InventoryStock.ReorderLevel)
	assert.Equal(t, "", item.Status)
	assert.EqualValues(t, 1, testutil.Count(t, a.db, &model.InventoryStock{}))

	rec = a.do(t, http.MethodGet, "/api/inventory/items/show/404", nil)
	assert.JSONEq(t, `{"message":"Inventory item not found"}`, rec.Body.String())
}

func TestInventoryItemValidation(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodPost, "/api/inventory/items/store", map[string]interface{}{
		"price":           -1,
		"inventory_stock": map[string]interface{}{"quantity_on_hand": -3},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body validationBody
	decode(t, rec, &body)
	for _, field := range []string{"sku", "name", "price", "inventory_stock.quantity_on_hand"} {
		assert.Contains(t, body.Errors, field)
	}
	assert.EqualValues(t, 0, testutil.Count(t, a.db, &model.InventoryItem{}))
}

func TestInventoryStockLastCountedAt(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodPost, "/api/inventory/items/store", map[string]interface{}{
		"sku": "MSK-N95", "name": "N95 Mask",
		"inventory_stock": map[string]interface{}{"quantity_on_hand": 200, "last_counted_at": "yesterday"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	var body validationBody
	decode(t, rec, &body)
	assert.Contains(t, body.Errors, "inventory_stock.last_counted_at")
	assert.EqualValues(t, 0, testutil.Count(t, a.db, &model.InventoryItem{}))

	rec = a.do(t, http.MethodPost, "/api/inventory/items/store", map[string]interface{}{
		"sku": "MSK-N95", "name": "N95 Mask",
		"inventory_stock": map[string]interface{}{"quantity_on_hand": 200, "last_counted_at": "2024-06-30T17:00:00+08:00"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var item model.InventoryItem
	decode(t, rec, &item)
	require.NotNil(t, item.InventoryStock.LastCountedAt)
	assert.True(t, time.Date(2024, 6, 30, 9, 0, 0, 0, time.UTC).Equal(*item.InventoryStock.LastCountedAt))
}

func TestInventoryIndexAndExport(t *testing.T) {
	a := newApp(t)
	for _, in := range []service.InventoryItemInput{
		{SKU: "TNR-05A", Name: "Toner 05A", Status: "ACTIVE"},
		{SKU: "TNR-12A", Name: "Toner 12A", Status: "DISCONTINUED"},
		{SKU: "PPR-LGL", Name: "Legal Paper", Status: "ACTIVE"},
	} {
		rec := a.do(t, http.MethodPost, "/api/inventory/items/store", in)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := a.do(t, http.MethodGet, "/api/inventory/items/index?status=ACTIVE", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page pageBody[model.InventoryItem]
	decode(t, rec, &page)
	require.Len(t, page.Data, 2)
	for _, item := range page.Data {
		assert.NotNil(t, item.InventoryStock)
	}

	rec = a.do(t, http.MethodGet, "/api/inventory/items/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "inventory_items_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(service.ExportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "hr@example.com", props.Creator)
}
