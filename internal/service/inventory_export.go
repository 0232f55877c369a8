package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/nthnyvllflrs/ascent-erp/internal/store"
	"github.com/xuri/excelize/v2"
)

// ExportSheet is the worksheet holding exported inventory rows
const ExportSheet = "Inventory"

var exportHeader = []interface{}{
	"ID", "SKU", "Name", "Description", "Unit of Measure", "Price", "Location", "Status",
	"Quantity on Hand", "Quantity Reserved", "Available", "Reorder Level", "Last Counted At",
}

// Export renders every item matching filter, with its stock, as an xlsx
// workbook. A non-empty creator is written to the document properties.
func (s *InventoryService) Export(ctx context.Context, filter store.InventoryFilter, creator string) (*bytes.Buffer, error) {
	done := s.metrics.TrackDBOperation("query")
	start := time.Now()
	items, err := s.store.All(ctx, filter)
	done(start)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}
	if creator != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Creator: creator, Title: "Inventory items"}); err != nil {
			return nil, fmt.Errorf("set document properties: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetSheetRow(ExportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
	if err := f.SetCellStyle(ExportSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, item := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := exportRow(item)
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func exportRow(item model.InventoryItem) []interface{} {
	var price interface{} = ""
	if item.Price != nil {
		price = *item.Price
	}

	stock := model.InventoryStock{}
	if item.InventoryStock != nil {
		stock = *item.InventoryStock
	}
	var counted interface{} = ""
	if stock.LastCountedAt != nil {
		counted = stock.LastCountedAt.UTC().Format(time.RFC3339)
	}

	return []interface{}{
		item.ID, item.SKU, item.Name, item.Description, item.UnitOfMeasure, price, item.Location, item.Status,
		stock.QuantityOnHand, stock.QuantityReserved, stock.Available(), stock.ReorderLevel, counted,
	}
}
