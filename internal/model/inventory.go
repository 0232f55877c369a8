package model

import "time"

// InventoryItem is a catalog entry
type InventoryItem struct {
	ID             uint            `json:"id" gorm:"primarykey"`
	SKU            string          `json:"sku" gorm:"type:varchar(100);index;not null"`
	Name           string          `json:"name" gorm:"type:varchar(255);not null"`
	Description    string          `json:"description" gorm:"type:text"`
	UnitOfMeasure  string          `json:"unit_of_measure" gorm:"type:varchar(50)"`
	Price          *float64        `json:"price"`
	Location       string          `json:"location" gorm:"type:varchar(255)"`
	Status         string          `json:"status" gorm:"type:varchar(50);index"`
	Image          string          `json:"image" gorm:"type:text"`
	Notes          string          `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	InventoryStock *InventoryStock `json:"inventory_stock" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// InventoryStock tracks the quantities of exactly one item
type InventoryStock struct {
	ID               uint       `json:"id" gorm:"primarykey"`
	InventoryItemID  uint       `json:"inventory_item_id" gorm:"uniqueIndex;not null"`
	QuantityOnHand   float64    `json:"quantity_on_hand" gorm:"not null;default:0"`
	QuantityReserved float64    `json:"quantity_reserved" gorm:"not null;default:0"`
	ReorderLevel     float64    `json:"reorder_level" gorm:"not null;default:0"`
	LastCountedAt    *time.Time `json:"last_counted_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Available is the quantity on hand that is not reserved
func (s InventoryStock) Available() float64 {
	return s.QuantityOnHand - s.QuantityReserved
}
