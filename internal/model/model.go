package model

// All returns every persisted model, in dependency order, for migrations
func All() []interface{} {
	return []interface{}{
		&Employee{},
		&Compensation{},
		&Addition{},
		&Holiday{},
		&InventoryItem{},
		&InventoryStock{},
	}
}
