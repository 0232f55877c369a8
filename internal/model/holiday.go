package model

import "time"

// Holiday types
const (
	HolidayTypeRegular = "REGULAR"
	HolidayTypeSpecial = "SPECIAL"
)

// HolidayTypes lists every accepted Holiday.Type
var HolidayTypes = []string{HolidayTypeRegular, HolidayTypeSpecial}

// Holiday is a named calendar date that affects pay multipliers
type Holiday struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Date      Date      `json:"date" gorm:"index;not null"`
	Type      string    `json:"type" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
