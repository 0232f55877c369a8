package service

import (
	"time"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/nthnyvllflrs/ascent-erp/internal/validation"
)

// CompensationInput is the request body for a compensation. Numbers are
// pointers so that an absent value fails "required" while zero passes.
type CompensationInput struct {
	DailyRate                *float64 `json:"daily_rate" validate:"required,gte=0"`
	DailyWorkingHours        *float64 `json:"daily_working_hours" validate:"required,gte=0,lte=24"`
	OvertimeMultiplier       *float64 `json:"overtime_multiplier" validate:"required,gte=0"`
	HolidayMultiplier        *float64 `json:"holiday_multiplier" validate:"required,gte=0"`
	SpecialHolidayMultiplier *float64 `json:"special_holiday_multiplier" validate:"required,gte=0"`
	WorkingDays              []string `json:"working_days" validate:"omitempty,unique,dive,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	ShiftStartTime           string   `json:"shift_start_time" validate:"required,datetime=15:04"`
	ShiftEndTime             string   `json:"shift_end_time" validate:"required,datetime=15:04"`
	BreakStartTime           string   `json:"break_start_time" validate:"required,datetime=15:04"`
	BreakEndTime             string   `json:"break_end_time" validate:"required,datetime=15:04"`
	LateGracePeriod          *float64 `json:"late_grace_period" validate:"required,gte=0"`
}

// Compensation converts a validated input to an unsaved record
func (in CompensationInput) Compensation() *model.Compensation {
	days := in.WorkingDays
	if days == nil {
		days = []string{}
	}
	return &model.Compensation{
		DailyRate:                deref(in.DailyRate),
		DailyWorkingHours:        deref(in.DailyWorkingHours),
		OvertimeMultiplier:       deref(in.OvertimeMultiplier),
		HolidayMultiplier:        deref(in.HolidayMultiplier),
		SpecialHolidayMultiplier: deref(in.SpecialHolidayMultiplier),
		WorkingDays:              days,
		ShiftStartTime:           in.ShiftStartTime,
		ShiftEndTime:             in.ShiftEndTime,
		BreakStartTime:           in.BreakStartTime,
		BreakEndTime:             in.BreakEndTime,
		LateGracePeriod:          deref(in.LateGracePeriod),
	}
}

// EmployeeInput is the flat request body of an employee and its compensation
type EmployeeInput struct {
	Firstname                    string  `json:"firstname" validate:"required,max=255"`
	Lastname                     string  `json:"lastname" validate:"required,max=255"`
	Email                        string  `json:"email" validate:"required,email,max=255"`
	MobileNumber                 string  `json:"mobile_number" validate:"required,max=50"`
	TelephoneNumber              string  `json:"telephone_number" validate:"required,max=50"`
	Address                      string  `json:"address" validate:"required"`
	Birthday                     string  `json:"birthday" validate:"required,datetime=2006-01-02"`
	EmergencyContactName         string  `json:"emergency_contact_name" validate:"required,max=255"`
	EmergencyContactNumber       string  `json:"emergency_contact_number" validate:"required,max=50"`
	EmergencyContactRelationship string  `json:"emergency_contact_relationship" validate:"required,max=100"`
	JobTitle                     string  `json:"job_title" validate:"required,max=255"`
	Department                   string  `json:"department" validate:"required,max=255"`
	EmploymentStatus             string  `json:"employment_status" validate:"required,max=100"`
	DateHired                    string  `json:"date_hired" validate:"required,datetime=2006-01-02"`
	DateRegularized              *string `json:"date_regularized" validate:"omitempty,datetime=2006-01-02"`
	DateResigned                 *string `json:"date_resigned" validate:"omitempty,datetime=2006-01-02"`
	DateTerminated               *string `json:"date_terminated" validate:"omitempty,datetime=2006-01-02"`

	CompensationInput
}

// Employee converts a validated input to an unsaved employee. Unparseable
// dates are reported as field errors.
func (in EmployeeInput) Employee() (*model.Employee, error) {
	verr := &validation.Error{}

	parse := func(field, value string) model.Date {
		d, err := model.ParseDate(value)
		if err != nil {
			verr.Add(field, "The "+field+" field must be a valid date in YYYY-MM-DD format.")
		}
		return d
	}
	parseOptional := func(field string, value *string) *model.Date {
		d, err := model.ParseOptionalDate(value)
		if err != nil {
			verr.Add(field, "The "+field+" field must be a valid date in YYYY-MM-DD format.")
		}
		return d
	}

	employee := &model.Employee{
		Firstname:                    in.Firstname,
		Lastname:                     in.Lastname,
		Email:                        in.Email,
		MobileNumber:                 in.MobileNumber,
		TelephoneNumber:              in.TelephoneNumber,
		Address:                      in.Address,
		Birthday:                     parse("birthday", in.Birthday),
		EmergencyContactName:         in.EmergencyContactName,
		EmergencyContactNumber:       in.EmergencyContactNumber,
		EmergencyContactRelationship: in.EmergencyContactRelationship,
		JobTitle:                     in.JobTitle,
		Department:                   in.Department,
		EmploymentStatus:             in.EmploymentStatus,
		DateHired:                    parse("date_hired", in.DateHired),
		DateRegularized:              parseOptional("date_regularized", in.DateRegularized),
		DateResigned:                 parseOptional("date_resigned", in.DateResigned),
		DateTerminated:               parseOptional("date_terminated", in.DateTerminated),
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return employee, nil
}

// AdditionInput is the request body of an addition
type AdditionInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// HolidayInput is the request body of a holiday
type HolidayInput struct {
	Name string `json:"name" validate:"required,max=255"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Type string `json:"type" validate:"required,oneof=REGULAR SPECIAL"`
}

// Holiday converts a validated input to an unsaved holiday
func (in HolidayInput) Holiday() (*model.Holiday, error) {
	date, err := model.ParseDate(in.Date)
	if err != nil {
		return nil, validation.Field("date", "The date field must be a valid date in YYYY-MM-DD format.")
	}
	return &model.Holiday{Name: in.Name, Date: date, Type: in.Type}, nil
}

// InventoryStockInput is the optional stock part of an inventory item body
type InventoryStockInput struct {
	QuantityOnHand   float64 `json:"quantity_on_hand" validate:"gte=0"`
	QuantityReserved float64 `json:"quantity_reserved" validate:"gte=0"`
	ReorderLevel     float64 `json:"reorder_level" validate:"gte=0"`
	LastCountedAt    *string `json:"last_counted_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// InventoryItemInput is the request body of an inventory item
type InventoryItemInput struct {
	SKU            string               `json:"sku" validate:"required,max=100"`
	Name           string               `json:"name" validate:"required,max=255"`
	Description    string               `json:"description"`
	UnitOfMeasure  string               `json:"unit_of_measure" validate:"max=50"`
	Price          *float64             `json:"price" validate:"omitempty,gte=0"`
	Location       string               `json:"location" validate:"max=255"`
	Status         string               `json:"status" validate:"max=50"`
	Image          string               `json:"image"`
	Notes          string               `json:"notes"`
	InventoryStock *InventoryStockInput `json:"inventory_stock" validate:"omitempty"`
}

// Item converts a validated input to an unsaved item and, when the body
// carries one, its stock. An unparseable last_counted_at is a field error.
func (in InventoryItemInput) Item() (*model.InventoryItem, *model.InventoryStock, error) {
	item := &model.InventoryItem{
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		UnitOfMeasure: in.UnitOfMeasure,
		Price:         in.Price,
		Location:      in.Location,
		Status:        in.Status,
		Image:         in.Image,
		Notes:         in.Notes,
	}
	if in.InventoryStock == nil {
		return item, nil, nil
	}

	var counted *time.Time
	if v := in.InventoryStock.LastCountedAt; v != nil && *v != "" {
		t, err := time.Parse(time.RFC3339, *v)
		if err != nil {
			return nil, nil, validation.Field("inventory_stock.last_counted_at",
				"The last counted at field must be a valid RFC 3339 timestamp.")
		}
		counted = &t
	}
	return item, &model.InventoryStock{
		QuantityOnHand:   in.InventoryStock.QuantityOnHand,
		QuantityReserved: in.InventoryStock.QuantityReserved,
		ReorderLevel:     in.InventoryStock.ReorderLevel,
		LastCountedAt:    counted,
	}, nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
