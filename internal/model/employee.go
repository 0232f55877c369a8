package model

import "time"

// Employee holds the identity, contact and employment details of a person on payroll
type Employee struct {
	ID                           uint          `json:"id" gorm:"primarykey"`
	Firstname                    string        `json:"firstname" gorm:"type:varchar(255);not null"`
	Lastname                     string        `json:"lastname" gorm:"type:varchar(255);not null"`
	Email                        string        `json:"email" gorm:"type:varchar(255);not null"`
	MobileNumber                 string        `json:"mobile_number" gorm:"type:varchar(50)"`
	TelephoneNumber              string        `json:"telephone_number" gorm:"type:varchar(50)"`
	Address                      string        `json:"address" gorm:"type:text"`
	Birthday                     Date          `json:"birthday"`
	EmergencyContactName         string        `json:"emergency_contact_name" gorm:"type:varchar(255)"`
	EmergencyContactNumber       string        `json:"emergency_contact_number" gorm:"type:varchar(50)"`
	EmergencyContactRelationship string        `json:"emergency_contact_relationship" gorm:"type:varchar(100)"`
	JobTitle                     string        `json:"job_title" gorm:"type:varchar(255)"`
	Department                   string        `json:"department" gorm:"type:varchar(255)"`
	EmploymentStatus             string        `json:"employment_status" gorm:"type:varchar(100)"`
	DateHired                    Date          `json:"date_hired"`
	DateRegularized              *Date         `json:"date_regularized"`
	DateResigned                 *Date         `json:"date_resigned"`
	DateTerminated               *Date         `json:"date_terminated"`
	CreatedAt                    time.Time     `json:"created_at"`
	UpdatedAt                    time.Time     `json:"updated_at"`
	Compensation                 *Compensation `json:"compensation" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Compensation holds the pay rate and work schedule of exactly one employee
type Compensation struct {
	ID                       uint      `json:"id" gorm:"primarykey"`
	EmployeeID               uint      `json:"employee_id" gorm:"uniqueIndex;not null"`
	DailyRate                float64   `json:"daily_rate" gorm:"not null"`
	DailyWorkingHours        float64   `json:"daily_working_hours" gorm:"not null"`
	OvertimeMultiplier       float64   `json:"overtime_multiplier" gorm:"not null"`
	HolidayMultiplier        float64   `json:"holiday_multiplier" gorm:"not null"`
	SpecialHolidayMultiplier float64   `json:"special_holiday_multiplier" gorm:"not null"`
	WorkingDays              []string  `json:"working_days" gorm:"type:text;serializer:json"`
	ShiftStartTime           string    `json:"shift_start_time" gorm:"type:varchar(5);not null"`
	ShiftEndTime             string    `json:"shift_end_time" gorm:"type:varchar(5);not null"`
	BreakStartTime           string    `json:"break_start_time" gorm:"type:varchar(5);not null"`
	BreakEndTime             string    `json:"break_end_time" gorm:"type:varchar(5);not null"`
	LateGracePeriod          float64   `json:"late_grace_period" gorm:"not null;comment:'minutes'"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// TableName keeps the singular table name used by the HR module
func (Compensation) TableName() string {
	return "compensation"
}

// Weekdays accepted in Compensation.WorkingDays
var Weekdays = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}
