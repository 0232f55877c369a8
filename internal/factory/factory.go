// Package factory builds fake but valid records for tests and seeding.
package factory

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nthnyvllflrs/ascent-erp/internal/model"
)

var (
	relationships      = []string{"Spouse", "Parent", "Sibling", "Child", "Friend"}
	employmentStatuses = []string{"PROBATIONARY", "REGULAR", "CONTRACTUAL", "PART_TIME"}
	unitsOfMeasure     = []string{"pc", "box", "kg", "l", "m", "pack"}
	itemStatuses       = []string{"ACTIVE", "INACTIVE", "DISCONTINUED"}
)

// Employee returns an unsaved employee without compensation
func Employee() *model.Employee {
	now := time.Now()
	return &model.Employee{
		Firstname:                    gofakeit.FirstName(),
		Lastname:                     gofakeit.LastName(),
		Email:                        strings.ToLower(gofakeit.Email()),
		MobileNumber:                 gofakeit.Phone(),
		TelephoneNumber:              gofakeit.Phone(),
		Address:                      gofakeit.Street() + ", " + gofakeit.City(),
		Birthday:                     model.DateOf(gofakeit.DateRange(now.AddDate(-60, 0, 0), now.AddDate(-18, 0, 0))),
		EmergencyContactName:         gofakeit.Name(),
		EmergencyContactNumber:       gofakeit.Phone(),
		EmergencyContactRelationship: gofakeit.RandomString(relationships),
		JobTitle:                     gofakeit.JobTitle(),
		Department:                   gofakeit.RandomString([]string{"Finance", "Operations", "Sales", "HR", "IT"}),
		EmploymentStatus:             gofakeit.RandomString(employmentStatuses),
		DateHired:                    model.DateOf(gofakeit.DateRange(now.AddDate(-10, 0, 0), now)),
	}
}

// Compensation returns an unsaved compensation with a day shift schedule
func Compensation() *model.Compensation {
	start := gofakeit.Number(6, 10)
	return &model.Compensation{
		DailyRate:                float64(gofakeit.Number(400, 2500)),
		DailyWorkingHours:        8,
		OvertimeMultiplier:       1.25,
		HolidayMultiplier:        2,
		SpecialHolidayMultiplier: 1.3,
		WorkingDays:              []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"},
		ShiftStartTime:           fmt.Sprintf("%02d:00", start),
		ShiftEndTime:             fmt.Sprintf("%02d:00", start+9),
		BreakStartTime:           fmt.Sprintf("%02d:00", start+4),
		BreakEndTime:             fmt.Sprintf("%02d:00", start+5),
		LateGracePeriod:          float64(gofakeit.Number(0, 15)),
	}
}

// Addition returns an unsaved addition
func Addition() *model.Addition {
	return &model.Addition{
		Name: gofakeit.RandomString([]string{"Meal", "Transport", "Rice", "Clothing", "Communication"}) + " Allowance",
	}
}

// Holiday returns an unsaved holiday of a random type
func Holiday() *model.Holiday {
	return &model.Holiday{
		Name: gofakeit.Name(),
		Date: model.DateOf(gofakeit.Date()),
		Type: gofakeit.RandomString(model.HolidayTypes),
	}
}

// InventoryItem returns an unsaved item without stock
func InventoryItem() *model.InventoryItem {
	price := gofakeit.Price(1, 5000)
	return &model.InventoryItem{
		SKU:           strings.ToUpper(gofakeit.LetterN(3)) + "-" + gofakeit.DigitN(6),
		Name:          gofakeit.ProductName(),
		Description:   words(10),
		UnitOfMeasure: gofakeit.RandomString(unitsOfMeasure),
		Price:         &price,
		Location:      fmt.Sprintf("Aisle %d, Bin %d", gofakeit.Number(1, 30), gofakeit.Number(1, 99)),
		Status:        gofakeit.RandomString(itemStatuses),
		Image:         gofakeit.URL(),
		Notes:         words(6),
	}
}

// InventoryStock returns an unsaved stock record
func InventoryStock() *model.InventoryStock {
	onHand := float64(gofakeit.Number(0, 500))
	return &model.InventoryStock{
		QuantityOnHand:   onHand,
		QuantityReserved: float64(gofakeit.Number(0, int(onHand))),
		ReorderLevel:     float64(gofakeit.Number(0, 50)),
	}
}

func words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = gofakeit.Word()
	}
	return strings.Join(w, " ")
}
