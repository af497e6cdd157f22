package shift

import (
	"fmt"
	"time"
)

const (
	CaMorning   = "Sáng"
	CaAfternoon = "Chiều"
	CaNight     = "Đêm"
)

func ValidCa(ca string) bool {
	return ca == CaMorning || ca == CaAfternoon || ca == CaNight
}

// ShiftID is deterministic over (weekStart, ca) so saving a week's plan twice
// overwrites instead of duplicating.
func ShiftID(weekStart, ca string) string {
	return fmt.Sprintf("%s-%s", weekStart, ca)
}

// Shift is one row of the weekly duty roster: who covers each weekday on a
// given half-day (or night) shift. Day cells hold free-text employee names.
type Shift struct {
	ID        string `gorm:"column:id;type:varchar(20);primaryKey"`
	WeekStart string `gorm:"column:week_start;type:varchar(10);not null;index"`
	WeekEnd   string `gorm:"column:week_end;type:varchar(10);not null"`
	Ca        string `gorm:"column:ca;type:varchar(10);not null"`
	Mon       string `gorm:"column:mon;type:text"`
	Tue       string `gorm:"column:tue;type:text"`
	Wed       string `gorm:"column:wed;type:text"`
	Thu       string `gorm:"column:thu;type:text"`
	Fri       string `gorm:"column:fri;type:text"`
	Sat       string `gorm:"column:sat;type:text"`
	Sun       string `gorm:"column:sun;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Shift) TableName() string {
	return "duty_shifts"
}
