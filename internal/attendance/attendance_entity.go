package attendance

import (
	"fmt"
	"time"
)

const (
	ShiftMorning   = "Sáng"
	ShiftAfternoon = "Chiều"
)

const (
	StatusUnscanned = "Chưa quét"
	StatusPresent   = "Đi làm"
	StatusLate      = "Trễ"
	StatusOnLeave   = "Nghỉ phép"
	StatusSick      = "Nghỉ bệnh"
	StatusOther     = "Khác"
)

// RecordID is deterministic over the slot so committing the same slot twice
// lands on the same row instead of a duplicate.
func RecordID(employeeID, date, shift string) string {
	return fmt.Sprintf("%s-%s-%s", employeeID, date, shift)
}

func ValidShift(shift string) bool {
	return shift == ShiftMorning || shift == ShiftAfternoon
}

func ValidStatus(status string) bool {
	switch status {
	case StatusUnscanned, StatusPresent, StatusLate, StatusOnLeave, StatusSick, StatusOther:
		return true
	default:
		return false
	}
}

type Record struct {
	ID           string `gorm:"column:id;type:varchar(60);primaryKey"`
	EmployeeID   string `gorm:"column:employee_id;type:varchar(20);not null;uniqueIndex:uq_attendance_slot,priority:1"`
	EmployeeName string `gorm:"column:employee_name;type:varchar(255)"`
	Date         string `gorm:"column:date;type:varchar(10);not null;uniqueIndex:uq_attendance_slot,priority:2;index"`
	TimeIn       string `gorm:"column:time_in;type:varchar(8)"`
	Shift        string `gorm:"column:shift;type:varchar(10);not null;uniqueIndex:uq_attendance_slot,priority:3"`
	Status       string `gorm:"column:status;type:varchar(20);not null"`
	Notes        string `gorm:"column:notes;type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Record) TableName() string {
	return "attendance_records"
}
