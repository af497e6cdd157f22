package employee

import (
	"time"

	"gorm.io/gorm"
)

// Employment status values as stored in the roster (Vietnamese labels are the
// canonical representation, matching the existing data).
const (
	StatusActive     = "Đang làm việc"
	StatusOnLeave    = "Nghỉ thai sản"
	StatusTerminated = "Đã nghỉ việc"
)

type Employee struct {
	ID               string `gorm:"column:id;type:varchar(20);primaryKey"` // NV001, NV002, ...
	FullName         string `gorm:"column:full_name;type:varchar(255);not null"`
	DOB              string `gorm:"column:dob;type:varchar(10)"`
	Gender           string `gorm:"column:gender;type:varchar(10)"`
	Position         string `gorm:"column:position;type:varchar(100)"`
	Qualification    string `gorm:"column:qualification;type:varchar(100)"`
	Phone            string `gorm:"column:phone;type:varchar(20)"`
	Email            string `gorm:"column:email;type:varchar(255)"`
	ContractDate     string `gorm:"column:contract_date;type:varchar(10)"`
	JoinDate         string `gorm:"column:join_date;type:varchar(10)"`
	Hometown         string `gorm:"column:hometown;type:varchar(255)"`
	PermanentAddress string `gorm:"column:permanent_address;type:varchar(255)"`
	IDCardNumber     string `gorm:"column:id_card_number;type:varchar(20)"`
	IDCardDate       string `gorm:"column:id_card_date;type:varchar(10)"`
	IDCardPlace      string `gorm:"column:id_card_place;type:varchar(255)"`
	Status           string `gorm:"column:status;type:varchar(50);not null;default:'Đang làm việc'"`
	AvatarURL        string `gorm:"column:avatar_url;type:text"`
	FileURL          string `gorm:"column:file_url;type:text"`
	Notes            string `gorm:"column:notes;type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
