package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultPassword is set on accounts provisioned automatically for new
// employees; the owner is expected to change it on first login.
const DefaultPassword = "123456"

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username   string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_users_username"`
	Password   string    `gorm:"type:varchar(255);not null"`
	FullName   string    `gorm:"type:varchar(255);not null"`
	Role       string    `gorm:"type:varchar(20);not null;default:'staff'"`
	EmployeeID string    `gorm:"type:varchar(20);index"`
	IsActive   bool      `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
