package proposal

import (
	"fmt"
	"time"
)

const (
	StatusPending  = "Chờ duyệt"
	StatusApproved = "Đã duyệt"
	StatusRejected = "Từ chối"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func NewProposalID(at time.Time) string {
	return fmt.Sprintf("P-%d", at.UnixMilli())
}

type Proposal struct {
	ID             string `gorm:"column:id;type:varchar(30);primaryKey"`
	Date           string `gorm:"column:date;type:varchar(10);not null;index"`
	ProposalNumber string `gorm:"column:proposal_number;type:varchar(50)"`
	Title          string `gorm:"column:title;type:varchar(255);not null"`
	Content        string `gorm:"column:content;type:text"`
	Submitter      string `gorm:"column:submitter;type:varchar(255)"`
	Status         string `gorm:"column:status;type:varchar(20);not null"`
	FileURL        string `gorm:"column:file_url;type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Proposal) TableName() string {
	return "proposals"
}
