package report

import (
	"strings"
	"time"
)

// attachmentSeparator joins blob URLs into the single stored column; the
// order of the list is preserved.
const attachmentSeparator = ";"

// Report is a daily prescription hand-off report from a department.
type Report struct {
	ID             string `gorm:"column:id;type:varchar(40);primaryKey"`
	Date           string `gorm:"column:date;type:varchar(10);not null;index"`
	TotalIssued    int    `gorm:"column:total_issued;not null"`
	NotReceived    int    `gorm:"column:not_received;not null"`
	Reason         string `gorm:"column:reason;type:text"`
	ReporterID     string `gorm:"column:reporter_id;type:varchar(20);index"`
	Department     string `gorm:"column:department;type:varchar(255)"`
	AttachmentURLs string `gorm:"column:attachment_urls;type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Report) TableName() string {
	return "prescription_reports"
}

func JoinAttachments(urls []string) string {
	var kept []string
	for _, u := range urls {
		if trimmed := strings.TrimSpace(u); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, attachmentSeparator)
}

func SplitAttachments(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, attachmentSeparator)
}
