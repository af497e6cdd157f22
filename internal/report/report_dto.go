package report

type SaveReportRequest struct {
	ID             string   `json:"id"`
	Date           string   `json:"date" binding:"required"`
	TotalIssued    int      `json:"totalIssued" binding:"min=0"`
	NotReceived    int      `json:"notReceived" binding:"min=0"`
	Reason         string   `json:"reason"`
	ReporterID     string   `json:"reporterId"`
	Department     string   `json:"department"`
	AttachmentURLs []string `json:"attachmentUrls"`
}

type ReportResponse struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	TotalIssued    int      `json:"totalIssued"`
	NotReceived    int      `json:"notReceived"`
	Reason         string   `json:"reason,omitempty"`
	ReporterID     string   `json:"reporterId,omitempty"`
	Department     string   `json:"department,omitempty"`
	AttachmentURLs []string `json:"attachmentUrls,omitempty"`
}
