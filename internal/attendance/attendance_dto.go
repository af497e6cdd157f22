package attendance

type ScanRequest struct {
	Payload string `json:"payload" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

// PendingCheckIn is staged for operator confirmation; nothing is persisted
// until it comes back as a CommitRequest.
type PendingCheckIn struct {
	EmployeeID   string   `json:"employeeId"`
	EmployeeName string   `json:"employeeName"`
	Date         string   `json:"date"`
	Shift        string   `json:"shift"`
	TimeIn       string   `json:"timeIn"`
	Status       string   `json:"status"`
	Notes        string   `json:"notes"`
	Extra        []string `json:"extra,omitempty"`
}

type CommitRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Shift      string `json:"shift" binding:"required"`
	TimeIn     string `json:"timeIn"`
	Status     string `json:"status" binding:"required"`
	Notes      string `json:"notes"`
}

type ManualCheckInRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Shift      string `json:"shift" binding:"required"`
}

type RecordResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
	TimeIn       string `json:"timeIn,omitempty"`
	Shift        string `json:"shift"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
}

type GridCell struct {
	Status string `json:"status"`
	TimeIn string `json:"timeIn,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

type GridRow struct {
	EmployeeID   string   `json:"employeeId"`
	EmployeeName string   `json:"employeeName"`
	Morning      GridCell `json:"morning"`
	Afternoon    GridCell `json:"afternoon"`
}

type SaveGridRequest struct {
	Date string         `json:"date" binding:"required"`
	Rows []GridRowInput `json:"rows" binding:"required"`
}

type GridRowInput struct {
	EmployeeID   string   `json:"employeeId" binding:"required"`
	EmployeeName string   `json:"employeeName"`
	Morning      GridCell `json:"morning"`
	Afternoon    GridCell `json:"afternoon"`
}

type SaveGridResponse struct {
	Saved int `json:"saved"`
}
