package shift

type SaveShiftRequest struct {
	WeekStart string `json:"weekStart" binding:"required"`
	WeekEnd   string `json:"weekEnd" binding:"required"`
	Ca        string `json:"ca" binding:"required"`
	Mon       string `json:"mon"`
	Tue       string `json:"tue"`
	Wed       string `json:"wed"`
	Thu       string `json:"thu"`
	Fri       string `json:"fri"`
	Sat       string `json:"sat"`
	Sun       string `json:"sun"`
}

type ShiftResponse struct {
	ID        string `json:"id"`
	WeekStart string `json:"weekStart"`
	WeekEnd   string `json:"weekEnd"`
	Ca        string `json:"ca"`
	Mon       string `json:"mon,omitempty"`
	Tue       string `json:"tue,omitempty"`
	Wed       string `json:"wed,omitempty"`
	Thu       string `json:"thu,omitempty"`
	Fri       string `json:"fri,omitempty"`
	Sat       string `json:"sat,omitempty"`
	Sun       string `json:"sun,omitempty"`
}
