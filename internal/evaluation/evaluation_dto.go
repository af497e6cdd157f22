package evaluation

type CreateEvaluationRequest struct {
	EmployeeID        string  `json:"employeeId" binding:"required"`
	Year              int     `json:"year" binding:"required"`
	ScoreProfessional float64 `json:"scoreProfessional" binding:"min=0,max=10"`
	ScoreAttitude     float64 `json:"scoreAttitude" binding:"min=0,max=10"`
	ScoreDiscipline   float64 `json:"scoreDiscipline" binding:"min=0,max=10"`
	Rank              string  `json:"rank"`
	RewardProposal    string  `json:"rewardProposal"`
	RewardTitle       string  `json:"rewardTitle"`
	Notes             string  `json:"notes"`
}

type EvaluationResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employeeId"`
	FullName          string  `json:"fullName"`
	Position          string  `json:"position,omitempty"`
	Year              int     `json:"year"`
	ScoreProfessional float64 `json:"scoreProfessional"`
	ScoreAttitude     float64 `json:"scoreAttitude"`
	ScoreDiscipline   float64 `json:"scoreDiscipline"`
	AverageScore      float64 `json:"averageScore"`
	Rank              string  `json:"rank,omitempty"`
	RewardProposal    string  `json:"rewardProposal,omitempty"`
	RewardTitle       string  `json:"rewardTitle,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}
