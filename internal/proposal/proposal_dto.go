package proposal

type SaveProposalRequest struct {
	ID             string `json:"id"`
	Date           string `json:"date" binding:"required"`
	ProposalNumber string `json:"proposalNumber"`
	Title          string `json:"title" binding:"required"`
	Content        string `json:"content"`
	Submitter      string `json:"submitter"`
	Status         string `json:"status"`
	FileURL        string `json:"fileUrl"`
}

type ProposalResponse struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	ProposalNumber string `json:"proposalNumber,omitempty"`
	Title          string `json:"title"`
	Content        string `json:"content,omitempty"`
	Submitter      string `json:"submitter,omitempty"`
	Status         string `json:"status"`
	FileURL        string `json:"fileUrl,omitempty"`
}
