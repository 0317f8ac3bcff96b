package review

type SubmitReviewRequest struct {
	HostelID int64  `json:"hostel_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}
