package request

type CreateReviewRequest struct {
	CustomerName  string `json:"customerName" validate:"required,min=1"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	ActivityID    string `json:"activityId" validate:"required,uuid4"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Title         string `json:"title" validate:"required,min=1"`
	Comment       string `json:"comment" validate:"required,min=1"`
}

type UpdateReviewApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}
