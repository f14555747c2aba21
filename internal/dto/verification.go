package dto

type IssueOtpRequest struct {
	Email string `json:"email"`
}

type VerifyOtpRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type DiscountPreviewResponse struct {
	Code           string `json:"code"`
	Status         string `json:"status"`
	DiscountAmount int64  `json:"discountAmount"`
}
