package settlement

type GenerateRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

type MarkPaidRequest struct {
	PaymentReference string `json:"payment_reference" binding:"required"`
}
