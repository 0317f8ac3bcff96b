package catalog

type RoomInput struct {
	RoomID        string  `json:"room_id" binding:"required"`
	Type          string  `json:"type" binding:"required,oneof=single double triple dormitory"`
	PricePerMonth float64 `json:"price_per_month" binding:"required,gt=0"`
	Capacity      int     `json:"capacity" binding:"required,gt=0"`
	Availability  int     `json:"availability_count"`
}

type CreateHostelRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	Type        string      `json:"type" binding:"required,oneof=boys girls pg co-living travelers student"`
	Street      string      `json:"street"`
	Area        string      `json:"area"`
	City        string      `json:"city" binding:"required"`
	State       string      `json:"state"`
	Pincode     string      `json:"pincode"`
	Phone       string      `json:"phone" binding:"required"`
	Email       string      `json:"email"`
	Amenities   []string    `json:"amenities"`
	Rooms       []RoomInput `json:"rooms" binding:"required,min=1,dive"`
}

type SearchQuery struct {
	City     string  `form:"city"`
	Area     string  `form:"area"`
	Type     string  `form:"type"`
	MinPrice float64 `form:"min_price"`
	MaxPrice float64 `form:"max_price"`
	Verified *bool   `form:"verified"`
	Page     int     `form:"page,default=1"`
	Limit    int     `form:"limit,default=20"`
}
