package recurring

type CloseDatesRequest struct {
	HostelID int64    `json:"hostel_id" binding:"required"`
	RoomID   string   `json:"room_id" binding:"required"`
	Dates    []string `json:"dates" binding:"required,min=1"`
	Reason   string   `json:"reason"`
}

type ClosedDatesQuery struct {
	HostelID int64  `form:"hostel_id" binding:"required"`
	RoomID   string `form:"room_id"`
}

// ReminderReport is what one reminder sweep did.
type ReminderReport struct {
	RemindersSent int `json:"reminders_sent"`
	MarkedOverdue int `json:"marked_overdue"`
}
