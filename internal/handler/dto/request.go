package dto

type CreateCourseRequest struct {
	Title        string `json:"title" binding:"required"`
	InstructorID string `json:"instructor_id" binding:"required"`
	StartsAt     string `json:"starts_at" binding:"required"`
	MaxCapacity  int    `json:"max_capacity" binding:"required,gt=0"`
}

type BookRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
}

type CancelRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
}

type CreateMemberRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type UpdateMemberStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active frozen inactive"`
}

type IssueCardRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}
