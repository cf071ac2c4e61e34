package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type CourseSvc interface {
	CreateCourse(ctx context.Context, input domain.CreateCourseInput) (*domain.Course, error)
	GetDetails(ctx context.Context, id string) (*domain.CourseDetails, error)
	List(ctx context.Context) ([]*domain.Course, error)
}

type BookingSvc interface {
	BookCourse(ctx context.Context, memberID, courseID string) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	MemberCancelBooking(ctx context.Context, memberID, bookingID string) (*domain.Booking, error)
	StaffCancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	MarkAttendance(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListBookingsForMember(ctx context.Context, memberID string) ([]*domain.Booking, error)
	ListBookingsForCourse(ctx context.Context, courseID string) ([]*domain.Booking, error)
	ListPending(ctx context.Context) ([]*domain.Booking, error)
	AvailableSlots(ctx context.Context, courseID string) (int, error)
}

type MemberSvc interface {
	Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Member, error)
	IssueCard(ctx context.Context, input domain.IssueCardInput) (*domain.MembershipCard, error)
	ListCards(ctx context.Context, memberID string) ([]*domain.MembershipCard, error)
}

type Handler struct {
	courseService  CourseSvc
	bookingService BookingSvc
	memberService  MemberSvc
}

func NewHandler(courseService CourseSvc, bookingService BookingSvc, memberService MemberSvc) *Handler {
	return &Handler{
		courseService:  courseService,
		bookingService: bookingService,
		memberService:  memberService,
	}
}

// Courses
func (h *Handler) CreateCourse(c *ginext.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		badRequest(c, "invalid starts_at format, expected RFC3339")
		return
	}

	input := domain.CreateCourseInput{
		Title:        req.Title,
		InstructorID: req.InstructorID,
		StartsAt:     startsAt,
		MaxCapacity:  req.MaxCapacity,
	}

	course, err := h.courseService.CreateCourse(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCourseResponse(course))
}

func (h *Handler) GetCourse(c *ginext.Context) {
	id, ok := pathID(c, "course")
	if !ok {
		return
	}

	details, err := h.courseService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourseDetailsResponse(details))
}

func (h *Handler) ListCourses(c *ginext.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.ToCourseResponse(course))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	id, ok := pathID(c, "course")
	if !ok {
		return
	}

	slots, err := h.bookingService.AvailableSlots(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{CourseID: id, AvailableSlots: slots})
}

func (h *Handler) GetCourseBookings(c *ginext.Context) {
	id, ok := pathID(c, "course")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListBookingsForCourse(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// Bookings

func (h *Handler) BookCourse(c *ginext.Context) {
	courseID, ok := pathID(c, "course")
	if !ok {
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	booking, err := h.bookingService.BookCourse(c.Request.Context(), req.MemberID, courseID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListPending(c *ginext.Context) {
	bookings, err := h.bookingService.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.ConfirmBooking)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	booking, err := h.bookingService.MemberCancelBooking(c.Request.Context(), req.MemberID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) StaffCancelBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.StaffCancelBooking)
}

func (h *Handler) MarkAttendance(c *ginext.Context) {
	h.transition(c, h.bookingService.MarkAttendance)
}

func (h *Handler) transition(c *ginext.Context, fn func(ctx context.Context, bookingID string) (*domain.Booking, error)) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	booking, err := fn(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Members

func (h *Handler) CreateMember(c *ginext.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.CreateMemberInput{
		FullName:       req.FullName,
		TelegramChatID: req.TelegramChatID,
	}

	member, err := h.memberService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *Handler) ListMembers(c *ginext.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMember(c *ginext.Context) {
	id, ok := pathID(c, "member")
	if !ok {
		return
	}

	member, err := h.memberService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *Handler) UpdateMemberStatus(c *ginext.Context) {
	id, ok := pathID(c, "member")
	if !ok {
		return
	}

	var req dto.UpdateMemberStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	member, err := h.memberService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *Handler) IssueCard(c *ginext.Context) {
	id, ok := pathID(c, "member")
	if !ok {
		return
	}

	var req dto.IssueCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		badRequest(c, "invalid start_date format, expected YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		badRequest(c, "invalid end_date format, expected YYYY-MM-DD")
		return
	}

	card, err := h.memberService.IssueCard(c.Request.Context(), domain.IssueCardInput{
		MemberID:  id,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

func (h *Handler) ListMemberCards(c *ginext.Context) {
	id, ok := pathID(c, "member")
	if !ok {
		return
	}

	cards, err := h.memberService.ListCards(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, dto.ToCardResponse(card))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMemberBookings(c *ginext.Context) {
	id, ok := pathID(c, "member")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListBookingsForMember(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func pathID(c *ginext.Context, entity string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, "invalid "+entity+" id")
		return "", false
	}
	return id, true
}

func badRequest(c *ginext.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Code: string(domain.KindValidation)})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	kind := domain.KindOf(err)
	resp := dto.ErrorResponse{Error: err.Error(), Code: string(kind)}

	switch kind {
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, resp)

	case domain.KindMembershipInvalid,
		domain.KindDuplicateBooking,
		domain.KindCourseFull,
		domain.KindInvalidTransition,
		domain.KindAlreadyCancelled:
		c.JSON(http.StatusConflict, resp)

	case domain.KindNotOwner:
		c.JSON(http.StatusForbidden, resp)

	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, resp)

	case domain.KindInfrastructure:
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "service temporarily unavailable",
			Code:  string(kind),
		})

	default:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "request cancelled",
				Code:  string(domain.KindInfrastructure),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "internal server error",
			Code:  string(domain.KindInternal),
		})
	}
}
