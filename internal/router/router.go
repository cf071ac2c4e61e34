package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateCourse(c *ginext.Context)
	GetCourse(c *ginext.Context)
	ListCourses(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	GetCourseBookings(c *ginext.Context)
	BookCourse(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListPending(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	StaffCancelBooking(c *ginext.Context)
	MarkAttendance(c *ginext.Context)
	CreateMember(c *ginext.Context)
	ListMembers(c *ginext.Context)
	GetMember(c *ginext.Context)
	UpdateMemberStatus(c *ginext.Context)
	IssueCard(c *ginext.Context)
	ListMemberCards(c *ginext.Context)
	GetMemberBookings(c *ginext.Context)
}

// InitRouter registers the API. writeLimit, if set, guards the endpoints that mutate bookings.
func InitRouter(mode string, h Handler, writeLimit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")

	// booking writes share the rate limit
	writes := api.Group("")
	if writeLimit != nil {
		writes.Use(writeLimit)
	}

	{
		// Courses
		api.POST("/courses", h.CreateCourse)
		api.GET("/courses", h.ListCourses)
		api.GET("/courses/:id", h.GetCourse)
		api.GET("/courses/:id/availability", h.GetAvailability)
		api.GET("/courses/:id/bookings", h.GetCourseBookings)
		writes.POST("/courses/:id/book", h.BookCourse)

		// Bookings
		api.GET("/bookings/pending", h.ListPending)
		api.GET("/bookings/:id", h.GetBooking)
		writes.POST("/bookings/:id/confirm", h.ConfirmBooking)
		writes.POST("/bookings/:id/cancel", h.CancelBooking)
		writes.POST("/bookings/:id/staff-cancel", h.StaffCancelBooking)
		writes.POST("/bookings/:id/attend", h.MarkAttendance)

		// Members
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)
		api.GET("/members/:id", h.GetMember)
		api.PATCH("/members/:id/status", h.UpdateMemberStatus)
		api.POST("/members/:id/cards", h.IssueCard)
		api.GET("/members/:id/cards", h.ListMemberCards)
		api.GET("/members/:id/bookings", h.GetMemberBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
