package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	txManager   ports.TxManager
	bookingRepo ports.BookingRepo
	eligibility *EligibilityChecker
	capacity    *CapacityTracker
	machine     *BookingStateMachine
	notifier    ports.BookingNotifier
	publisher   ports.EventPublisher
	logger      logger.Logger
	now         func() time.Time
}

type Option func(*BookingService)

// WithClock replaces time.Now, which decides "today" for card validity and stamps bookings.
func WithClock(now func() time.Time) Option {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	txManager ports.TxManager,
	bookingRepo ports.BookingRepo,
	courseRepo ports.CourseRepo,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	logger logger.Logger,
	opts ...Option,
) *BookingService {
	s := &BookingService{
		txManager:   txManager,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.eligibility = NewEligibilityChecker(s.now)
	s.capacity = NewCapacityTracker(courseRepo, bookingRepo)
	s.machine = NewBookingStateMachine(s.now)

	return s
}

// committed carries what a scope read, so side effects run without querying again.
type committed struct {
	booking *domain.Booking
	member  *domain.Member
	course  *domain.Course
}

// BookCourse checks eligibility and capacity and inserts a pending booking as one
// atomic step. On failure nothing is written.
func (s *BookingService) BookCourse(ctx context.Context, memberID, courseID string) (*domain.Booking, error) {
	var res committed

	err := s.txManager.WithinCourse(ctx, courseID, func(ctx context.Context, scope ports.CourseScope) error {
		if err := s.eligibility.CanBook(ctx, scope, memberID); err != nil {
			return err
		}

		slots, err := availableIn(ctx, scope)
		if err != nil {
			return err
		}
		if slots <= 0 {
			return domain.ErrCourseFull
		}

		booking, err := s.machine.Create(ctx, scope, memberID)
		if err != nil {
			return err
		}

		member, err := scope.Member(ctx, memberID)
		if err != nil {
			return fmt.Errorf("get member: %w", err)
		}

		res = committed{booking: booking, member: member, course: scope.Course()}
		return nil
	})
	if err != nil {
		return nil, s.fail("book course", "course_id", courseID, err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", res.booking.ID),
		logger.String("course_id", courseID),
		logger.String("member_id", memberID),
	)
	s.afterCommit(ctx, domain.BookingEventCreated, res)

	return res.booking, nil
}

func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	res, err := s.transition(ctx, bookingID, "", s.machine.Confirm)
	if err != nil {
		return nil, s.fail("confirm booking", "booking_id", bookingID, err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", bookingID),
		logger.String("course_id", res.booking.CourseID),
		logger.String("member_id", res.booking.MemberID),
	)
	s.afterCommit(ctx, domain.BookingEventConfirmed, res)

	return res.booking, nil
}

// MemberCancelBooking cancels on behalf of the member, who must own the booking.
func (s *BookingService) MemberCancelBooking(ctx context.Context, memberID, bookingID string) (*domain.Booking, error) {
	res, err := s.transition(ctx, bookingID, memberID, s.machine.Cancel)
	if err != nil {
		return nil, s.fail("cancel booking", "booking_id", bookingID, err)
	}

	s.logCancelled(res.booking, "member")
	s.afterCommit(ctx, domain.BookingEventCancelled, res)

	return res.booking, nil
}

// StaffCancelBooking cancels without an ownership check.
func (s *BookingService) StaffCancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	res, err := s.transition(ctx, bookingID, "", s.machine.Cancel)
	if err != nil {
		return nil, s.fail("staff cancel booking", "booking_id", bookingID, err)
	}

	s.logCancelled(res.booking, "staff")
	s.afterCommit(ctx, domain.BookingEventCancelled, res)

	return res.booking, nil
}

func (s *BookingService) MarkAttendance(ctx context.Context, bookingID string) (*domain.Booking, error) {
	res, err := s.transition(ctx, bookingID, "", s.machine.MarkAttended)
	if err != nil {
		return nil, s.fail("mark attendance", "booking_id", bookingID, err)
	}

	s.logger.Info("attendance marked",
		logger.String("booking_id", bookingID),
		logger.String("course_id", res.booking.CourseID),
		logger.String("member_id", res.booking.MemberID),
	)
	s.afterCommit(ctx, domain.BookingEventAttended, res)

	return res.booking, nil
}

// CancelStale cancels pending bookings whose course has already started. Each booking
// is cancelled in its own course scope; bookings that changed state meanwhile are skipped.
func (s *BookingService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	stale, err := s.bookingRepo.ListStalePending(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: list stale bookings: %w", domain.ErrInfrastructure, err)
	}

	var cancelled []*domain.Booking
	for _, b := range stale {
		res, err := s.transition(ctx, b.ID, "", s.machine.CancelPending)
		if err != nil {
			if domain.IsBusinessFailure(err) {
				continue
			}
			return cancelled, s.fail("cancel stale booking", "booking_id", b.ID, err)
		}

		cancelled = append(cancelled, res.booking)
		s.afterCommit(ctx, domain.BookingEventCancelled, res)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale pending bookings cancelled",
			logger.Int("count", len(cancelled)),
		)
	}

	return cancelled, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, wrapInfra("get booking", err)
	}
	return b, nil
}

func (s *BookingService) ListBookingsForMember(ctx context.Context, memberID string) ([]*domain.Booking, error) {
	res, err := s.bookingRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, wrapInfra("list member bookings", err)
	}
	return res, nil
}

func (s *BookingService) ListBookingsForCourse(ctx context.Context, courseID string) ([]*domain.Booking, error) {
	res, err := s.bookingRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, wrapInfra("list course bookings", err)
	}
	return res, nil
}

func (s *BookingService) ListPending(ctx context.Context) ([]*domain.Booking, error) {
	res, err := s.bookingRepo.ListPending(ctx)
	if err != nil {
		return nil, wrapInfra("list pending bookings", err)
	}
	return res, nil
}

func (s *BookingService) AvailableSlots(ctx context.Context, courseID string) (int, error) {
	slots, err := s.capacity.AvailableSlots(ctx, courseID)
	if err != nil {
		return 0, wrapInfra("available slots", err)
	}
	return slots, nil
}

type transitionFunc func(ctx context.Context, scope ports.CourseScope, bookingID string) (*domain.Booking, error)

// transition locates the course of the booking and runs fn in that course's scope.
// A non-empty ownerID is checked against the booking before fn runs.
func (s *BookingService) transition(ctx context.Context, bookingID, ownerID string, fn transitionFunc) (committed, error) {
	// course_id never changes, so an unlocked read is enough to pick the scope
	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return committed{}, fmt.Errorf("get booking: %w", err)
	}

	var res committed
	err = s.txManager.WithinCourse(ctx, current.CourseID, func(ctx context.Context, scope ports.CourseScope) error {
		if ownerID != "" {
			locked, err := scope.GetBooking(ctx, bookingID)
			if err != nil {
				return fmt.Errorf("get booking: %w", err)
			}
			if !locked.OwnedBy(ownerID) {
				return domain.ErrNotOwner
			}
		}

		booking, err := fn(ctx, scope, bookingID)
		if err != nil {
			return err
		}

		member, err := scope.Member(ctx, booking.MemberID)
		if err != nil && !errors.Is(err, domain.ErrMemberNotFound) {
			return fmt.Errorf("get member: %w", err)
		}

		res = committed{booking: booking, member: member, course: scope.Course()}
		return nil
	})
	if err != nil {
		return committed{}, err
	}

	return res, nil
}

func (s *BookingService) logCancelled(b *domain.Booking, by string) {
	s.logger.Info("booking cancelled",
		logger.String("booking_id", b.ID),
		logger.String("course_id", b.CourseID),
		logger.String("member_id", b.MemberID),
		logger.String("cancelled_by", by),
	)
}

// afterCommit fires notifications and events. Their failures never affect the result.
func (s *BookingService) afterCommit(ctx context.Context, eventType domain.BookingEventType, res committed) {
	detached := context.WithoutCancel(ctx)

	go func() {
		if err := s.publisher.Publish(detached, domain.NewBookingEvent(eventType, res.booking)); err != nil {
			s.logger.Warn("failed to publish booking event",
				logger.String("event", string(eventType)),
				logger.String("booking_id", res.booking.ID),
				logger.String("error", err.Error()),
			)
		}
	}()

	if res.member == nil {
		return
	}

	switch eventType {
	case domain.BookingEventCreated:
		go s.notifier.NotifyBookingCreated(detached, res.member, res.course)
	case domain.BookingEventConfirmed:
		go s.notifier.NotifyBookingConfirmed(detached, res.member, res.course)
	case domain.BookingEventCancelled:
		go s.notifier.NotifyBookingCancelled(detached, res.member, res.course)
	case domain.BookingEventAttended:
		go s.notifier.NotifyAttendanceMarked(detached, res.member, res.course)
	}
}

// fail logs err and returns it, marking store faults as infrastructure errors.
func (s *BookingService) fail(op, key, id string, err error) error {
	if domain.IsBusinessFailure(err) {
		s.logger.Debug(op+" rejected",
			logger.String(key, id),
			logger.String("reason", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Error(op+" failed",
		logger.String(key, id),
		logger.String("error", err.Error()),
	)
	return wrapInfra(op, err)
}

func wrapInfra(op string, err error) error {
	if domain.IsBusinessFailure(err) || errors.Is(err, domain.ErrInfrastructure) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrInfrastructure, op, err)
}
