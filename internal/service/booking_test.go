package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports/mocks"
)

func TestBookingService_BookCourse_Success(t *testing.T) {
	f := newFixture(t)
	member := f.addEligibleMember()
	course := f.addCourse(3, testNow.Add(24*time.Hour))

	booking, err := f.svc.BookCourse(context.Background(), member, course)

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, member, booking.MemberID)
	assert.Equal(t, course, booking.CourseID)
	assert.Equal(t, testNow, booking.CreatedAt)
	assert.Equal(t, 2, f.slots(course))

	f.rec.wait(t, 2)
	assert.Equal(t, []domain.BookingEventType{domain.BookingEventCreated}, f.rec.eventTypes())
}

func TestBookingService_BookCourse_MemberNotFound(t *testing.T) {
	f := newFixture(t)
	course := f.addCourse(3, testNow.Add(time.Hour))

	_, err := f.svc.BookCourse(context.Background(), "missing", course)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	assert.NotErrorIs(t, err, domain.ErrInfrastructure)
}

func TestBookingService_BookCourse_CourseNotFound(t *testing.T) {
	f := newFixture(t)
	member := f.addEligibleMember()

	_, err := f.svc.BookCourse(context.Background(), member, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
	assert.NotErrorIs(t, err, domain.ErrCourseFull)
}

func TestBookingService_BookCourse_MembershipInvalid(t *testing.T) {
	tests := []struct {
		name   string
		status domain.MemberStatus
		card   *domain.CardStatus
		end    time.Time
	}{
		{
			name:   "frozen member",
			status: domain.MemberStatusFrozen,
			card:   ptr(domain.CardStatusActive),
			end:    testNow.AddDate(0, 1, 0),
		},
		{
			name:   "inactive member",
			status: domain.MemberStatusInactive,
			card:   ptr(domain.CardStatusActive),
			end:    testNow.AddDate(0, 1, 0),
		},
		{
			name:   "no card",
			status: domain.MemberStatusActive,
		},
		{
			name:   "card ended yesterday",
			status: domain.MemberStatusActive,
			card:   ptr(domain.CardStatusActive),
			end:    testNow.AddDate(0, 0, -1),
		},
		{
			name:   "frozen card",
			status: domain.MemberStatusActive,
			card:   ptr(domain.CardStatusFrozen),
			end:    testNow.AddDate(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			member := f.addMember(tt.status)
			if tt.card != nil {
				f.addCard(member, *tt.card, tt.end)
			}
			course := f.addCourse(3, testNow.Add(time.Hour))

			_, err := f.svc.BookCourse(context.Background(), member, course)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMembershipInvalid)
			assert.Equal(t, 3, f.slots(course))
		})
	}
}

func TestBookingService_BookCourse_CardEndingToday(t *testing.T) {
	f := newFixture(t)
	member := f.addMember(domain.MemberStatusActive)
	f.addCard(member, domain.CardStatusActive, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	course := f.addCourse(3, testNow.Add(time.Hour))

	_, err := f.svc.BookCourse(context.Background(), member, course)

	require.NoError(t, err)
}

func TestBookingService_BookCourse_Duplicate(t *testing.T) {
	f := newFixture(t)
	member := f.addEligibleMember()
	course := f.addCourse(3, testNow.Add(time.Hour))

	f.book(member, course)
	_, err := f.svc.BookCourse(context.Background(), member, course)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateBooking)
	assert.Equal(t, 2, f.slots(course))
}

func TestBookingService_BookCourse_DuplicateOfConfirmed(t *testing.T) {
	f := newFixture(t)
	member := f.addEligibleMember()
	course := f.addCourse(3, testNow.Add(time.Hour))

	b := f.book(member, course)
	_, err := f.svc.ConfirmBooking(context.Background(), b.ID)
	require.NoError(t, err)

	_, err = f.svc.BookCourse(context.Background(), member, course)

	assert.ErrorIs(t, err, domain.ErrDuplicateBooking)
}

func TestBookingService_BookCourse_RebookAfterCancel(t *testing.T) {
	f := newFixture(t)
	member := f.addEligibleMember()
	course := f.addCourse(1, testNow.Add(time.Hour))

	first := f.book(member, course)
	_, err := f.svc.MemberCancelBooking(context.Background(), member, first.ID)
	require.NoError(t, err)

	second, err := f.svc.BookCourse(context.Background(), member, course)

	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.BookingStatusPending, second.Status)
	assert.Equal(t, domain.BookingStatusCancelled, f.status(first.ID))
}

func TestBookingService_BookCourse_CourseFull(t *testing.T) {
	f := newFixture(t)
	course := f.addCourse(1, testNow.Add(time.Hour))
	f.book(f.addEligibleMember(), course)

	_, err := f.svc.BookCourse(context.Background(), f.addEligibleMember(), course)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCourseFull)
}

func TestBookingService_BookCourse_ConcurrentCapacity(t *testing.T) {
	const (
		capacity = 5
		extra    = 15
	)

	f := newFixture(t)
	course := f.addCourse(capacity, testNow.Add(time.Hour))

	members := make([]string, capacity+extra)
	for i := range members {
		members[i] = f.addEligibleMember()
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		full    int
		other   []error
	)
	start := make(chan struct{})
	for _, m := range members {
		wg.Add(1)
		go func(memberID string) {
			defer wg.Done()
			<-start
			_, err := f.svc.BookCourse(context.Background(), memberID, course)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, domain.ErrCourseFull):
				full++
			default:
				other = append(other, err)
			}
		}(m)
	}
	close(start)
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, capacity, success)
	assert.Equal(t, extra, full)
	assert.Equal(t, 0, f.slots(course))

	active, err := f.store.Bookings().CountActive(context.Background(), course)
	require.NoError(t, err)
	assert.Equal(t, capacity, active)
}

func TestBookingService_BookCourse_ConcurrentSameMember(t *testing.T) {
	f := newFixture(t)
	member := f.addEligibleMember()
	course := f.addCourse(10, testNow.Add(time.Hour))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		dup     int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.BookCourse(context.Background(), member, course)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				success++
			} else if errors.Is(err, domain.ErrDuplicateBooking) {
				dup++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, 9, dup)
	assert.Equal(t, 9, f.slots(course))
}

func TestBookingService_Scenario_SingleSeat(t *testing.T) {
	f := newFixture(t)
	c1 := f.addCourse(1, testNow.Add(time.Hour))
	m1 := f.addEligibleMember()
	m2 := f.addEligibleMember()

	b1 := f.book(m1, c1)
	assert.Equal(t, domain.BookingStatusPending, b1.Status)
	assert.Equal(t, 0, f.slots(c1))

	_, err := f.svc.BookCourse(context.Background(), m2, c1)
	assert.ErrorIs(t, err, domain.ErrCourseFull)

	_, err = f.svc.MemberCancelBooking(context.Background(), m1, b1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.slots(c1))

	b2, err := f.svc.BookCourse(context.Background(), m2, c1)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, b2.Status)
	assert.Equal(t, 0, f.slots(c1))
}

func TestBookingService_ConfirmBooking(t *testing.T) {
	f := newFixture(t)
	course := f.addCourse(2, testNow.Add(time.Hour))
	b := f.book(f.addEligibleMember(), course)

	confirmed, err := f.svc.ConfirmBooking(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, confirmed.Status)
	assert.Equal(t, domain.BookingStatusConfirmed, f.status(b.ID))
	assert.Equal(t, 1, f.slots(course))

	_, err = f.svc.ConfirmBooking(context.Background(), b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_ConfirmBooking_CapacityLowered(t *testing.T) {
	f := newFixture(t)
	course := f.addCourse(2, testNow.Add(time.Hour))
	first := f.book(f.addEligibleMember(), course)
	f.book(f.addEligibleMember(), course)

	require.NoError(t, f.store.Courses().SetCapacity(context.Background(), course, 1))

	_, err := f.svc.ConfirmBooking(context.Background(), first.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCourseFull)
	assert.Equal(t, domain.BookingStatusPending, f.status(first.ID))
	assert.Equal(t, 0, f.slots(course))
}

func TestBookingService_ConfirmBooking_Cancelled(t *testing.T) {
	f := newFixture(t)
	course := f.addCourse(2, testNow.Add(time.Hour))
	b := f.book(f.addEligibleMember(), course)
	_, err := f.svc.StaffCancelBooking(context.Background(), b.ID)
	require.NoError(t, err)

	_, err = f.svc.ConfirmBooking(context.Background(), b.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_ConfirmBooking_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ConfirmBooking(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestBookingService_MemberCancelBooking_NotOwner(t *testing.T) {
	f := newFixture(t)
	course := f.addCourse(2, testNow.Add(time.Hour))
	owner := f.addEligibleMember()
	stranger := f.addEligibleMember()
	b := f.book(owner, course)

	_, err := f.svc.MemberCancelBooking(context.Background(), stranger, b.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	assert.Equal(t, domain.BookingStatusPending, f.status(b.ID))
	assert.Equal(t, 1, f.slots(course))
}

func TestBookingService_MemberCancelBooking_FreesSeat(t *testing.T) {
	f := newFixture(t)
	course := f.addCourse(1, testNow.Add(time.Hour))
	member := f.addEligibleMember()
	b := f.book(member, course)
	f.rec.wait(t, 2)

	cancelled, err := f.svc.MemberCancelBooking(context.Background(), member, b.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, 1, f.slots(course))

	f.rec.wait(t, 2)
	assert.Contains(t, f.rec.eventTypes(), domain.BookingEventCancelled)
}

func TestBookingService_Cancel_Terminal(t *testing.T) {
	f := newFixture(t)
	course := f.addCourse(2, testNow.Add(time.Hour))
	member := f.addEligibleMember()

	cancelled := f.book(member, course)
	_, err := f.svc.StaffCancelBooking(context.Background(), cancelled.ID)
	require.NoError(t, err)

	_, err = f.svc.StaffCancelBooking(context.Background(), cancelled.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)

	_, err = f.svc.MemberCancelBooking(context.Background(), member, cancelled.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)

	attended := f.book(member, course)
	_, err = f.svc.ConfirmBooking(context.Background(), attended.ID)
	require.NoError(t, err)
	_, err = f.svc.MarkAttendance(context.Background(), attended.ID)
	require.NoError(t, err)

	_, err = f.svc.StaffCancelBooking(context.Background(), attended.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.BookingStatusAttended, f.status(attended.ID))
}

func TestBookingService_MarkAttendance(t *testing.T) {
	f := newFixture(t)
	course := f.addCourse(2, testNow.Add(time.Hour))
	b := f.book(f.addEligibleMember(), course)

	_, err := f.svc.MarkAttendance(context.Background(), b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.BookingStatusPending, f.status(b.ID))

	_, err = f.svc.ConfirmBooking(context.Background(), b.ID)
	require.NoError(t, err)

	attended, err := f.svc.MarkAttendance(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAttended, attended.Status)

	// attended bookings no longer hold a seat
	assert.Equal(t, 2, f.slots(course))
}

func TestBookingService_CancelStale(t *testing.T) {
	f := newFixture(t)
	started := f.addCourse(5, testNow.Add(-time.Hour))
	upcoming := f.addCourse(5, testNow.Add(time.Hour))

	stale := f.book(f.addEligibleMember(), started)
	confirmed := f.book(f.addEligibleMember(), started)
	_, err := f.svc.ConfirmBooking(context.Background(), confirmed.ID)
	require.NoError(t, err)
	fresh := f.book(f.addEligibleMember(), upcoming)

	cancelled, err := f.svc.CancelStale(context.Background())

	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, stale.ID, cancelled[0].ID)
	assert.Equal(t, domain.BookingStatusCancelled, f.status(stale.ID))
	assert.Equal(t, domain.BookingStatusConfirmed, f.status(confirmed.ID))
	assert.Equal(t, domain.BookingStatusPending, f.status(fresh.ID))
}

// staleSnapshot serves a stale list captured before later transitions.
type staleSnapshot struct {
	ports.BookingRepo
	stale []*domain.Booking
}

func (r staleSnapshot) ListStalePending(context.Context, time.Time) ([]*domain.Booking, error) {
	return r.stale, nil
}

func TestBookingService_CancelStale_SkipsConfirmedMeanwhile(t *testing.T) {
	f := newFixture(t)
	started := f.addCourse(5, testNow.Add(-time.Hour))
	b := f.book(f.addEligibleMember(), started)

	snapshot, err := f.store.Bookings().ListStalePending(context.Background(), testNow)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	_, err = f.svc.ConfirmBooking(context.Background(), b.ID)
	require.NoError(t, err)

	svc := NewBookingService(
		f.store,
		staleSnapshot{BookingRepo: f.store.Bookings(), stale: snapshot},
		f.store.Courses(),
		f.rec,
		f.rec,
		newTestLogger(t),
		WithClock(fixedClock),
	)

	cancelled, err := svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cancelled)
	assert.Equal(t, domain.BookingStatusConfirmed, f.status(b.ID))
	assert.Equal(t, 4, f.slots(started))
}

func TestBookingService_Lists(t *testing.T) {
	f := newFixture(t)
	course := f.addCourse(5, testNow.Add(time.Hour))
	member := f.addEligibleMember()
	other := f.addEligibleMember()

	mine := f.book(member, course)
	theirs := f.book(other, course)
	_, err := f.svc.ConfirmBooking(context.Background(), theirs.ID)
	require.NoError(t, err)

	byMember, err := f.svc.ListBookingsForMember(context.Background(), member)
	require.NoError(t, err)
	require.Len(t, byMember, 1)
	assert.Equal(t, mine.ID, byMember[0].ID)

	byCourse, err := f.svc.ListBookingsForCourse(context.Background(), course)
	require.NoError(t, err)
	require.Len(t, byCourse, 2)
	// same timestamp, the later insert comes first
	assert.Equal(t, theirs.ID, byCourse[0].ID)

	pending, err := f.svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, mine.ID, pending[0].ID)
}

func TestBookingService_AvailableSlots_CourseNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AvailableSlots(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestBookingService_InfrastructureError(t *testing.T) {
	tx := mocks.NewMockTxManager(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	courseRepo := mocks.NewMockCourseRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := NewBookingService(tx, bookingRepo, courseRepo, notifier, publisher, newTestLogger(t), WithClock(fixedClock))

	dbErr := errors.New("connection reset")
	tx.EXPECT().WithinCourse(mock.Anything, "c1", mock.Anything).Return(dbErr)

	_, err := svc.BookCourse(context.Background(), "m1", "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInfrastructure)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, domain.KindInfrastructure, domain.KindOf(err))
}

func TestBookingService_InfrastructureErrorInsideScope(t *testing.T) {
	tx := mocks.NewMockTxManager(t)
	scope := mocks.NewMockCourseScope(t)
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)

	svc := NewBookingService(tx, mocks.NewMockBookingRepo(t), mocks.NewMockCourseRepo(t),
		notifier, publisher, newTestLogger(t), WithClock(fixedClock))

	timeout := errors.New("statement timeout")
	scope.EXPECT().Member(mock.Anything, "m1").Return(nil, timeout)
	tx.EXPECT().WithinCourse(mock.Anything, "c1", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, fn func(context.Context, ports.CourseScope) error) error {
			return fn(ctx, scope)
		})

	_, err := svc.BookCourse(context.Background(), "m1", "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInfrastructure)
	assert.ErrorIs(t, err, timeout)
}

func TestBookingService_BusinessFailureIsNotInfrastructure(t *testing.T) {
	tx := mocks.NewMockTxManager(t)
	svc := NewBookingService(tx, mocks.NewMockBookingRepo(t), mocks.NewMockCourseRepo(t),
		mocks.NewMockBookingNotifier(t), mocks.NewMockEventPublisher(t), newTestLogger(t))

	tx.EXPECT().WithinCourse(mock.Anything, "c1", mock.Anything).Return(domain.ErrCourseFull)

	_, err := svc.BookCourse(context.Background(), "m1", "c1")

	assert.ErrorIs(t, err, domain.ErrCourseFull)
	assert.NotErrorIs(t, err, domain.ErrInfrastructure)
}

func TestBookingService_CancelStale_ListError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(mocks.NewMockTxManager(t), bookingRepo, mocks.NewMockCourseRepo(t),
		mocks.NewMockBookingNotifier(t), mocks.NewMockEventPublisher(t), newTestLogger(t), WithClock(fixedClock))

	bookingRepo.EXPECT().ListStalePending(mock.Anything, testNow).Return(nil, errors.New("db down"))

	_, err := svc.CancelStale(context.Background())

	assert.ErrorIs(t, err, domain.ErrInfrastructure)
}

func ptr[T any](v T) *T { return &v }
