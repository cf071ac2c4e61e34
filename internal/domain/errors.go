package domain

import "errors"

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrMembershipInvalid = errors.New("member has no valid membership card")
	ErrDuplicateBooking  = errors.New("member already has an active booking for this course")
	ErrCourseFull        = errors.New("course is full")
	ErrNotOwner          = errors.New("booking belongs to another member")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrInfrastructure marks store or transport failures. Callers may retry the whole operation.
var ErrInfrastructure = errors.New("infrastructure error")

type FailureKind string

const (
	KindNone              FailureKind = ""
	KindMembershipInvalid FailureKind = "membership_invalid"
	KindDuplicateBooking  FailureKind = "duplicate_booking"
	KindCourseFull        FailureKind = "course_full"
	KindNotOwner          FailureKind = "not_owner"
	KindInvalidTransition FailureKind = "invalid_transition"
	KindAlreadyCancelled  FailureKind = "already_cancelled"
	KindNotFound          FailureKind = "not_found"
	KindValidation        FailureKind = "validation"
	KindInfrastructure    FailureKind = "infrastructure"
	KindInternal          FailureKind = "internal"
)

var failureKinds = []struct {
	err  error
	kind FailureKind
}{
	{ErrMembershipInvalid, KindMembershipInvalid},
	{ErrDuplicateBooking, KindDuplicateBooking},
	{ErrCourseFull, KindCourseFull},
	{ErrNotOwner, KindNotOwner},
	{ErrInvalidTransition, KindInvalidTransition},
	{ErrAlreadyCancelled, KindAlreadyCancelled},
	{ErrBookingNotFound, KindNotFound},
	{ErrCourseNotFound, KindNotFound},
	{ErrMemberNotFound, KindNotFound},
	{ErrValidation, KindValidation},
	{ErrInfrastructure, KindInfrastructure},
}

// KindOf returns the failure tag carried by err.
func KindOf(err error) FailureKind {
	if err == nil {
		return KindNone
	}
	for _, fk := range failureKinds {
		if errors.Is(err, fk.err) {
			return fk.kind
		}
	}
	return KindInternal
}

// IsBusinessFailure reports whether err is an expected rule violation rather than a fault.
func IsBusinessFailure(err error) bool {
	switch KindOf(err) {
	case KindNone, KindInfrastructure, KindInternal:
		return false
	default:
		return true
	}
}
