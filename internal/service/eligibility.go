package service

import (
	"context"
	"fmt"
	"time"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
)

type eligibilityReader interface {
	Member(ctx context.Context, memberID string) (*domain.Member, error)
	HasValidCard(ctx context.Context, memberID string, day time.Time) (bool, error)
	HasActiveBooking(ctx context.Context, memberID string) (bool, error)
}

// EligibilityChecker decides whether a member may open a new booking for the course
// the reader is bound to. It has no side effects; membership is looked up on every call.
type EligibilityChecker struct {
	now func() time.Time
}

func NewEligibilityChecker(now func() time.Time) *EligibilityChecker {
	return &EligibilityChecker{now: now}
}

func (c *EligibilityChecker) CanBook(ctx context.Context, r eligibilityReader, memberID string) error {
	member, err := r.Member(ctx, memberID)
	if err != nil {
		return fmt.Errorf("get member: %w", err)
	}
	if member.Status != domain.MemberStatusActive {
		return fmt.Errorf("%w: member is %s", domain.ErrMembershipInvalid, member.Status)
	}

	valid, err := r.HasValidCard(ctx, memberID, domain.DateOf(c.now()))
	if err != nil {
		return fmt.Errorf("check membership card: %w", err)
	}
	if !valid {
		return domain.ErrMembershipInvalid
	}

	booked, err := r.HasActiveBooking(ctx, memberID)
	if err != nil {
		return fmt.Errorf("check active booking: %w", err)
	}
	if booked {
		return domain.ErrDuplicateBooking
	}

	return nil
}
