package domain

import (
	"fmt"
	"time"
)

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusFrozen   MemberStatus = "frozen"
	MemberStatusInactive MemberStatus = "inactive"
)

func ParseMemberStatus(s string) (MemberStatus, error) {
	switch st := MemberStatus(s); st {
	case MemberStatusActive, MemberStatusFrozen, MemberStatusInactive:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown member status %q", ErrValidation, s)
	}
}

type Member struct {
	ID             string       `json:"id"`
	FullName       string       `json:"full_name"`
	Status         MemberStatus `json:"status"`
	TelegramChatID *int64       `json:"telegram_chat_id"`
	CreatedAt      time.Time    `json:"created_at"`
}

type CreateMemberInput struct {
	FullName       string
	TelegramChatID *int64
}

type CardStatus string

const (
	CardStatusActive    CardStatus = "active"
	CardStatusFrozen    CardStatus = "frozen"
	CardStatusExpired   CardStatus = "expired"
	CardStatusCancelled CardStatus = "cancelled"
)

type MembershipCard struct {
	ID        string     `json:"id"`
	MemberID  string     `json:"member_id"`
	Status    CardStatus `json:"status"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	CreatedAt time.Time  `json:"created_at"`
}

// ValidOn reports whether the card is active and has not ended before day.
// Only the calendar date of day and EndDate is compared.
func (c *MembershipCard) ValidOn(day time.Time) bool {
	if c.Status != CardStatusActive {
		return false
	}
	return !DateOf(c.EndDate).Before(DateOf(day))
}

type IssueCardInput struct {
	MemberID  string
	StartDate time.Time
	EndDate   time.Time
}

// DateOf truncates t to midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
