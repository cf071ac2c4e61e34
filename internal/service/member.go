package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports"
)

type MemberService struct {
	repo ports.MemberRepo
}

func NewMemberService(repo ports.MemberRepo) *MemberService {
	return &MemberService{repo: repo}
}

func (s *MemberService) Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error) {
	if input.FullName == "" {
		return nil, fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}

	member := &domain.Member{
		ID:             uuid.New().String(),
		FullName:       input.FullName,
		Status:         domain.MemberStatusActive,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

func (s *MemberService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.repo.List(ctx)
}

func (s *MemberService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Member, error) {
	st, err := domain.ParseMemberStatus(status)
	if err != nil {
		return nil, err
	}

	if err = s.repo.UpdateStatus(ctx, id, st); err != nil {
		return nil, fmt.Errorf("update member status: %w", err)
	}

	return s.repo.GetByID(ctx, id)
}

// IssueCard registers an active membership card for an existing member.
func (s *MemberService) IssueCard(ctx context.Context, input domain.IssueCardInput) (*domain.MembershipCard, error) {
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", domain.ErrValidation)
	}

	if _, err := s.repo.GetByID(ctx, input.MemberID); err != nil {
		return nil, err
	}

	card := &domain.MembershipCard{
		ID:        uuid.New().String(),
		MemberID:  input.MemberID,
		Status:    domain.CardStatusActive,
		StartDate: domain.DateOf(input.StartDate),
		EndDate:   domain.DateOf(input.EndDate),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateCard(ctx, card); err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}

	return card, nil
}

func (s *MemberService) ListCards(ctx context.Context, memberID string) ([]*domain.MembershipCard, error) {
	if _, err := s.repo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	return s.repo.ListCards(ctx, memberID)
}
