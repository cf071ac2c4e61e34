package ports

import (
	"context"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
)

type MemberRepo interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	UpdateStatus(ctx context.Context, id string, status domain.MemberStatus) error
	CreateCard(ctx context.Context, card *domain.MembershipCard) error
	ListCards(ctx context.Context, memberID string) ([]*domain.MembershipCard, error)
}
