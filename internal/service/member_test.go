package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports/mocks"
)

func TestMemberService_Create_Success(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(12345)
	member, err := svc.Create(context.Background(), domain.CreateMemberInput{
		FullName:       "Anna Ivanova",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, "Anna Ivanova", member.FullName)
	assert.Equal(t, domain.MemberStatusActive, member.Status)
	assert.Equal(t, &chatID, member.TelegramChatID)
}

func TestMemberService_Create_EmptyName(t *testing.T) {
	svc := NewMemberService(nil)

	_, err := svc.Create(context.Background(), domain.CreateMemberInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMemberService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), domain.CreateMemberInput{FullName: "Ivan"})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestMemberService_UpdateStatus(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	repo.EXPECT().UpdateStatus(mock.Anything, "m1", domain.MemberStatusFrozen).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "m1").
		Return(&domain.Member{ID: "m1", Status: domain.MemberStatusFrozen}, nil)

	member, err := svc.UpdateStatus(context.Background(), "m1", "frozen")

	require.NoError(t, err)
	assert.Equal(t, domain.MemberStatusFrozen, member.Status)
}

func TestMemberService_UpdateStatus_Unknown(t *testing.T) {
	svc := NewMemberService(mocks.NewMockMemberRepo(t))

	_, err := svc.UpdateStatus(context.Background(), "m1", "banned")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMemberService_UpdateStatus_NotFound(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	repo.EXPECT().UpdateStatus(mock.Anything, "missing", domain.MemberStatusActive).Return(domain.ErrMemberNotFound)

	_, err := svc.UpdateStatus(context.Background(), "missing", "active")

	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestMemberService_IssueCard(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	start := time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 8, 0, 0, 0, time.UTC)

	repo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Member{ID: "m1"}, nil)
	repo.EXPECT().CreateCard(mock.Anything, mock.Anything).Return(nil)

	card, err := svc.IssueCard(context.Background(), domain.IssueCardInput{
		MemberID:  "m1",
		StartDate: start,
		EndDate:   end,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CardStatusActive, card.Status)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), card.StartDate)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), card.EndDate)
}

func TestMemberService_IssueCard_Validation(t *testing.T) {
	svc := NewMemberService(mocks.NewMockMemberRepo(t))
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.IssueCard(context.Background(), domain.IssueCardInput{MemberID: "m1", StartDate: day})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.IssueCard(context.Background(), domain.IssueCardInput{
		MemberID:  "m1",
		StartDate: day,
		EndDate:   day.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMemberService_IssueCard_MemberNotFound(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrMemberNotFound)

	_, err := svc.IssueCard(context.Background(), domain.IssueCardInput{
		MemberID:  "missing",
		StartDate: day,
		EndDate:   day,
	})

	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestMemberService_List_Error(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background())

	require.Error(t, err)
}

func TestMemberService_GetByID(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	repo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Member{ID: "m1", FullName: "Ivan"}, nil)

	member, err := svc.GetByID(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, "Ivan", member.FullName)
}

func TestMemberService_ListCards(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	cards := []*domain.MembershipCard{
		{ID: "k1", MemberID: "m1", Status: domain.CardStatusActive},
	}
	repo.EXPECT().GetByID(mock.Anything, "m1").Return(&domain.Member{ID: "m1"}, nil)
	repo.EXPECT().ListCards(mock.Anything, "m1").Return(cards, nil)

	result, err := svc.ListCards(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, cards, result)
}

func TestMemberService_ListCards_MemberNotFound(t *testing.T) {
	repo := mocks.NewMockMemberRepo(t)
	svc := NewMemberService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrMemberNotFound)

	_, err := svc.ListCards(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}
