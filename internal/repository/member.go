package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	memberColumns = `id, full_name, status, telegram_chat_id, created_at`
	cardColumns   = `id, member_id, status, start_date, end_date, created_at`
)

type MemberRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMemberRepo(db *dbpg.DB) *MemberRepository {
	return &MemberRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanMember(row rowScanner) (*domain.Member, error) {
	var m domain.Member
	if err := row.Scan(&m.ID, &m.FullName, &m.Status, &m.TelegramChatID, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (` + memberColumns + `)
 			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, m.ID, m.FullName, m.Status, m.TelegramChatID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}

	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
    		  FROM members
    		  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}

	return m, nil
}

func (r *MemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
			  FROM members
			  ORDER BY full_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var res []*domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		res = append(res, m)
	}

	return res, rows.Err()
}

func (r *MemberRepository) UpdateStatus(ctx context.Context, id string, status domain.MemberStatus) error {
	query := `UPDATE members SET status = $2 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update member status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("member rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

func (r *MemberRepository) CreateCard(ctx context.Context, card *domain.MembershipCard) error {
	query := `INSERT INTO membership_cards (` + cardColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		card.ID, card.MemberID, card.Status, card.StartDate, card.EndDate, card.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}

	return nil
}

func (r *MemberRepository) ListCards(ctx context.Context, memberID string) ([]*domain.MembershipCard, error) {
	query := `SELECT ` + cardColumns + `
			  FROM membership_cards
			  WHERE member_id = $1
			  ORDER BY end_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var res []*domain.MembershipCard
	for rows.Next() {
		var c domain.MembershipCard
		if err = rows.Scan(&c.ID, &c.MemberID, &c.Status, &c.StartDate, &c.EndDate, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
