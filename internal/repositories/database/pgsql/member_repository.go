package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sacco_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/sacco_ledger/internal/models"
	"github.com/SscSPs/sacco_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(pool *pgxpool.Pool) *PgxMemberRepository {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

// FindMemberByID retrieves a member by ID.
func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `
		SELECT member_id, member_number, first_name, last_name, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM members
		WHERE member_id = $1;
	`
	var m models.Member
	err := r.Pool.QueryRow(ctx, query, memberID).Scan(
		&m.MemberID,
		&m.MemberNumber,
		&m.FirstName,
		&m.LastName,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(memberID)
		}
		return nil, fmt.Errorf("failed to find member %s: %w", memberID, err)
	}
	member := mapping.ToDomainMember(m)
	return &member, nil
}

// UpdateMemberStatus sets the member's status.
func (r *PgxMemberRepository) UpdateMemberStatus(ctx context.Context, memberID string, status domain.MemberStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE members
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE member_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), now, updatedBy, memberID)
	if err != nil {
		return fmt.Errorf("failed to update member %s status: %w", memberID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound(memberID)
	}
	return nil
}
