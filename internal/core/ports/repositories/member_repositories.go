package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
)

// MemberReader is the read side of the member directory.
type MemberReader interface {
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
}

// MemberWriter is the narrow write side the ledger needs: status transitions only.
type MemberWriter interface {
	UpdateMemberStatus(ctx context.Context, memberID string, status domain.MemberStatus, updatedBy string, now time.Time) error
}

// MemberRepositoryFacade combines member reads and writes
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
