package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sacco_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
)

// MemberActivationName identifies the member activation consumer in logs.
const MemberActivationName = "member-activation"

// memberActivation moves a member out of PENDING_PAYMENT once the registration fee is paid.
type memberActivation struct {
	BaseService
	members portsrepo.MemberRepositoryFacade
}

// NewMemberActivation creates the consumer that activates members on registration payments.
func NewMemberActivation(members portsrepo.MemberRepositoryFacade) portssvc.PaymentConsumer {
	return &memberActivation{BaseService: newBaseService(), members: members}
}

var _ portssvc.PaymentConsumer = (*memberActivation)(nil)

func (m *memberActivation) Name() string { return MemberActivationName }

func (m *memberActivation) HandlePaymentConfirmed(ctx context.Context, n domain.PaymentConfirmed) error {
	if !strings.HasPrefix(strings.TrimSpace(n.AccountReference), domain.RegistrationReferencePrefix) {
		return nil
	}
	logger := m.GetLogger(ctx).With(
		slog.String("consumer", MemberActivationName),
		slog.String("member_id", n.MemberID),
	)

	member, err := m.members.FindMemberByID(ctx, n.MemberID)
	if err != nil {
		logger.Error("Failed to load member for activation", slog.String("error", err.Error()))
		return err
	}

	if member.Status != domain.MemberPendingPayment {
		logger.Info("Member not pending payment; nothing to activate", slog.String("status", string(member.Status)))
		return nil
	}

	if err := m.members.UpdateMemberStatus(ctx, member.MemberID, domain.MemberActive, domain.SystemActor, m.Now()); err != nil {
		logger.Error("Failed to activate member", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Member activated after registration payment", slog.String("member_number", member.MemberNumber))
	return nil
}
