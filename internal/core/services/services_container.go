package services

import (
	portsrepo "github.com/SscSPs/sacco_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
	"github.com/SscSPs/sacco_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)

	// The posting engine resolves codes through the account service so that
	// the cached repository decorator, when present, is on the hot path.
	container.Journal = NewJournalService(repos.JournalRepo, container.Account)

	container.Template = NewTemplateService(container.Journal, templateAccountsFromConfig(cfg))

	// Ledger first, then membership.
	container.PaymentConsumers = []portssvc.PaymentConsumer{
		NewPaymentBridge(container.Template),
		NewMemberActivation(repos.MemberRepo),
	}

	return container
}

func templateAccountsFromConfig(cfg *config.Config) TemplateAccounts {
	accounts := DefaultTemplateAccounts
	if cfg == nil {
		return accounts
	}
	if cfg.Ledger.ClearingAccount != "" {
		accounts.Clearing = cfg.Ledger.ClearingAccount
	}
	if cfg.Ledger.RegistrationIncomeAccount != "" {
		accounts.RegistrationIncome = cfg.Ledger.RegistrationIncomeAccount
	}
	if cfg.Ledger.MemberSavingsAccount != "" {
		accounts.MemberSavings = cfg.Ledger.MemberSavingsAccount
	}
	return accounts
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade = (*accountService)(nil)
	_ portssvc.JournalSvcFacade = (*journalService)(nil)
)
