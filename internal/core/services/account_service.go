package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/apperrors"
	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sacco_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sacco_ledger/internal/core/ports/services"
	"github.com/SscSPs/sacco_ledger/internal/dto"
	"github.com/google/uuid"
)

// AccountCodePattern is the accepted shape of an account code.
var AccountCodePattern = regexp.MustCompile(`^[0-9A-Za-z-]+$`)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountClock overrides the clock used for audit timestamps.
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.Now = now
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		BaseService: newBaseService(),
		accountRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" || !AccountCodePattern.MatchString(code) {
		return nil, fmt.Errorf("%w: account code %q must contain only letters, digits or dashes", apperrors.ErrValidation, req.Code)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !req.AccountType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	exists, err := s.accountRepo.ExistsByCode(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account code", slog.String("code", code))
		return nil, err
	}
	if exists {
		err := apperrors.NewDuplicateCode(code)
		s.LogWarn(ctx, err, "Account code already in use", slog.String("code", code))
		return nil, err
	}

	var parentID *string
	if req.ParentAccountID != nil && strings.TrimSpace(*req.ParentAccountID) != "" {
		pid := strings.TrimSpace(*req.ParentAccountID)
		if _, err := s.accountRepo.FindAccountByID(ctx, pid); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewParentNotFound(pid)
			}
			s.LogError(ctx, err, "Failed to find parent account", slog.String("parent_id", pid))
			return nil, err
		}
		parentID = &pid
	}

	now := s.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            code,
		Name:            name,
		Description:     req.Description,
		AccountType:     req.AccountType,
		ParentAccountID: parentID,
		IsActive:        true,
		IsSystemAccount: false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateCode) {
			s.LogError(ctx, err, "Failed to save account", slog.String("code", code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if req.IsActive == nil {
		return nil, fmt.Errorf("%w: active flag is required", apperrors.ErrValidation)
	}

	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if account.IsSystemAccount && !*req.IsActive {
		err := apperrors.NewProtectedAccountViolation(account.Code)
		s.LogWarn(ctx, err, "Refused to deactivate system account", slog.String("code", account.Code))
		return nil, err
	}

	account.Name = name
	account.Description = req.Description
	account.IsActive = *req.IsActive
	account.LastUpdatedAt = s.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", account.AccountID),
		slog.Bool("is_active", account.IsActive))
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.list(ctx, "all", s.accountRepo.ListAccounts)
}

func (s *accountService) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.list(ctx, "active", s.accountRepo.ListActiveAccounts)
}

func (s *accountService) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	if !accountType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, accountType)
	}
	return s.list(ctx, string(accountType), func(ctx context.Context) ([]domain.Account, error) {
		return s.accountRepo.ListAccountsByType(ctx, accountType)
	})
}

func (s *accountService) list(ctx context.Context, filter string, fetch func(context.Context) ([]domain.Account, error)) ([]domain.Account, error) {
	accounts, err := fetch(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("filter", filter))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)), slog.String("filter", filter))
	return accounts, nil
}

func (s *accountService) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	unique := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, unique)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve account codes", slog.Any("codes", unique))
		return nil, err
	}
	return accounts, nil
}

// IsActive uses the batch lookup, which is never served from a cache.
func (s *accountService) IsActive(ctx context.Context, code string) (bool, error) {
	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, []string{code})
	if err != nil {
		return false, err
	}
	account, ok := accounts[code]
	return ok && account.IsActive, nil
}
