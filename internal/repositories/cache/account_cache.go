package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/sacco_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sacco_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/sacco_ledger/internal/middleware"
	"github.com/redis/go-redis/v9"
)

const accountKeyPrefix = "ledger:account:code:"

// AccountCache is a read-through cache for single account lookups by code, used
// for display reads. Copies may lag a write by up to the TTL. All other reads go
// straight to the wrapped repository. Redis failures are logged and the lookup
// falls back to the database.
type AccountCache struct {
	portsrepo.AccountRepositoryFacade
	client *redis.Client
	ttl    time.Duration
}

// Ensure AccountCache implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*AccountCache)(nil)

// NewAccountCache wraps repo. A nil client disables caching.
func NewAccountCache(repo portsrepo.AccountRepositoryFacade, client *redis.Client, ttl time.Duration) *AccountCache {
	return &AccountCache{AccountRepositoryFacade: repo, client: client, ttl: ttl}
}

func accountKey(code string) string {
	return accountKeyPrefix + code
}

func (c *AccountCache) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	if c.client == nil {
		return c.AccountRepositoryFacade.FindAccountByCode(ctx, code)
	}

	payload, err := c.client.Get(ctx, accountKey(code)).Bytes()
	if err == nil {
		var account domain.Account
		if err := json.Unmarshal(payload, &account); err == nil {
			return &account, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.warn(ctx, err, "account cache read failed", code)
	}

	account, err := c.AccountRepositoryFacade.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	c.store(ctx, *account)
	return account, nil
}

// FindAccountsByCodes always reads the repository so the posting engine sees the
// committed active flag.
func (c *AccountCache) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	return c.AccountRepositoryFacade.FindAccountsByCodes(ctx, codes)
}

func (c *AccountCache) SaveAccount(ctx context.Context, account domain.Account) error {
	if err := c.AccountRepositoryFacade.SaveAccount(ctx, account); err != nil {
		return err
	}
	c.evict(ctx, account.Code)
	return nil
}

func (c *AccountCache) UpdateAccount(ctx context.Context, account domain.Account) error {
	if err := c.AccountRepositoryFacade.UpdateAccount(ctx, account); err != nil {
		return err
	}
	c.evict(ctx, account.Code)
	return nil
}

func (c *AccountCache) store(ctx context.Context, account domain.Account) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(account)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, accountKey(account.Code), raw, c.ttl).Err(); err != nil {
		c.warn(ctx, err, "account cache write failed", account.Code)
	}
}

func (c *AccountCache) evict(ctx context.Context, code string) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, accountKey(code)).Err(); err != nil {
		c.warn(ctx, err, "account cache eviction failed", code)
	}
}

func (c *AccountCache) warn(ctx context.Context, err error, msg, code string) {
	middleware.GetLoggerFromCtx(ctx).Warn(msg,
		slog.String("error", err.Error()),
		slog.String("account_code", code),
	)
}
