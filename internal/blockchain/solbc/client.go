// internal/blockchain/solbc/client.go
package solbc

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/pump-sdk/internal/utils/metrics"
)

// maxAccountsPerRequest is the getMultipleAccounts limit of Solana RPC nodes.
const maxAccountsPerRequest = 100

// Account is the raw state of an on-chain account.
type Account struct {
	Address  solana.PublicKey
	Lamports uint64
	Owner    solana.PublicKey
	Data     []byte
}

// Options configures retries and commitment of a Client.
type Options struct {
	Retries    int
	RetryDelay time.Duration
	Commitment rpc.CommitmentType
	Metrics    *metrics.Collector
}

// Client – тонкий адаптер для чтения состояния Solana через solana-go.
type Client struct {
	pool    *pool
	opts    Options
	logger  *zap.Logger
	metrics *metrics.Collector
}

// NewClient создаёт клиент по списку RPC URL; логгер передаётся через dependency injection.
func NewClient(rpcURLs []string, opts Options, logger *zap.Logger) (*Client, error) {
	p, err := newPool(rpcURLs)
	if err != nil {
		return nil, err
	}
	if opts.Retries <= 0 {
		opts.Retries = 1
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 200 * time.Millisecond
	}
	if opts.Commitment == "" {
		opts.Commitment = rpc.CommitmentConfirmed
	}
	return &Client{
		pool:    p,
		opts:    opts,
		logger:  logger.Named("solbc-client"),
		metrics: opts.Metrics,
	}, nil
}

// call runs op against the current endpoint, retrying transient failures on
// the next endpoint with exponential backoff.
func call[T any](ctx context.Context, c *Client, method string, op func(ctx context.Context, client *rpc.Client) (T, error)) (T, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.opts.RetryDelay
	policy.MaxInterval = c.opts.RetryDelay * 10

	ep := c.pool.current()
	operation := func() (T, error) {
		start := time.Now()
		res, err := op(ctx, ep.client)
		c.metrics.RecordRPC(method, time.Since(start), err == nil || IsAccountNotFoundError(err))
		if err == nil {
			return res, nil
		}
		if !isRetryable(err) {
			return res, backoff.Permanent(err)
		}
		return res, &RPCError{Err: err, Endpoint: ep.url, Method: method}
	}

	notify := func(err error, d time.Duration) {
		c.metrics.RecordRetry(method)
		ep = c.pool.next()
		c.logger.Warn("RPC call failed, retrying",
			zap.String("method", method),
			zap.String("next_endpoint", ep.url),
			zap.Duration("backoff", d),
			zap.Error(err))
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(c.opts.Retries)),
		backoff.WithNotify(notify))
}

// GetAccountInfo получает аккаунт; отсутствующий аккаунт возвращает ErrAccountNotFound.
func (c *Client) GetAccountInfo(ctx context.Context, pubkey solana.PublicKey) (*Account, error) {
	result, err := call(ctx, c, "getAccountInfo", func(ctx context.Context, client *rpc.Client) (*rpc.GetAccountInfoResult, error) {
		return client.GetAccountInfoWithOpts(ctx, pubkey, &rpc.GetAccountInfoOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: c.opts.Commitment,
		})
	})
	if err != nil {
		if IsAccountNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		c.logger.Debug("GetAccountInfo error",
			zap.String("pubkey", pubkey.String()),
			zap.Error(err))
		return nil, err
	}
	if result == nil || result.Value == nil {
		return nil, ErrAccountNotFound
	}
	return toAccount(pubkey, result.Value), nil
}

// GetMultipleAccounts получает несколько аккаунтов; для отсутствующих возвращается nil
// на той же позиции.
func (c *Client) GetMultipleAccounts(ctx context.Context, pubkeys []solana.PublicKey) ([]*Account, error) {
	out := make([]*Account, 0, len(pubkeys))

	for from := 0; from < len(pubkeys); from += maxAccountsPerRequest {
		chunk := pubkeys[from:min(from+maxAccountsPerRequest, len(pubkeys))]

		res, err := call(ctx, c, "getMultipleAccounts", func(ctx context.Context, client *rpc.Client) (*rpc.GetMultipleAccountsResult, error) {
			return client.GetMultipleAccountsWithOpts(ctx, chunk, &rpc.GetMultipleAccountsOpts{
				Commitment: c.opts.Commitment,
				Encoding:   solana.EncodingBase64,
			})
		})
		if err != nil {
			c.logger.Debug("GetMultipleAccounts error", zap.Int("count", len(chunk)), zap.Error(err))
			return nil, err
		}
		if len(res.Value) != len(chunk) {
			return nil, errors.New("getMultipleAccounts returned a mismatched account count")
		}

		for i, acc := range res.Value {
			if acc == nil {
				out = append(out, nil)
				continue
			}
			out = append(out, toAccount(chunk[i], acc))
		}
	}
	return out, nil
}

// GetBalance получает баланс аккаунта в лампортах.
func (c *Client) GetBalance(ctx context.Context, pubkey solana.PublicKey) (uint64, error) {
	result, err := call(ctx, c, "getBalance", func(ctx context.Context, client *rpc.Client) (*rpc.GetBalanceResult, error) {
		return client.GetBalance(ctx, pubkey, c.opts.Commitment)
	})
	if err != nil {
		c.logger.Error("GetBalance error", zap.Error(err))
		return 0, err
	}
	return result.Value, nil
}

// GetMinimumBalanceForRentExemption returns the rent-exempt minimum for an account of dataSize bytes.
func (c *Client) GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64) (uint64, error) {
	return call(ctx, c, "getMinimumBalanceForRentExemption", func(ctx context.Context, client *rpc.Client) (uint64, error) {
		return client.GetMinimumBalanceForRentExemption(ctx, dataSize, c.opts.Commitment)
	})
}

func toAccount(address solana.PublicKey, acc *rpc.Account) *Account {
	out := &Account{Address: address, Lamports: acc.Lamports, Owner: acc.Owner}
	if acc.Data != nil {
		out.Data = acc.Data.GetBinary()
	}
	return out
}
