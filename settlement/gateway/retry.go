package gateway

import (
	"context"
	"time"

	"encore.dev/rlog"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 500 * time.Millisecond
	defaultCallTimeout = 30 * time.Second
)

// RetryConfig bounds the in-adapter retry loop. Only GatewayUnavailable is
// retried; rejections and insufficient-balance results propagate immediately.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	CallTimeout time.Duration
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = defaultBaseDelay
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = defaultCallTimeout
	}
	return c
}

// retryingGateway decorates another PaymentGateway with bounded exponential
// backoff and a per-call timeout. A timed-out call is treated as unavailable,
// never as having succeeded; dedup on retry is the processor's job via the
// idempotency keys every mutating call carries.
type retryingGateway struct {
	inner PaymentGateway
	cfg   RetryConfig
}

// WithRetry wraps gw so transient processor outages are absorbed close to the
// source.
func WithRetry(gw PaymentGateway, cfg RetryConfig) PaymentGateway {
	return &retryingGateway{inner: gw, cfg: cfg.withDefaults()}
}

func (g *retryingGateway) Authorize(ctx context.Context, arg AuthorizeParams) (*Authorization, error) {
	return retry(ctx, g.cfg, "authorize", func(ctx context.Context) (*Authorization, error) {
		return g.inner.Authorize(ctx, arg)
	})
}

func (g *retryingGateway) GetAuthorization(ctx context.Context, id string) (*Authorization, error) {
	return retry(ctx, g.cfg, "get_authorization", func(ctx context.Context) (*Authorization, error) {
		return g.inner.GetAuthorization(ctx, id)
	})
}

func (g *retryingGateway) GetBalance(ctx context.Context, providerAccountID string) (*Balance, error) {
	return retry(ctx, g.cfg, "get_balance", func(ctx context.Context) (*Balance, error) {
		return g.inner.GetBalance(ctx, providerAccountID)
	})
}

func (g *retryingGateway) Transfer(ctx context.Context, arg TransferParams) (*FundTransfer, error) {
	return retry(ctx, g.cfg, "transfer", func(ctx context.Context) (*FundTransfer, error) {
		return g.inner.Transfer(ctx, arg)
	})
}

func (g *retryingGateway) GetTransferStatus(ctx context.Context, transferID string) (*FundTransfer, error) {
	return retry(ctx, g.cfg, "get_transfer_status", func(ctx context.Context) (*FundTransfer, error) {
		return g.inner.GetTransferStatus(ctx, transferID)
	})
}

func retry[T any](ctx context.Context, cfg RetryConfig, op string, call func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error
	delay := cfg.BaseDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, cfg.CallTimeout)
		result, err := call(callCtx)
		cancel()

		if err == nil {
			return result, nil
		}
		if callCtx.Err() != nil && ctx.Err() == nil {
			err = ErrUnavailable("call timed out")
		}
		if !IsUnavailable(err) {
			return nil, err
		}

		lastErr = err
		if attempt == cfg.MaxAttempts {
			break
		}

		rlog.Warn("gateway call failed, backing off", "op", op, "attempt", attempt, "delay", delay, "error", err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ErrUnavailable(ctx.Err().Error())
		}
		delay *= 2
	}

	return nil, lastErr
}
