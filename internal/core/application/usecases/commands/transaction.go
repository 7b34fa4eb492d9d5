package commands

import (
	"context"
	"errors"
	"time"

	"dealership/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds how often a unit of work is replayed after a transient
// storage failure such as a serialization failure or a deadlock.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      3,
		InitialInterval: 25 * time.Millisecond,
		MaxInterval:     250 * time.Millisecond,
	}
}

// NoRetry runs every unit of work exactly once.
func NoRetry() RetryPolicy {
	return RetryPolicy{}
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		exp.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		exp.MaxInterval = p.MaxInterval
	}
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, p.MaxRetries), ctx)
}

// inTransaction runs fn inside a fresh unit of work and commits it.
// Only errs.ErrTransient failures are retried, each time with a new unit of
// work; every other error is returned as is.
func inTransaction[U TxManager](
	ctx context.Context,
	policy RetryPolicy,
	create func() U,
	fn func(uow U) error,
) error {
	attempt := func() error {
		uow := create()
		if err := uow.Begin(ctx); err != nil {
			return retryable(err)
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err := fn(uow); err != nil {
			return retryable(err)
		}

		return retryable(uow.Commit(ctx))
	}

	return backoff.Retry(attempt, policy.backOff(ctx))
}

func retryable(err error) error {
	if err == nil || errors.Is(err, errs.ErrTransient) {
		return err
	}
	return backoff.Permanent(err)
}
