// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

var (
	defaultTimeout         = 30 * time.Second
	defaultInitialInterval = 500 * time.Millisecond
)

// Policy bounds every remote call: each attempt gets its own timeout and failed attempts
// are retried with exponential backoff.
type Policy struct {
	Timeout         time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
	Breaker         *Breaker
}

func DefaultPolicy() Policy {
	return Policy{
		Timeout:         defaultTimeout,
		MaxRetries:      3,
		InitialInterval: defaultInitialInterval,
		MaxElapsedTime:  2 * time.Minute,
	}
}

// WithBreaker returns a copy of the policy whose attempts pass through b.
func (p Policy) WithBreaker(b *Breaker) Policy {
	p.Breaker = b
	return p
}

func (p Policy) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	if b.InitialInterval == 0 {
		b.InitialInterval = defaultInitialInterval
	}
	b.MaxElapsedTime = p.MaxElapsedTime
	return backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx)
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func isPermanent(err error) bool {
	var permanent *backoff.PermanentError
	return errors.As(err, &permanent)
}

// Do runs fn under the policy. Errors wrapped with Permanent stop the retries and are
// returned unwrapped.
func Do[T any](ctx context.Context, p Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	attempt := 0
	return backoff.RetryNotifyWithData(
		func() (T, error) {
			attempt++
			attemptCtx, cancel := ctx, context.CancelFunc(func() {})
			if p.Timeout > 0 {
				attemptCtx, cancel = context.WithTimeout(ctx, p.Timeout)
			}
			defer cancel()

			if p.Breaker != nil {
				return guard(p.Breaker, func() (T, error) { return fn(attemptCtx) })
			}
			return fn(attemptCtx)
		},
		p.newBackOff(ctx),
		func(err error, next time.Duration) {
			log.Warn().Err(err).Str("op", op).Int("attempt", attempt).Dur("retryIn", next).Msgf("Retrying %s", op)
		},
	)
}

// Breaker stops hammering an endpoint after consecutive failures until openTimeout passes.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

func NewBreaker(name string, maxFailures uint32, openTimeout time.Duration) *Breaker {
	return &Breaker{
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    name,
			Timeout: openTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state changed")
			},
		}),
	}
}

func (b *Breaker) Open() bool {
	return b.cb.State() == gobreaker.StateOpen
}

// guard runs fn through the breaker. Permanent errors are caller mistakes, not endpoint
// failures, and do not count towards tripping it.
func guard[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var value T
	var permanent error
	_, err := b.cb.Execute(func() (interface{}, error) {
		v, err := fn()
		value = v
		if isPermanent(err) {
			permanent = err
			return nil, nil
		}
		return nil, err
	})
	if permanent != nil {
		return value, permanent
	}
	return value, err
}
