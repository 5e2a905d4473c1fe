// Package resilience wraps flaky outbound calls with bounded retries.
package resilience

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Permanent marks an error as not worth retrying. Use it for rejections
// where the answer will not change on a second attempt.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string { return p.Err.Error() }
func (p *Permanent) Unwrap() error { return p.Err }

// NewPermanent wraps err so Retry gives up immediately.
func NewPermanent(err error) error {
	return &Permanent{Err: err}
}

// RetryConfig holds retry configuration
type RetryConfig struct {
	MaxAttempts         int           `mapstructure:"max_attempts"`
	InitialInterval     time.Duration `mapstructure:"initial_interval"`
	MaxInterval         time.Duration `mapstructure:"max_interval"`
	Multiplier          float64       `mapstructure:"multiplier"`
	RandomizationFactor float64       `mapstructure:"randomization_factor"`
}

// DefaultRetryConfig returns default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:         3,
		InitialInterval:     100 * time.Millisecond,
		MaxInterval:         2 * time.Second,
		Multiplier:          2.0,
		RandomizationFactor: 0.5,
	}
}

// Retry runs fn until it succeeds, returns a Permanent error, the attempts
// are exhausted, or the context ends. Intervals back off exponentially with
// jitter.
func Retry[T any](ctx context.Context, config *RetryConfig, fn func(context.Context) (T, error)) (T, error) {
	var result T
	var lastErr error
	interval := config.InitialInterval

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		result, lastErr = fn(ctx)
		if lastErr == nil {
			return result, nil
		}

		var permanent *Permanent
		if errors.As(lastErr, &permanent) {
			return result, permanent.Err
		}

		if attempt < config.MaxAttempts {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(jitter(interval, config.RandomizationFactor)):
			}

			interval = time.Duration(float64(interval) * config.Multiplier)
			if interval > config.MaxInterval {
				interval = config.MaxInterval
			}
		}
	}

	return result, lastErr
}

func jitter(base time.Duration, factor float64) time.Duration {
	if factor == 0 {
		return base
	}
	delta := factor * float64(base)
	low := float64(base) - delta
	return time.Duration(low + rand.Float64()*(2*delta))
}
