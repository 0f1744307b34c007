// Package retry backs the remote registry loader with bounded retry
// policies.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Exponential retries fn with exponential backoff until it succeeds,
// the context is canceled or maxElapsed passes.
func Exponential(ctx context.Context, maxElapsed time.Duration, fn func() error) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 250 * time.Millisecond
	exp.Multiplier = 2.0
	exp.MaxInterval = 5 * time.Second
	exp.RandomizationFactor = 0.5
	exp.Reset()

	type unit struct{}
	op := func() (unit, error) {
		return unit{}, fn()
	}

	_, err := backoff.Retry(
		ctx,
		op,
		backoff.WithBackOff(exp),
		backoff.WithMaxElapsedTime(maxElapsed),
	)
	return err
}

// Fast retries fn up to three times with a short fixed delay. Suited
// for local backends where waiting longer will not help.
func Fast(ctx context.Context, fn func() error) error {
	const (
		maxAttempts = 3
		delay       = 100 * time.Millisecond
	)

	var err error
	for i := 0; i < maxAttempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
