package ai

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"codegen/internal/utils"
)

const (
	initialRetryInterval = 2 * time.Second
	maxRetryInterval     = 30 * time.Second
)

// newRetryBackoff is swapped out by tests to avoid sleeping.
var newRetryBackoff = func() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialRetryInterval
	bo.MaxInterval = maxRetryInterval
	bo.MaxElapsedTime = 0
	return bo
}

// withRetry calls op until it succeeds, fails with a non-transient error, ctx
// ends, or maxRetries retries have been spent.
func withRetry(ctx context.Context, logger *zap.Logger, provider string, maxRetries int, op func() (string, error)) (string, error) {
	var out string
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		res, err := op()
		if err == nil {
			out = res
			return nil
		}
		if !utils.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		logger.Warn("Model call failed, retrying",
			zap.String("provider", provider),
			zap.Int("attempt", attempt),
			zap.Error(err))
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(newRetryBackoff(), uint64(max(maxRetries, 0))), ctx))
	return out, err
}
