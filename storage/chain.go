package storage

import (
	"context"

	"golang.org/x/exp/slog"
)

// Chain tries each store in order until one accepts the upload. It is how
// the remote backend degrades to local storage: a Cloudinary outage costs
// the CDN URL, not the submission.
type Chain struct {
	stores []Store
	logger *slog.Logger
}

// NewChain returns a store that falls back through stores in order.
func NewChain(logger *slog.Logger, stores ...Store) *Chain {
	return &Chain{stores: stores, logger: logger}
}

func (c *Chain) Upload(ctx context.Context, data []byte, path string) (Result, error) {
	var lastErr error
	for _, s := range c.stores {
		res, err := s.Upload(ctx, data, path)
		if err == nil {
			return res, nil
		}
		c.logger.Warn("storage backend failed, trying next", "path", path, "err", err)
		lastErr = err
	}
	return Result{}, lastErr
}

// Delete is fanned out to every backend; the file lives in whichever one
// accepted the upload and the others report not-found, which is ignored.
func (c *Chain) Delete(ctx context.Context, path string) error {
	var lastErr error
	for _, s := range c.stores {
		if err := s.Delete(ctx, path); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
