package auth

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

type Sweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

// RunSweeper removes expired tokens and sessions every interval until ctx is done.
func RunSweeper(ctx context.Context, interval time.Duration, sweepers ...Sweeper) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for _, s := range sweepers {
				removed, err := s.Sweep(ctx)
				if err != nil {
					log.FromContext(ctx).WithError(err).Warn("Failed to sweep expired credentials")
					continue
				}
				if removed > 0 {
					log.FromContext(ctx).WithField("removed", removed).Debug("Swept expired credentials")
				}
			}
		}
	}
}
