package sweep

import (
	"context"
	"time"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/pkg/logger"
	"github.com/roadassist/dispatch/pkg/metrics"
)

// Sweeper removes requests that were claimed by a garage but never moved
// forward. Retention is measured from the assignment timestamp.
type Sweeper struct {
	requests  outbound.RequestRepository
	retention time.Duration
	interval  time.Duration
	logger    logger.Logger
	metrics   metrics.Metrics
}

func NewSweeper(repo outbound.RequestRepository, retention, interval time.Duration, log logger.Logger, m metrics.Metrics) *Sweeper {
	return &Sweeper{
		requests:  repo,
		retention: retention,
		interval:  interval,
		logger:    log,
		metrics:   m,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) error {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.retention)
	removed, err := s.requests.DeleteStaleAssigned(ctx, cutoff)
	if err != nil {
		s.logger.Error(ctx, "stale sweep failed", logger.WithError(err))
		return
	}
	if removed > 0 {
		s.metrics.RecordStaleRequestsSwept(int(removed))
		s.logger.Info(ctx, "stale assigned requests removed",
			logger.Int64("count", removed),
			logger.String("cutoff", cutoff.Format(time.RFC3339)),
		)
	}
}
