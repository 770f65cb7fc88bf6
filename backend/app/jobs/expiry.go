// Package jobs holds background work that runs next to the HTTP server.
package jobs

import (
	"context"
	"time"

	"news-app/backend/global"
)

// Sweeper is the part of the news service the expiry job drives.
type Sweeper interface {
	SweepExpired() (int, error)
}

// ExpirySweeper soft deletes expired news on a fixed interval. Listings
// sweep on their own as well; this keeps the flag current between reads.
type ExpirySweeper struct {
	News     Sweeper
	Interval time.Duration
}

// Run sweeps once immediately and then on every tick until ctx is done. A
// non-positive interval disables the job.
func (s *ExpirySweeper) Run(ctx context.Context) {
	if s.Interval <= 0 {
		global.Logger.Info().Msg("expiry sweeper disabled")
		return
	}
	s.sweep()
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *ExpirySweeper) sweep() {
	n, err := s.News.SweepExpired()
	if err != nil {
		global.Logger.Error().Err(err).Msg("expiry sweep failed")
		return
	}
	global.Logger.Debug().Int("marked", n).Msg("expiry sweep done")
}
