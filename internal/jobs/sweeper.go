// Package jobs hosts the engine's background maintenance tasks.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/dukerupert/vanir/internal/domain"
)

// CartSweeper periodically drops guest carts that have been idle longer
// than their TTL, so abandoned sessions do not grow memory without bound.
type CartSweeper struct {
	carts    domain.CartService
	idleTTL  time.Duration
	interval time.Duration
	logger   *slog.Logger
}

// NewCartSweeper creates a sweeper for the given cart service.
func NewCartSweeper(carts domain.CartService, idleTTL, interval time.Duration, logger *slog.Logger) *CartSweeper {
	return &CartSweeper{
		carts:    carts,
		idleTTL:  idleTTL,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps on a fixed interval until ctx is cancelled.
// Call in a goroutine.
func (s *CartSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.carts.SweepIdle(s.idleTTL); removed > 0 {
				s.logger.Info("swept idle carts", slog.Int("removed", removed))
			}
		}
	}
}
