// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// StartPendingResolutionJob calls resolve every interval until ctx is done.
// A failed run is logged and retried on the next tick.
func StartPendingResolutionJob(ctx context.Context, interval time.Duration, resolve func(ctx context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			log.Debug().Msg("Starting pending transaction resolution")
			if err := resolve(ctx); err != nil {
				log.Err(err).Msg("pending transaction resolution failed")
			}
		}
	}
}
