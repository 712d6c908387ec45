package refresher

import (
	"context"
	"time"

	"github.com/railboard/railboard/pkg/traincache"
	"github.com/rs/zerolog/log"
)

const defaultInterval = 5 * time.Minute

// Refresher keeps every registered route's cached train data fresh by
// re-fetching it on a fixed interval.
type Refresher struct {
	trainCache *traincache.TrainCache
	interval   time.Duration
}

func New(trainCache *traincache.TrainCache) *Refresher {
	return &Refresher{
		trainCache: trainCache,
		interval:   defaultInterval,
	}
}

// Run refreshes all registered routes until the context is cancelled. The
// first pass runs immediately so warm routes are populated at startup.
func (refresher *Refresher) Run(ctx context.Context) {
	log.Info().Str("interval", refresher.interval.String()).Msg("Starting background train refresh")

	refresher.refreshAll(ctx)

	ticker := time.NewTicker(refresher.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Stopping background train refresh")

			return
		case <-ticker.C:
			refresher.refreshAll(ctx)
		}
	}
}

func (refresher *Refresher) refreshAll(ctx context.Context) {
	for routeKey, stations := range refresher.trainCache.RegisteredRoutes() {
		startTime := time.Now()

		cached, err := refresher.trainCache.Refresh(ctx, stations)
		if err != nil {
			log.Error().Err(err).Str("route", routeKey).Msg("Failed to refresh route")

			continue
		}

		log.Info().
			Str("route", routeKey).
			Int("trains", len(cached.Document.Trains)).
			Str("duration", time.Since(startTime).String()).
			Msg("Refreshed route")
	}
}
