package traincache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/railboard/railboard/pkg/amtraker"
	"github.com/railboard/railboard/pkg/redis_client"
	"github.com/railboard/railboard/pkg/timetable"
	"github.com/rs/zerolog/log"
)

const cacheExpiry = 30 * time.Minute

// CachedDocument wraps an interchange document with its fetch time. Train
// data may be served stale, the age is rendered onto the timeline so the
// viewer knows.
type CachedDocument struct {
	FetchedAt time.Time          `json:"fetched_at"`
	Document  timetable.Document `json:"document"`
}

func (cached *CachedDocument) MarshalBinary() ([]byte, error) {
	return json.Marshal(cached)
}

func (cached *CachedDocument) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, cached)
}

func (cached *CachedDocument) Age() time.Duration {
	return time.Since(cached.FetchedAt)
}

// TrainCache is the per-route cache of fetched train documents, backed by
// Redis with a fixed expiry. Routes seen once are remembered so the
// background refresher can keep them warm.
type TrainCache struct {
	cache    *cache.Cache[*CachedDocument]
	provider *amtraker.Client

	mutex            sync.Mutex
	registeredRoutes map[string][]string
}

// Setup creates the route cache on the shared Redis connection, so
// redis_client.Connect must have been called first.
func Setup(provider *amtraker.Client) *TrainCache {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(cacheExpiry))

	return &TrainCache{
		cache:            cache.New[*CachedDocument](redisStore),
		provider:         provider,
		registeredRoutes: map[string][]string{},
	}
}

func RouteKey(stations []string) string {
	return strings.Join(timetable.NormaliseStationCodes(stations), "_")
}

func cacheKey(routeKey string) string {
	return fmt.Sprintf("trains:%s", routeKey)
}

// Get returns the train document for a route, serving from cache when
// possible and fetching synchronously on a cold start. Either way the route
// is registered for background refresh.
func (trainCache *TrainCache) Get(ctx context.Context, stations []string) (*CachedDocument, error) {
	stations = timetable.NormaliseStationCodes(stations)
	routeKey := RouteKey(stations)

	trainCache.RegisterRoute(stations)

	cached, err := trainCache.cache.Get(ctx, cacheKey(routeKey))
	if err == nil {
		log.Debug().Str("route", routeKey).Str("age", cached.Age().String()).Msg("Train cache hit")

		return cached, nil
	}

	log.Info().Str("route", routeKey).Msg("Train cache cold start")

	return trainCache.Refresh(ctx, stations)
}

// Refresh fetches fresh data for a route and updates the cache. Provider
// failures propagate, the stale cache entry (if any) stays in place.
func (trainCache *TrainCache) Refresh(ctx context.Context, stations []string) (*CachedDocument, error) {
	stations = timetable.NormaliseStationCodes(stations)
	routeKey := RouteKey(stations)

	document, err := trainCache.provider.FindConnectingTrains(ctx, stations)
	if err != nil {
		return nil, err
	}

	cached := &CachedDocument{
		FetchedAt: time.Now(),
		Document:  *document,
	}

	if err := trainCache.cache.Set(ctx, cacheKey(routeKey), cached); err != nil {
		log.Warn().Err(err).Str("route", routeKey).Msg("Failed to update train cache")
	}

	return cached, nil
}

// RegisterRoute marks a route as one the background refresher should keep
// fresh.
func (trainCache *TrainCache) RegisterRoute(stations []string) {
	stations = timetable.NormaliseStationCodes(stations)

	trainCache.mutex.Lock()
	defer trainCache.mutex.Unlock()

	trainCache.registeredRoutes[RouteKey(stations)] = stations
}

// RegisteredRoutes returns a snapshot of the routes to keep warm.
func (trainCache *TrainCache) RegisteredRoutes() map[string][]string {
	trainCache.mutex.Lock()
	defer trainCache.mutex.Unlock()

	routes := make(map[string][]string, len(trainCache.registeredRoutes))
	for key, stations := range trainCache.registeredRoutes {
		routes[key] = stations
	}

	return routes
}
