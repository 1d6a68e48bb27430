package cached

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"github.com/tbeaudouin05/packchange/api/metrics"
	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

const (
	servicesKey = "services"
	plansKey    = "packs"
)

// Catalog caches reference data (services, plans) in process. Per-user reads always
// go to the backend: they change on every pack change.
type Catalog struct {
	next  gw.Catalog
	cache *cache.Cache
}

func New(next gw.Catalog, ttl time.Duration) *Catalog {
	return &Catalog{next: next, cache: cache.New(ttl, 2*ttl)}
}

func (c *Catalog) ListServices(ctx context.Context) ([]model.Service, error) {
	if v, ok := c.cache.Get(servicesKey); ok {
		metrics.ObserveCache(servicesKey, true)
		return append([]model.Service(nil), v.([]model.Service)...), nil
	}
	metrics.ObserveCache(servicesKey, false)
	services, err := c.next.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(servicesKey, append([]model.Service(nil), services...))
	return services, nil
}

func (c *Catalog) ListPlans(ctx context.Context) ([]model.Plan, error) {
	if v, ok := c.cache.Get(plansKey); ok {
		metrics.ObserveCache(plansKey, true)
		return clonePlans(v.([]model.Plan)), nil
	}
	metrics.ObserveCache(plansKey, false)
	plans, err := c.next.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(plansKey, clonePlans(plans))
	return plans, nil
}

func (c *Catalog) UserSubscriptions(ctx context.Context, userID string) ([]model.UserSubscription, error) {
	return c.next.UserSubscriptions(ctx, userID)
}

func (c *Catalog) UserUsage(ctx context.Context, userID string) ([]model.UsageRecord, error) {
	return c.next.UserUsage(ctx, userID)
}

// Invalidate drops the cached reference data.
func (c *Catalog) Invalidate() {
	c.cache.Flush()
}

func clonePlans(plans []model.Plan) []model.Plan {
	return lo.Map(plans, func(p model.Plan, _ int) model.Plan {
		p.ServiceIDs = append([]string(nil), p.ServiceIDs...)
		return p
	})
}
