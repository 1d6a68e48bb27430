package app

import (
	"context"
	"log/slog"
	"sort"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

// Dashboard verifies the caller's session and builds the pack section of the dashboard.
func (s serviceImpl) Dashboard(ctx context.Context, id Identity) (DashboardView, error) {
	sess, err := s.deps.Sessions.VerifySession(ctx, id.AccessToken)
	if err != nil {
		return DashboardView{}, fail(ErrSessionExpired, err, MsgSessionExpired)
	}
	return s.loadDashboard(ctx, sess.UserID)
}

// loadDashboard fetches the four reads concurrently and reconciles them.
func (s serviceImpl) loadDashboard(ctx context.Context, userID string) (DashboardView, error) {
	var (
		services []model.Service
		plans    []model.Plan
		subs     []model.UserSubscription
		usage    []model.UsageRecord
	)

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		services, err = s.deps.Catalog.ListServices(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		plans, err = s.deps.Catalog.ListPlans(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		subs, err = s.deps.Catalog.UserSubscriptions(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		usage, err = s.deps.Catalog.UserUsage(ctx, userID)
		return err
	})
	if err := p.Wait(); err != nil {
		slog.Error("failed to load dashboard", "user_id", userID, "err", err)
		return DashboardView{}, fail(ErrCatalog, err, MsgCatalogUnavailable)
	}

	sub, found, err := CurrentSubscription(userID, subs)
	if err != nil {
		return DashboardView{}, err
	}
	current, _ := findPlan(plans, sub.PlanID)

	return DashboardView{
		UserID:       userID,
		State:        StateOf(sub, found),
		Subscription: sub,
		CurrentPlan:  current,
		Plans:        planOptions(current, plans),
		Entitlements: Reconcile(sub, services, current.ServiceIDs, usage),
	}, nil
}

// planOptions orders plans by rank then price and labels each against the current plan.
func planOptions(current model.Plan, plans []model.Plan) []PlanOption {
	sorted := append([]model.Plan(nil), plans...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rank != sorted[j].Rank {
			return sorted[i].Rank < sorted[j].Rank
		}
		return sorted[i].Price < sorted[j].Price
	})
	return lo.Map(sorted, func(p model.Plan, _ int) PlanOption {
		ct := Classify(current, p)
		isCurrent := current.ID != "" && current.ID == p.ID
		return PlanOption{Plan: p, ChangeType: ct, Label: ButtonLabel(ct, isCurrent), Current: isCurrent}
	})
}
