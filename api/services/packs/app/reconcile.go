package app

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

// Reconcile merges plan membership with raw usage into one view per service in all.
// Services outside the plan are always inactive with their counters hidden, even when
// stale usage from a previous plan says otherwise. Available services come first; the
// relative order of all is kept within each group.
func Reconcile(sub model.UserSubscription, all []model.Service, planServiceIDs []string, usage []model.UsageRecord) []EntitlementView {
	byService := lo.KeyBy(usage, func(u model.UsageRecord) string { return u.ServiceID })

	views := lo.Map(all, func(s model.Service, _ int) EntitlementView {
		if !lo.Contains(planServiceIDs, s.ID) {
			return EntitlementView{Service: s, Status: EntitlementInactive}
		}
		u := byService[s.ID]
		status := EntitlementActive
		if u.Status != "" {
			status = EntitlementStatus(u.Status)
		}
		return EntitlementView{
			Service:         s,
			AvailableInPack: true,
			Status:          status,
			Visits:          u.Visits,
			Sales:           u.Sales,
			Revenue:         u.Revenue,
		}
	})

	available := lo.Filter(views, func(v EntitlementView, _ int) bool { return v.AvailableInPack })
	missing := lo.Reject(views, func(v EntitlementView, _ int) bool { return v.AvailableInPack })

	slog.Debug("entitlements reconciled",
		"user_id", sub.UserID,
		"plan_id", sub.PlanID,
		"available", len(available),
		"missing", len(missing),
	)
	return append(available, missing...)
}
