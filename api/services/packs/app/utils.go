package app

import (
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/stripe/stripe-go"

	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

// IsSubscriptionCancelled returns true if the billing subscription is cancelled or past its cancel timestamp
func IsSubscriptionCancelled(sub stripe.Subscription) bool {
	now := time.Now().Unix()
	if sub.CancelAt != 0 && now > sub.CancelAt {
		return true
	}
	if sub.Status == stripe.SubscriptionStatusCanceled {
		return true
	}
	return false
}

// CurrentSubscription picks the single non-cancelled row. Zero rows is not an error;
// more than one is a backend bug that is reported, not resolved.
func CurrentSubscription(userID string, subs []model.UserSubscription) (model.UserSubscription, bool, error) {
	live := lo.Filter(subs, func(s model.UserSubscription, _ int) bool {
		return s.Status != model.SubscriptionCancelled
	})
	switch len(live) {
	case 0:
		return model.UserSubscription{}, false, nil
	case 1:
		return live[0], true, nil
	}
	slog.Error("more than one live subscription", "user_id", userID, "count", len(live),
		"plan_ids", lo.Map(live, func(s model.UserSubscription, _ int) string { return s.PlanID }))
	return model.UserSubscription{}, false, fail(ErrSubscriptionConflict,
		errors.Newf("user %s has %d live subscriptions", userID, len(live)), MsgConflict)
}

// StateOf maps a user's subscription row onto the lifecycle state machine.
func StateOf(sub model.UserSubscription, found bool) SubscriptionState {
	if !found {
		return StateNoSubscription
	}
	switch sub.Status {
	case model.SubscriptionSuspended:
		return StateSuspended
	case model.SubscriptionCancelled:
		return StateCancelled
	default:
		return StateActive
	}
}

// findPlan looks a plan up by ID; the zero Plan means absent.
func findPlan(plans []model.Plan, id string) (model.Plan, bool) {
	if id == "" {
		return model.Plan{}, false
	}
	return lo.Find(plans, func(p model.Plan) bool { return p.ID == id })
}

// defaultPlan is the plan assigned on first activation: the flagged default, else the
// "Pack Découverte" by name, else the cheapest.
func defaultPlan(plans []model.Plan, defaultName string) (model.Plan, bool) {
	if len(plans) == 0 {
		return model.Plan{}, false
	}
	if p, ok := lo.Find(plans, func(p model.Plan) bool { return p.IsDefault }); ok {
		return p, true
	}
	if p, ok := lo.Find(plans, func(p model.Plan) bool { return p.Name == defaultName }); ok {
		return p, true
	}
	return lo.MinBy(plans, func(a, b model.Plan) bool { return a.Price < b.Price }), true
}
