package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// CancelPack ends the caller's paid subscription, immediately or at the end of the period.
// The subscription row itself is updated by the billing webhook; the client only observes it later.
func (s serviceImpl) CancelPack(ctx context.Context, id Identity, atPeriodEnd bool) error {
	sess, err := s.deps.Sessions.VerifySession(ctx, id.AccessToken)
	if err != nil {
		return fail(ErrSessionExpired, err, MsgSessionExpired)
	}
	subs, err := s.deps.Catalog.UserSubscriptions(ctx, sess.UserID)
	if err != nil {
		return fail(ErrCatalog, err, MsgCatalogUnavailable)
	}
	sub, found, err := CurrentSubscription(sess.UserID, subs)
	if err != nil {
		return err
	}
	if !found || sub.StripeSubscriptionID == "" {
		return fail(ErrNoPaidSubscription, nil, MsgNoPaidSubscription)
	}
	if s.deps.Billing == nil {
		return fail(ErrGateway, errors.New("billing not configured"), MsgCancelFailed)
	}

	billingSub, err := s.deps.Billing.GetSubscription(sub.StripeSubscriptionID)
	if err != nil {
		return fail(ErrGateway, errors.Wrap(err, "error getting subscription"), MsgCancelFailed)
	}
	if IsSubscriptionCancelled(billingSub) {
		slog.Info("subscription already cancelled", "user_id", sess.UserID, "stripe_subscription_id", sub.StripeSubscriptionID)
		return nil
	}
	if err := s.deps.Billing.CancelSubscription(sub.StripeSubscriptionID, atPeriodEnd); err != nil {
		return fail(ErrGateway, errors.Wrap(err, "error cancelling subscription"), MsgCancelFailed)
	}
	slog.Info("subscription cancelled", "user_id", sess.UserID, "plan_id", sub.PlanID, "at_period_end", atPeriodEnd)

	plans, err := s.deps.Catalog.ListPlans(ctx)
	if err != nil {
		slog.Warn("failed to resolve cancelled plan name", "user_id", sess.UserID, "err", err)
	}
	plan, _ := findPlan(plans, sub.PlanID)
	msg := "Votre abonnement a été résilié."
	if atPeriodEnd {
		msg = "Votre abonnement sera résilié à la fin de la période en cours."
	}
	s.publish(Notification{
		ID:        uuid.NewString(),
		UserID:    sess.UserID,
		Type:      NotificationSuccess,
		Title:     TitleCancelled,
		Message:   msg,
		PackName:  plan.Name,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}
