package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tbeaudouin05/packchange/api/metrics"
	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

// Service defines the business operations for the packs domain.
type Service interface {
	ChangePack(ctx context.Context, in ChangePackInput) ChangeOutcome
	AssignDefaultPack(ctx context.Context, id Identity, urls ReturnURLs, nav gw.Navigator) ChangeOutcome
	CancelPack(ctx context.Context, id Identity, atPeriodEnd bool) error
	Dashboard(ctx context.Context, id Identity) (DashboardView, error)
}

// Publisher receives every notification produced by the service.
type Publisher interface {
	Publish(n Notification)
}

// Dependencies are the collaborators a Service is built from. Billing and Publisher may be nil.
type Dependencies struct {
	Sessions        gw.SessionVerifier
	Changes         gw.ChangeFunction
	Catalog         gw.Catalog
	Billing         gw.Billing
	Publisher       Publisher
	DefaultCurrency string
	DefaultPackName string
	// PublicBaseURL fills in return URLs the caller left empty.
	PublicBaseURL string
}

// ChangePackInput is one user action on a plan's button.
type ChangePackInput struct {
	Identity     Identity
	TargetPlanID string
	ReturnURLs   ReturnURLs
	Navigator    gw.Navigator
}

type serviceImpl struct {
	deps    Dependencies
	invoker Invoker
}

func NewService(deps Dependencies) Service {
	return serviceImpl{deps: deps, invoker: NewInvoker(deps.Sessions, deps.Changes)}
}

// ChangePack runs validate -> classify -> invoke -> interpret, publishes the notification and,
// on an immediate success, re-reads the dashboard. Local state only ever follows a confirmed change.
func (s serviceImpl) ChangePack(ctx context.Context, in ChangePackInput) ChangeOutcome {
	plans, err := s.deps.Catalog.ListPlans(ctx)
	if err != nil {
		slog.Error("failed to list plans", "user_id", in.Identity.UserID, "err", err)
		return s.finish(ctx, in.Identity, errorResult(fail(ErrCatalog, err, MsgCatalogUnavailable)), model.Plan{})
	}
	target, _ := findPlan(plans, in.TargetPlanID)

	var current model.Plan
	if in.Identity.UserID != "" {
		subs, err := s.deps.Catalog.UserSubscriptions(ctx, in.Identity.UserID)
		if err != nil {
			slog.Error("failed to read subscription", "user_id", in.Identity.UserID, "err", err)
			return s.finish(ctx, in.Identity, errorResult(fail(ErrCatalog, err, MsgCatalogUnavailable)), target)
		}
		sub, found, err := CurrentSubscription(in.Identity.UserID, subs)
		if err != nil {
			return s.finish(ctx, in.Identity, errorResult(err), target)
		}
		if found {
			current, _ = findPlan(plans, sub.PlanID)
		}
	}

	if v := Validate(current, target, in.Identity); !v.Valid {
		slog.Info("pack change refused locally", "user_id", in.Identity.UserID, "plan_id", in.TargetPlanID, "reason", v.Reason)
		return s.finish(ctx, in.Identity, errorResult(validationError(v)), target)
	}
	in.ReturnURLs = s.returnURLs(in.ReturnURLs)
	if err := structValidator.Struct(in.ReturnURLs); err != nil {
		return s.finish(ctx, in.Identity, errorResult(fail(ErrValidation, err, MsgChangeFailed)), target)
	}

	changeType := Classify(current, target)
	slog.Info("requesting pack change",
		"user_id", in.Identity.UserID,
		"from_plan_id", current.ID,
		"to_plan_id", target.ID,
		"change_type", changeType,
	)
	res := s.invoker.Invoke(ctx, in.Identity, target.ID, in.ReturnURLs, in.Navigator)
	res.ChangeType = changeType
	return s.finish(ctx, in.Identity, res, target)
}

// finish records, notifies and, on immediate success, refreshes the dashboard.
func (s serviceImpl) finish(ctx context.Context, id Identity, res ChangeResult, target model.Plan) ChangeOutcome {
	metrics.ObserveChange(string(res.ChangeType), string(res.Kind))
	out := ChangeOutcome{Result: res}

	n, ok := Interpret(res, target.Name, s.currencyOf(target))
	if ok {
		n.UserID = id.UserID
		out.Notification, out.Notified = n, true
		s.publish(n)
	}

	if res.Kind == ResultImmediateSuccess {
		// The change is committed; a failed re-read only costs the caller a refresh.
		view, err := s.loadDashboard(context.WithoutCancel(ctx), id.UserID)
		if err != nil {
			slog.Warn("dashboard refresh after pack change failed", "user_id", id.UserID, "err", err)
		} else {
			out.Dashboard, out.Refreshed = view, true
		}
	}
	return out
}

// AssignDefaultPack gives a user without a subscription the default plan through the regular change flow.
func (s serviceImpl) AssignDefaultPack(ctx context.Context, id Identity, urls ReturnURLs, nav gw.Navigator) ChangeOutcome {
	if id.UserID == "" {
		return s.finish(ctx, id, errorResult(validationError(Validation{Reason: ReasonMustAuthenticate})), model.Plan{})
	}
	subs, err := s.deps.Catalog.UserSubscriptions(ctx, id.UserID)
	if err != nil {
		return s.finish(ctx, id, errorResult(fail(ErrCatalog, err, MsgCatalogUnavailable)), model.Plan{})
	}
	sub, found, err := CurrentSubscription(id.UserID, subs)
	if err != nil {
		return s.finish(ctx, id, errorResult(err), model.Plan{})
	}
	if found {
		slog.Debug("user already has a pack", "user_id", id.UserID, "plan_id", sub.PlanID)
		return ChangeOutcome{Result: ChangeResult{Kind: ResultImmediateSuccess}}
	}

	plans, err := s.deps.Catalog.ListPlans(ctx)
	if err != nil {
		return s.finish(ctx, id, errorResult(fail(ErrCatalog, err, MsgCatalogUnavailable)), model.Plan{})
	}
	plan, ok := defaultPlan(plans, s.deps.DefaultPackName)
	if !ok {
		return s.finish(ctx, id, errorResult(fail(ErrPlanNotFound, nil, MsgPackNotFound)), model.Plan{})
	}
	slog.Info("assigning default pack", "user_id", id.UserID, "plan_id", plan.ID, "plan_name", plan.Name)
	return s.ChangePack(ctx, ChangePackInput{Identity: id, TargetPlanID: plan.ID, ReturnURLs: urls, Navigator: nav})
}

// returnURLs defaults missing checkout return URLs to the dashboard.
func (s serviceImpl) returnURLs(urls ReturnURLs) ReturnURLs {
	base := strings.TrimRight(s.deps.PublicBaseURL, "/")
	if base == "" {
		return urls
	}
	if urls.SuccessURL == "" {
		urls.SuccessURL = base + "/dashboard?success=true"
	}
	if urls.CancelURL == "" {
		urls.CancelURL = base + "/dashboard?canceled=true"
	}
	return urls
}

func (s serviceImpl) currencyOf(p model.Plan) string {
	if p.Currency != "" {
		return p.Currency
	}
	return s.deps.DefaultCurrency
}

func (s serviceImpl) publish(n Notification) {
	metrics.ObserveNotification(string(n.Type))
	if s.deps.Publisher == nil {
		return
	}
	s.deps.Publisher.Publish(n)
}
