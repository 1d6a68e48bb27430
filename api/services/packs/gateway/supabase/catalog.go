package supabasegw

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

var rowValidator = validator.New()

type serviceRow struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type"`
	BaseURL string `json:"base_url"`
	Active  bool   `json:"active"`
}

type packRow struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Price         int64    `json:"price" validate:"gte=0"`
	Currency      string   `json:"currency"`
	BillingPeriod string   `json:"billing_period"`
	Rank          int      `json:"rank"`
	ServiceIDs    []string `json:"service_ids"`
	IsDefault     bool     `json:"is_default"`
}

type userPackRow struct {
	UserID               string     `json:"user_id"`
	PackID               string     `json:"pack_id" validate:"required"`
	Status               string     `json:"status"`
	ActivatedAt          *time.Time `json:"activated_at"`
	ExpiresAt            *time.Time `json:"expires_at"`
	NextBillingAt        *time.Time `json:"next_billing_at"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
}

type userServiceRow struct {
	ServiceID string `json:"service_id" validate:"required"`
	Status    string `json:"status"`
	Visits    int64  `json:"visits"`
	Sales     int64  `json:"sales"`
	Revenue   int64  `json:"revenue"`
}

func (g *Gateway) ListServices(ctx context.Context) ([]model.Service, error) {
	var rows []serviceRow
	if err := g.service.DB.From("services").Select("*").Execute(&rows); err != nil {
		return nil, errors.Wrap(err, "select services")
	}
	out := make([]model.Service, 0, len(rows))
	for _, r := range rows {
		if err := rowValidator.Struct(r); err != nil {
			return nil, errors.Wrapf(err, "service row %q", r.ID)
		}
		t, known := model.ServiceTypeOrOther(r.Type)
		if !known {
			slog.Warn("service with unknown type listed as other", "service_id", r.ID, "type", r.Type)
		}
		out = append(out, model.Service{ID: r.ID, Name: r.Name, Type: t, BaseURL: r.BaseURL, Active: r.Active})
	}
	return out, nil
}

func (g *Gateway) ListPlans(ctx context.Context) ([]model.Plan, error) {
	var rows []packRow
	if err := g.service.DB.From("packs").Select("*").Execute(&rows); err != nil {
		return nil, errors.Wrap(err, "select packs")
	}
	out := make([]model.Plan, 0, len(rows))
	for _, r := range rows {
		if err := rowValidator.Struct(r); err != nil {
			return nil, errors.Wrapf(err, "pack row %q", r.ID)
		}
		period, err := model.ParseBillingPeriod(r.BillingPeriod)
		if err != nil {
			return nil, errors.Wrapf(err, "pack row %q", r.ID)
		}
		out = append(out, model.Plan{
			ID:            r.ID,
			Name:          r.Name,
			Price:         r.Price,
			Currency:      r.Currency,
			BillingPeriod: period,
			Rank:          r.Rank,
			ServiceIDs:    r.ServiceIDs,
			IsDefault:     r.IsDefault,
		})
	}
	return out, nil
}

func (g *Gateway) UserSubscriptions(ctx context.Context, userID string) ([]model.UserSubscription, error) {
	var rows []userPackRow
	if err := g.service.DB.From("user_packs").Select("*").Eq("user_id", userID).Execute(&rows); err != nil {
		return nil, errors.Wrap(err, "select user_packs")
	}
	out := make([]model.UserSubscription, 0, len(rows))
	for _, r := range rows {
		if err := rowValidator.Struct(r); err != nil {
			return nil, errors.Wrapf(err, "user pack row for %s", userID)
		}
		status, err := model.ParseSubscriptionStatus(r.Status)
		if err != nil {
			return nil, errors.Wrapf(err, "user pack row for %s", userID)
		}
		out = append(out, model.UserSubscription{
			UserID:               userID,
			PlanID:               r.PackID,
			Status:               status,
			ActivatedAt:          timeOrZero(r.ActivatedAt),
			ExpiresAt:            timeOrZero(r.ExpiresAt),
			NextBillingAt:        timeOrZero(r.NextBillingAt),
			StripeSubscriptionID: stringOrEmpty(r.StripeSubscriptionID),
		})
	}
	return out, nil
}

func (g *Gateway) UserUsage(ctx context.Context, userID string) ([]model.UsageRecord, error) {
	var rows []userServiceRow
	if err := g.service.DB.From("user_services").Select("*").Eq("user_id", userID).Execute(&rows); err != nil {
		return nil, errors.Wrap(err, "select user_services")
	}
	out := make([]model.UsageRecord, 0, len(rows))
	for _, r := range rows {
		if err := rowValidator.Struct(r); err != nil {
			return nil, errors.Wrapf(err, "user service row for %s", userID)
		}
		status, err := model.ParseUsageStatus(r.Status)
		if err != nil {
			slog.Warn("ignoring unknown usage status", "user_id", userID, "service_id", r.ServiceID, "status", r.Status)
		}
		out = append(out, model.UsageRecord{
			ServiceID: r.ServiceID,
			Status:    status,
			Visits:    r.Visits,
			Sales:     r.Sales,
			Revenue:   r.Revenue,
		})
	}
	return out, nil
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
