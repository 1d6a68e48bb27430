package pgcatalog

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"

	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

// catalog reads the packs schema directly, bypassing PostgREST.
type catalog struct {
	db *sql.DB
}

// New returns a Catalog over an initialized connection pool.
func New(db *sql.DB) gw.Catalog { return catalog{db: db} }

const (
	selectServices = `SELECT id, name, type, COALESCE(base_url, ''), active FROM services ORDER BY name`

	selectPacks = `SELECT id, name, price, COALESCE(currency, ''), billing_period, rank, COALESCE(service_ids, '{}'), is_default
FROM packs ORDER BY rank, price`

	selectUserPacks = `SELECT user_id, pack_id, status, activated_at, expires_at, next_billing_at, stripe_subscription_id
FROM user_packs WHERE user_id = $1`

	selectUserServices = `SELECT service_id, COALESCE(status, ''), visits, sales, revenue
FROM user_services WHERE user_id = $1`
)

func (c catalog) ListServices(ctx context.Context) ([]model.Service, error) {
	rows, err := c.db.QueryContext(ctx, selectServices)
	if err != nil {
		return nil, errors.Wrap(err, "query services")
	}
	defer rows.Close()

	var out []model.Service
	for rows.Next() {
		var s model.Service
		var typ string
		if err := rows.Scan(&s.ID, &s.Name, &typ, &s.BaseURL, &s.Active); err != nil {
			return nil, errors.Wrap(err, "scan service")
		}
		var known bool
		if s.Type, known = model.ServiceTypeOrOther(typ); !known {
			slog.Warn("service with unknown type listed as other", "service_id", s.ID, "type", typ)
		}
		out = append(out, s)
	}
	return out, errors.Wrap(rows.Err(), "iterate services")
}

func (c catalog) ListPlans(ctx context.Context) ([]model.Plan, error) {
	rows, err := c.db.QueryContext(ctx, selectPacks)
	if err != nil {
		return nil, errors.Wrap(err, "query packs")
	}
	defer rows.Close()

	var out []model.Plan
	for rows.Next() {
		var p model.Plan
		var period string
		var serviceIDs pq.StringArray
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Currency, &period, &p.Rank, &serviceIDs, &p.IsDefault); err != nil {
			return nil, errors.Wrap(err, "scan pack")
		}
		if p.BillingPeriod, err = model.ParseBillingPeriod(period); err != nil {
			return nil, errors.Wrapf(err, "pack %q", p.ID)
		}
		p.ServiceIDs = []string(serviceIDs)
		out = append(out, p)
	}
	return out, errors.Wrap(rows.Err(), "iterate packs")
}

func (c catalog) UserSubscriptions(ctx context.Context, userID string) ([]model.UserSubscription, error) {
	rows, err := c.db.QueryContext(ctx, selectUserPacks, userID)
	if err != nil {
		return nil, errors.Wrap(err, "query user_packs")
	}
	defer rows.Close()

	var out []model.UserSubscription
	for rows.Next() {
		var s model.UserSubscription
		var status string
		var activated, expires, nextBilling pq.NullTime
		var stripeID sql.NullString
		if err := rows.Scan(&s.UserID, &s.PlanID, &status, &activated, &expires, &nextBilling, &stripeID); err != nil {
			return nil, errors.Wrap(err, "scan user pack")
		}
		if s.Status, err = model.ParseSubscriptionStatus(status); err != nil {
			return nil, errors.Wrapf(err, "user pack for %s", userID)
		}
		s.ActivatedAt = activated.Time
		s.ExpiresAt = expires.Time
		s.NextBillingAt = nextBilling.Time
		s.StripeSubscriptionID = stripeID.String
		out = append(out, s)
	}
	return out, errors.Wrap(rows.Err(), "iterate user_packs")
}

func (c catalog) UserUsage(ctx context.Context, userID string) ([]model.UsageRecord, error) {
	rows, err := c.db.QueryContext(ctx, selectUserServices, userID)
	if err != nil {
		return nil, errors.Wrap(err, "query user_services")
	}
	defer rows.Close()

	var out []model.UsageRecord
	for rows.Next() {
		var u model.UsageRecord
		var status string
		if err := rows.Scan(&u.ServiceID, &status, &u.Visits, &u.Sales, &u.Revenue); err != nil {
			return nil, errors.Wrap(err, "scan user service")
		}
		if u.Status, err = model.ParseUsageStatus(status); err != nil {
			slog.Warn("ignoring unknown usage status", "user_id", userID, "service_id", u.ServiceID, "status", status)
		}
		out = append(out, u)
	}
	return out, errors.Wrap(rows.Err(), "iterate user_services")
}
