package gateway

import (
	"context"

	"github.com/cockroachdb/errors"
	stripe "github.com/stripe/stripe-go"

	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

//go:generate mockgen -source=gateway.go -destination=mock/mock_gateway.go

// ErrNoSession is returned by a SessionVerifier when no live session backs the token.
var ErrNoSession = errors.New("no live session")

// Session is the authenticated user as confirmed by the auth backend.
type Session struct {
	UserID      string
	Email       string
	AccessToken string
}

// SessionVerifier confirms that an access token still belongs to a live session.
type SessionVerifier interface {
	VerifySession(ctx context.Context, accessToken string) (Session, error)
}

// ChangeRequest is the JSON body of the remote change endpoint.
type ChangeRequest struct {
	PlanID     string `json:"planId"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

// ChangeResponse is the decoded reply of the remote change endpoint.
type ChangeResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message,omitempty"`
	RequiresPayment bool   `json:"requiresPayment,omitempty"`
	CheckoutURL     string `json:"checkoutUrl,omitempty" validate:"omitempty,url"`
	CreditApplied   int64  `json:"creditApplied,omitempty"`
}

// ChangeFunction performs the authoritative pack change server-side.
type ChangeFunction interface {
	ChangePack(ctx context.Context, accessToken string, req ChangeRequest) (ChangeResponse, error)
}

// Catalog exposes the reference data and the per-user reads the dashboard needs.
type Catalog interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	ListPlans(ctx context.Context) ([]model.Plan, error)
	UserSubscriptions(ctx context.Context, userID string) ([]model.UserSubscription, error)
	UserUsage(ctx context.Context, userID string) ([]model.UsageRecord, error)
}

// Billing abstracts the payment provider operations needed for cancellation.
// Methods return values (not pointers) to keep the app layer free of SDK pointers.
type Billing interface {
	GetSubscription(id string) (stripe.Subscription, error)
	CancelSubscription(id string, atPeriodEnd bool) error
}

// Navigator sends the user agent to an external page (checkout).
type Navigator interface {
	Navigate(ctx context.Context, url string) error
}
