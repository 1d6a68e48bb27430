package stripegw

import (
	stripe "github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/sub"

	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
)

// SetKey configures the Stripe SDK key once during bootstrap.
func SetKey(key string) { stripe.Key = key }

// client is the Stripe SDK-backed implementation of the billing gateway.
type client struct{}

// New returns a Billing gateway backed by the official Stripe SDK.
func New() gw.Billing { return client{} }

func (client) GetSubscription(id string) (stripe.Subscription, error) {
	subPtr, err := sub.Get(id, nil)
	if err != nil {
		return stripe.Subscription{}, err
	}
	if subPtr == nil {
		return stripe.Subscription{}, nil
	}
	return *subPtr, nil
}

// CancelSubscription cancels now, or flags the subscription to lapse at the end of the paid period.
func (client) CancelSubscription(id string, atPeriodEnd bool) error {
	if atPeriodEnd {
		_, err := sub.Update(id, &stripe.SubscriptionParams{CancelAtPeriodEnd: stripe.Bool(true)})
		return err
	}
	_, err := sub.Cancel(id, nil)
	return err
}
