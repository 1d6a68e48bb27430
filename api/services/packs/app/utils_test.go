package app

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go"

	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

func Test_IsSubscriptionCancelled(t *testing.T) {
	now := time.Now().Unix()
	assert.True(t, IsSubscriptionCancelled(stripe.Subscription{Status: stripe.SubscriptionStatusCanceled}))
	assert.True(t, IsSubscriptionCancelled(stripe.Subscription{CancelAt: now - 3600}))
	assert.False(t, IsSubscriptionCancelled(stripe.Subscription{CancelAt: now + 3600, Status: stripe.SubscriptionStatusActive}))
	assert.False(t, IsSubscriptionCancelled(stripe.Subscription{Status: stripe.SubscriptionStatusActive}))
}

func Test_CurrentSubscription(t *testing.T) {
	_, found, err := CurrentSubscription("u1", nil)
	assert.NoError(t, err)
	assert.False(t, found)

	sub, found, err := CurrentSubscription("u1", []model.UserSubscription{
		{PlanID: "free", Status: model.SubscriptionCancelled},
		{PlanID: "basic", Status: model.SubscriptionSuspended},
	})
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "basic", sub.PlanID)

	_, _, err = CurrentSubscription("u1", []model.UserSubscription{
		{PlanID: "basic", Status: model.SubscriptionActive},
		{PlanID: "pro", Status: model.SubscriptionActive},
	})
	assert.True(t, errors.Is(err, ErrSubscriptionConflict))
}

func Test_StateOf(t *testing.T) {
	assert.Equal(t, StateNoSubscription, StateOf(model.UserSubscription{}, false))
	assert.Equal(t, StateActive, StateOf(model.UserSubscription{Status: model.SubscriptionActive}, true))
	assert.Equal(t, StateSuspended, StateOf(model.UserSubscription{Status: model.SubscriptionSuspended}, true))
	assert.Equal(t, StateCancelled, StateOf(model.UserSubscription{Status: model.SubscriptionCancelled}, true))
}

func Test_DefaultPlan(t *testing.T) {
	p, ok := defaultPlan([]model.Plan{proPlan, freePlan, basicPlan}, "Pack Découverte")
	assert.True(t, ok)
	assert.Equal(t, "free", p.ID)

	unflagged := freePlan
	unflagged.IsDefault = false
	p, _ = defaultPlan([]model.Plan{proPlan, unflagged}, "Pack Découverte")
	assert.Equal(t, "free", p.ID)

	p, _ = defaultPlan([]model.Plan{proPlan, basicPlan}, "Pack Découverte")
	assert.Equal(t, "basic", p.ID)

	_, ok = defaultPlan(nil, "Pack Découverte")
	assert.False(t, ok)
}
