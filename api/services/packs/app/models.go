package app

import (
	"time"

	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

// ChangeType is the advisory classification of a requested pack change.
type ChangeType string

const (
	ChangeFirstPack ChangeType = "FIRST_PACK"
	ChangeUpgrade   ChangeType = "UPGRADE"
	ChangeDowngrade ChangeType = "DOWNGRADE"
	ChangeSamePrice ChangeType = "SAME_PRICE"
)

// ResultKind is the outcome shape of a remote change.
type ResultKind string

const (
	ResultImmediateSuccess ResultKind = "immediate_success"
	ResultRequiresPayment  ResultKind = "requires_payment"
	ResultError            ResultKind = "error"
)

// NotificationType drives the toast style.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// EntitlementStatus is what the dashboard renders for a service.
type EntitlementStatus string

const (
	EntitlementActive        EntitlementStatus = "active"
	EntitlementInactive      EntitlementStatus = "inactive"
	EntitlementSetupRequired EntitlementStatus = "setup_required"
)

// SubscriptionState is the conceptual state of a user's pack lifecycle.
type SubscriptionState string

const (
	StateNoSubscription SubscriptionState = "no_subscription"
	StateActive         SubscriptionState = "active"
	StateSuspended      SubscriptionState = "suspended"
	StateCancelled      SubscriptionState = "cancelled"
)

// Identity is the authenticated caller as handed over by the session layer.
type Identity struct {
	UserID      string
	Email       string
	AccessToken string
}

// ReturnURLs are where the checkout page sends the user back to.
type ReturnURLs struct {
	SuccessURL string `json:"successUrl" validate:"omitempty,url"`
	CancelURL  string `json:"cancelUrl" validate:"omitempty,url"`
}

// Validation is the result of the local precondition check.
type Validation struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ChangeResult is the structured outcome of a remote change. Err is set only for ResultError.
type ChangeResult struct {
	Kind         ResultKind `json:"kind"`
	CheckoutURL  string     `json:"checkoutUrl,omitempty"`
	CreditAmount int64      `json:"creditAmount,omitempty"`
	Message      string     `json:"message,omitempty"`
	ChangeType   ChangeType `json:"changeType,omitempty"`
	Err          error      `json:"-"`
}

// Notification is the payload the presentation layer renders after a change.
type Notification struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId"`
	Type         NotificationType `json:"type"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	CreditAmount int64            `json:"creditAmount,omitempty"`
	ChangeType   ChangeType       `json:"changeType,omitempty"`
	PackName     string           `json:"packName,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// EntitlementView is one dashboard row: a service and the user's standing on it.
type EntitlementView struct {
	Service         model.Service     `json:"service"`
	AvailableInPack bool              `json:"availableInPack"`
	Status          EntitlementStatus `json:"status"`
	Visits          int64             `json:"visits"`
	Sales           int64             `json:"sales"`
	Revenue         int64             `json:"revenue"`
}

// PlanOption is a plan as offered on the dashboard, with its advisory label.
type PlanOption struct {
	Plan       model.Plan `json:"plan"`
	ChangeType ChangeType `json:"changeType"`
	Label      string     `json:"label"`
	Current    bool       `json:"current"`
}

// DashboardView is everything the dashboard renders for the pack section.
type DashboardView struct {
	UserID       string                 `json:"userId"`
	State        SubscriptionState      `json:"state"`
	Subscription model.UserSubscription `json:"subscription"`
	CurrentPlan  model.Plan             `json:"currentPlan"`
	Plans        []PlanOption           `json:"plans"`
	Entitlements []EntitlementView      `json:"entitlements"`
}

// ChangeOutcome bundles what a change produced for the caller.
type ChangeOutcome struct {
	Result       ChangeResult  `json:"result"`
	Notification Notification  `json:"notification"`
	Notified     bool          `json:"notified"`
	Dashboard    DashboardView `json:"dashboard"`
	Refreshed    bool          `json:"refreshed"`
}
