package model

import (
	"fmt"
	"time"
)

// BillingPeriod is how often a plan is charged.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
	BillingOneTime BillingPeriod = "one_time"
)

// ServiceType is the closed set of service categories a plan can bundle.
type ServiceType string

const (
	ServiceWebsite     ServiceType = "website"
	ServiceEcommerce   ServiceType = "ecommerce"
	ServiceMarketplace ServiceType = "marketplace"
	ServiceBlog        ServiceType = "blog"
	ServiceBooking     ServiceType = "booking"
	ServiceCRM         ServiceType = "crm"
	ServiceMarketing   ServiceType = "marketing"
	ServiceAnalytics   ServiceType = "analytics"
	// ServiceOther holds catalog rows whose category is not one of the above.
	ServiceOther ServiceType = "other"
)

var serviceTypes = []ServiceType{
	ServiceWebsite, ServiceEcommerce, ServiceMarketplace, ServiceBlog,
	ServiceBooking, ServiceCRM, ServiceMarketing, ServiceAnalytics,
}

// ParseServiceType rejects categories the dashboard does not know how to render.
func ParseServiceType(s string) (ServiceType, error) {
	for _, t := range serviceTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown service type %q", s)
}

// ServiceTypeOrOther maps a category the dashboard does not know to ServiceOther,
// so the row still shows up in the entitlement list.
func ServiceTypeOrOther(s string) (ServiceType, bool) {
	t, err := ParseServiceType(s)
	if err != nil {
		return ServiceOther, false
	}
	return t, true
}

// ParseBillingPeriod accepts the wire spellings used by the packs table.
func ParseBillingPeriod(s string) (BillingPeriod, error) {
	switch s {
	case "monthly", "month":
		return BillingMonthly, nil
	case "yearly", "year", "annual":
		return BillingYearly, nil
	case "one_time", "one-time", "once":
		return BillingOneTime, nil
	}
	return "", fmt.Errorf("unknown billing period %q", s)
}

// SubscriptionStatus is the lifecycle status of a user pack row.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionSuspended SubscriptionStatus = "suspended"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// ParseSubscriptionStatus also accepts the US spelling Stripe uses.
func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	switch s {
	case "active":
		return SubscriptionActive, nil
	case "suspended":
		return SubscriptionSuspended, nil
	case "cancelled", "canceled":
		return SubscriptionCancelled, nil
	}
	return "", fmt.Errorf("unknown subscription status %q", s)
}

// UsageStatus is the per-service status reported by the backend.
type UsageStatus string

const (
	UsageActive        UsageStatus = "active"
	UsageInactive      UsageStatus = "inactive"
	UsageSetupRequired UsageStatus = "setup_required"
)

// ParseUsageStatus maps an optional wire status; empty means "not reported".
func ParseUsageStatus(s string) (UsageStatus, error) {
	switch s {
	case "":
		return "", nil
	case "active":
		return UsageActive, nil
	case "inactive":
		return UsageInactive, nil
	case "setup_required", "setup-required", "pending_setup":
		return UsageSetupRequired, nil
	}
	return "", fmt.Errorf("unknown usage status %q", s)
}

// Plan is a priced bundle of services ("pack"). Prices are in the smallest currency unit.
type Plan struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Price         int64         `json:"price"`
	Currency      string        `json:"currency"`
	BillingPeriod BillingPeriod `json:"billingPeriod"`
	Rank          int           `json:"rank"`
	ServiceIDs    []string      `json:"serviceIds"`
	IsDefault     bool          `json:"isDefault"`
}

// Service is a globally available digital service.
type Service struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Type    ServiceType `json:"type"`
	BaseURL string      `json:"baseUrl,omitempty"`
	Active  bool        `json:"active"`
}

// UserSubscription is the user's pack row. Zero times mean "not set".
type UserSubscription struct {
	UserID               string             `json:"userId"`
	PlanID               string             `json:"planId"`
	Status               SubscriptionStatus `json:"status"`
	ActivatedAt          time.Time          `json:"activatedAt"`
	ExpiresAt            time.Time          `json:"expiresAt,omitempty"`
	NextBillingAt        time.Time          `json:"nextBillingAt,omitempty"`
	StripeSubscriptionID string             `json:"-"`
}

// UsageRecord carries the raw counters the backend keeps for a service the user has used.
type UsageRecord struct {
	ServiceID string      `json:"serviceId"`
	Status    UsageStatus `json:"status,omitempty"`
	Visits    int64       `json:"visits"`
	Sales     int64       `json:"sales"`
	Revenue   int64       `json:"revenue"`
}
