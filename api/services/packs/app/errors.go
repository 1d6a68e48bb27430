package app

import "github.com/cockroachdb/errors"

// Typed errors for the packs app layer. The user-facing text travels as an error hint
// so transports can render it without knowing which layer failed.
var (
	// ErrSessionExpired indicates no live session at call time; never retried silently.
	ErrSessionExpired = errors.New("session expired")
	// ErrValidation indicates a local precondition failure; no network call was made.
	ErrValidation = errors.New("validation failed")
	// ErrRemoteRejected indicates the change endpoint answered success=false.
	ErrRemoteRejected = errors.New("change rejected")
	// ErrTransport indicates the change call itself failed or returned an unusable shape.
	ErrTransport = errors.New("change transport failure")
	// ErrCatalog indicates a failure reading plans, services, subscriptions or usage.
	ErrCatalog = errors.New("catalog error")
	// ErrPlanNotFound indicates the requested plan is not in the catalog.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrSubscriptionConflict indicates more than one non-cancelled subscription for a user.
	ErrSubscriptionConflict = errors.New("subscription conflict")
	// ErrNoPaidSubscription indicates a cancellation was requested without a billing subscription.
	ErrNoPaidSubscription = errors.New("no paid subscription")
	// ErrGateway indicates a failure from the billing provider.
	ErrGateway = errors.New("gateway error")
	// ErrChangeInFlight indicates a change is already outstanding for the session.
	ErrChangeInFlight = errors.New("change already in flight")
)

// fail marks cause (or kind itself when cause is nil) with kind and attaches the user message.
func fail(kind error, cause error, userMessage string) error {
	var err error
	if cause != nil {
		err = errors.Mark(errors.Wrap(cause, kind.Error()), kind)
	} else {
		err = errors.WithStack(kind)
	}
	if userMessage != "" {
		err = errors.WithHint(err, userMessage)
	}
	return err
}

// UserMessage returns the outermost user-facing message carried by err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	hints := errors.GetAllHints(err)
	if len(hints) == 0 {
		return MsgChangeFailed
	}
	return hints[len(hints)-1]
}
