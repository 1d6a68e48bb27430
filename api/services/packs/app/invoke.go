package app

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
)

// Invoker wraps the single remote call that performs a pack change.
type Invoker struct {
	sessions gw.SessionVerifier
	remote   gw.ChangeFunction
}

func NewInvoker(sessions gw.SessionVerifier, remote gw.ChangeFunction) Invoker {
	return Invoker{sessions: sessions, remote: remote}
}

// Invoke re-verifies the session, sends exactly one change request and interprets the reply.
// Expected failures come back as a ResultError, never as a Go error. On a checkout reply the
// invoker navigates to the checkout page itself before returning.
func (i Invoker) Invoke(ctx context.Context, id Identity, targetPlanID string, urls ReturnURLs, nav gw.Navigator) ChangeResult {
	sess, err := i.sessions.VerifySession(ctx, id.AccessToken)
	if err != nil {
		slog.Warn("session verification failed before pack change", "user_id", id.UserID, "err", err)
		return errorResult(fail(ErrSessionExpired, err, MsgSessionExpired))
	}
	if sess.UserID == "" || (id.UserID != "" && sess.UserID != id.UserID) {
		slog.Warn("session does not match caller identity", "user_id", id.UserID, "session_user_id", sess.UserID)
		return errorResult(fail(ErrSessionExpired, nil, MsgSessionExpired))
	}
	token := sess.AccessToken
	if token == "" {
		token = id.AccessToken
	}

	// Once sent, the mutation is not cancelled if the caller goes away.
	resp, err := i.remote.ChangePack(context.WithoutCancel(ctx), token, gw.ChangeRequest{
		PlanID:     targetPlanID,
		SuccessURL: urls.SuccessURL,
		CancelURL:  urls.CancelURL,
	})
	if err != nil {
		slog.Error("pack change call failed", "user_id", sess.UserID, "plan_id", targetPlanID, "err", err)
		return errorResult(fail(ErrTransport, err, transportMessage(err.Error())))
	}
	if err := checkResponse(resp); err != nil {
		slog.Error("malformed pack change response", "user_id", sess.UserID, "plan_id", targetPlanID, "err", err)
		return errorResult(fail(ErrTransport, err, MsgChangeFailed))
	}

	if !resp.Success {
		msg := rejectionMessage(resp.Message)
		slog.Info("pack change rejected", "user_id", sess.UserID, "plan_id", targetPlanID, "server_message", resp.Message)
		return ChangeResult{
			Kind:    ResultError,
			Message: msg,
			Err:     fail(ErrRemoteRejected, errors.Newf("server: %s", resp.Message), msg),
		}
	}

	if resp.CheckoutURL != "" {
		if nav == nil {
			return errorResult(fail(ErrTransport, errors.New("no navigator for checkout redirect"), MsgChangeFailed))
		}
		if err := nav.Navigate(ctx, resp.CheckoutURL); err != nil {
			slog.Error("checkout redirect failed", "user_id", sess.UserID, "plan_id", targetPlanID, "err", err)
			return errorResult(fail(ErrTransport, err, MsgChangeFailed))
		}
		slog.Info("pack change requires payment", "user_id", sess.UserID, "plan_id", targetPlanID)
		return ChangeResult{Kind: ResultRequiresPayment, CheckoutURL: resp.CheckoutURL, Message: resp.Message}
	}

	slog.Info("pack changed", "user_id", sess.UserID, "plan_id", targetPlanID, "credit_applied", resp.CreditApplied)
	return ChangeResult{Kind: ResultImmediateSuccess, CreditAmount: resp.CreditApplied, Message: resp.Message}
}

// checkResponse rejects shapes the rest of the flow cannot act on.
func checkResponse(resp gw.ChangeResponse) error {
	if err := structValidator.Struct(resp); err != nil {
		return errors.Wrap(err, "invalid change response")
	}
	if resp.Success && resp.RequiresPayment && resp.CheckoutURL == "" {
		return errors.New("payment required but no checkout url")
	}
	return nil
}

func errorResult(err error) ChangeResult {
	return ChangeResult{Kind: ResultError, Message: UserMessage(err), Err: err}
}
