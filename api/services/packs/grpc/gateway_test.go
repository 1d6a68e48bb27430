package grpcserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/golang/mock/gomock"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/packchange/api/services/packs/app"
	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
	mock_gateway "github.com/tbeaudouin05/packchange/api/services/packs/gateway/mock"
)

// fakeService is a stub app.Service; it navigates when checkoutURL is set.
type fakeService struct {
	checkoutURL string
	dashboard   app.DashboardView
	cancelErr   error
	lastInput   app.ChangePackInput
}

func (f *fakeService) ChangePack(ctx context.Context, in app.ChangePackInput) app.ChangeOutcome {
	f.lastInput = in
	if f.checkoutURL != "" {
		if err := in.Navigator.Navigate(ctx, f.checkoutURL); err != nil {
			return app.ChangeOutcome{Result: app.ChangeResult{Kind: app.ResultError, Message: err.Error()}}
		}
		return app.ChangeOutcome{Result: app.ChangeResult{Kind: app.ResultRequiresPayment, CheckoutURL: f.checkoutURL, ChangeType: app.ChangeUpgrade}}
	}
	return app.ChangeOutcome{
		Result:       app.ChangeResult{Kind: app.ResultImmediateSuccess, ChangeType: app.ChangeDowngrade, CreditAmount: 250000},
		Notification: app.Notification{Type: app.NotificationSuccess, Title: app.TitleChangeSucceeded},
		Notified:     true,
	}
}

func (f *fakeService) AssignDefaultPack(ctx context.Context, id app.Identity, urls app.ReturnURLs, nav gw.Navigator) app.ChangeOutcome {
	return f.ChangePack(ctx, app.ChangePackInput{Identity: id, TargetPlanID: "free", ReturnURLs: urls, Navigator: nav})
}

func (f *fakeService) CancelPack(context.Context, app.Identity, bool) error { return f.cancelErr }

func (f *fakeService) Dashboard(context.Context, app.Identity) (app.DashboardView, error) {
	return f.dashboard, nil
}

func newGatewayServer(t *testing.T, svc *fakeService) *httptest.Server {
	ctrl := gomock.NewController(t)
	sessions := mock_gateway.NewMockSessionVerifier(ctrl)
	sessions.EXPECT().VerifySession(gomock.Any(), "tok").Return(gw.Session{UserID: "u1", Email: "alice@example.com"}, nil).AnyTimes()
	sessions.EXPECT().VerifySession(gomock.Any(), gomock.Not("tok")).Return(gw.Session{}, gw.ErrNoSession).AnyTimes()

	mux := runtime.NewServeMux(
		runtime.WithIncomingHeaderMatcher(HeaderMatcher),
		runtime.WithForwardResponseOption(CheckoutRedirect),
	)
	require.NoError(t, RegisterGateway(context.Background(), mux, New(svc, sessions)))
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func Test_HTTP_ChangePack_CheckoutRedirects(t *testing.T) {
	svc := &fakeService{checkoutURL: "https://pay.example/x"}
	ts := newGatewayServer(t, svc)

	resp := do(t, http.MethodPost, ts.URL+"/api/packs/change", "tok", `{"planId":"pro","successUrl":"https://app.example/ok"}`)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "https://pay.example/x", resp.Header.Get("Location"))
	assert.Equal(t, "pro", svc.lastInput.TargetPlanID)
	assert.Equal(t, "u1", svc.lastInput.Identity.UserID)
	assert.Equal(t, "https://app.example/ok", svc.lastInput.ReturnURLs.SuccessURL)
}

func Test_HTTP_ChangePack_ImmediateSuccess(t *testing.T) {
	ts := newGatewayServer(t, &fakeService{})

	resp := do(t, http.MethodPost, ts.URL+"/api/packs/change", "tok", `{"planId":"basic"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Result struct {
			Kind         string  `json:"kind"`
			ChangeType   string  `json:"changeType"`
			CreditAmount float64 `json:"creditAmount"`
		} `json:"result"`
		Notified bool `json:"notified"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "immediate_success", body.Result.Kind)
	assert.Equal(t, "DOWNGRADE", body.Result.ChangeType)
	assert.Equal(t, float64(250000), body.Result.CreditAmount)
	assert.True(t, body.Notified)
}

func Test_HTTP_Unauthenticated(t *testing.T) {
	ts := newGatewayServer(t, &fakeService{})

	resp := do(t, http.MethodGet, ts.URL+"/api/packs/dashboard", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/api/packs/dashboard", "expired", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func Test_HTTP_Dashboard(t *testing.T) {
	ts := newGatewayServer(t, &fakeService{dashboard: app.DashboardView{UserID: "u1", State: app.StateNoSubscription}})

	resp := do(t, http.MethodGet, ts.URL+"/api/packs/dashboard", "tok", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, "no_subscription", view["state"])
}

func Test_HTTP_Cancel_ErrorMapping(t *testing.T) {
	svc := &fakeService{cancelErr: errors.WithHint(errors.WithStack(app.ErrNoPaidSubscription), app.MsgNoPaidSubscription)}
	ts := newGatewayServer(t, svc)

	resp := do(t, http.MethodPost, ts.URL+"/api/packs/cancel", "tok", `{"atPeriodEnd":true}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, app.MsgNoPaidSubscription, body.Message)

	svc.cancelErr = nil
	resp = do(t, http.MethodPost, ts.URL+"/api/packs/cancel", "tok", `{}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func Test_HTTP_MissingPlanID(t *testing.T) {
	ts := newGatewayServer(t, &fakeService{})
	resp := do(t, http.MethodPost, ts.URL+"/api/packs/change", "tok", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_HeaderMatcher(t *testing.T) {
	_, ok := HeaderMatcher("authorization")
	assert.False(t, ok)
	key, ok := HeaderMatcher("x-request-id")
	assert.True(t, ok)
	assert.Equal(t, "x-request-id", key)
	_, ok = HeaderMatcher("X-Unrelated")
	assert.False(t, ok)
}
