package router

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	bootstrap "github.com/tbeaudouin05/packchange/api/bootstrap"
	"github.com/tbeaudouin05/packchange/api/services/packs/app"
	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
	grpcserver "github.com/tbeaudouin05/packchange/api/services/packs/grpc"
	"github.com/tbeaudouin05/packchange/api/services/packs/notify"
)

type stubSessions struct{}

func (stubSessions) VerifySession(_ context.Context, token string) (gw.Session, error) {
	if token != "tok" {
		return gw.Session{}, gw.ErrNoSession
	}
	return gw.Session{UserID: "u1", AccessToken: token}, nil
}

type stubService struct{}

func (stubService) ChangePack(context.Context, app.ChangePackInput) app.ChangeOutcome {
	return app.ChangeOutcome{Result: app.ChangeResult{Kind: app.ResultImmediateSuccess}}
}

func (stubService) AssignDefaultPack(context.Context, app.Identity, app.ReturnURLs, gw.Navigator) app.ChangeOutcome {
	return app.ChangeOutcome{Result: app.ChangeResult{Kind: app.ResultImmediateSuccess}}
}

func (stubService) CancelPack(context.Context, app.Identity, bool) error { return nil }

func (stubService) Dashboard(_ context.Context, id app.Identity) (app.DashboardView, error) {
	return app.DashboardView{UserID: id.UserID, State: app.StateActive}, nil
}

func newStubServer(t *testing.T) (*httptest.Server, *notify.Bus) {
	bus := notify.NewBus(4)
	bootstrap.SetPackService(stubService{})
	bootstrap.SetSessionVerifier(stubSessions{})
	bootstrap.SetBus(bus)
	ts := httptest.NewServer(NewRouter(grpcserver.New(stubService{}, stubSessions{})))
	t.Cleanup(ts.Close)
	return ts, bus
}

// blockingService holds every pack change until release is closed.
type blockingService struct {
	stubService
	entered chan struct{}
	release chan struct{}
}

func (b blockingService) ChangePack(ctx context.Context, in app.ChangePackInput) app.ChangeOutcome {
	close(b.entered)
	<-b.release
	return b.stubService.ChangePack(ctx, in)
}

func TestRouter_ChangeInFlightOverGRPC_RejectsHTTP(t *testing.T) {
	svc := blockingService{entered: make(chan struct{}), release: make(chan struct{})}
	bootstrap.SetPackService(svc)
	bootstrap.SetSessionVerifier(stubSessions{})
	bootstrap.SetBus(notify.NewBus(4))
	packServer := grpcserver.New(svc, stubSessions{})

	lis := bufconn.Listen(1 << 20)
	grpcSrv := grpc.NewServer()
	grpcserver.RegisterPackServiceServer(grpcSrv, packServer)
	go func() { _ = grpcSrv.Serve(lis) }()
	t.Cleanup(grpcSrv.Stop)

	ts := httptest.NewServer(NewRouter(packServer))
	t.Cleanup(ts.Close)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	in, err := structpb.NewStruct(map[string]interface{}{"planId": "pro"})
	require.NoError(t, err)
	done := make(chan error, 1)
	go func() {
		ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer tok")
		done <- conn.Invoke(ctx, "/packs.v1.PackService/ChangePack", in, &structpb.Struct{})
	}()
	<-svc.entered

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/packs/change", strings.NewReader(`{"planId":"pro"}`))
	req.Header.Set("Authorization", "Bearer tok")
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	close(svc.release)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("grpc change did not complete")
	}
}

func TestRouter_Dashboard(t *testing.T) {
	ts, _ := newStubServer(t)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/packs/dashboard", nil)
	req.Header.Set("Authorization", "Bearer tok")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_Metrics(t *testing.T) {
	ts, _ := newStubServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_NotificationStream(t *testing.T) {
	ts, bus := newStubServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/notifications?access_token=tok", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, ": connected\n", line)

	bus.Publish(app.Notification{ID: "n-other", UserID: "u2", Message: "not yours"})
	bus.Publish(app.Notification{ID: "n1", UserID: "u1", Type: app.NotificationSuccess, Message: "Pack mis à jour"})

	var data string
	for data == "" {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(line, "data: ")
		}
	}
	assert.Contains(t, data, `"id":"n1"`)
	assert.NotContains(t, data, "n-other")
}

func TestRouter_NotificationStream_Unauthenticated(t *testing.T) {
	ts, _ := newStubServer(t)

	resp, err := http.Get(ts.URL + "/api/notifications")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
