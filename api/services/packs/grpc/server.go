package grpcserver

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tbeaudouin05/packchange/api/services/packs/app"
	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
)

// CheckoutHeader carries the checkout URL back to the transport on a requires-payment result.
const CheckoutHeader = "x-checkout-location"

// Server implements PackServiceServer on top of the app layer. It owns the
// at-most-one-change-per-user guard: the app layer does not deduplicate.
type Server struct {
	svc      app.Service
	sessions gw.SessionVerifier
	inflight sync.Map // user id -> struct{}, present only while a change is outstanding
}

func New(svc app.Service, sessions gw.SessionVerifier) *Server {
	return &Server{svc: svc, sessions: sessions}
}

var _ PackServiceServer = (*Server)(nil)

// headerNavigator hands the checkout URL to whichever transport serves the call.
type headerNavigator struct{}

func (headerNavigator) Navigate(ctx context.Context, url string) error {
	return grpc.SetHeader(ctx, metadata.Pairs(CheckoutHeader, url))
}

func (s *Server) ChangePack(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req changePackRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	id, err := s.identify(ctx)
	if err != nil {
		return nil, err
	}
	release, err := s.acquire(id.UserID)
	if err != nil {
		return nil, err
	}
	defer release()

	out := s.svc.ChangePack(ctx, app.ChangePackInput{
		Identity:     id,
		TargetPlanID: req.PlanID,
		ReturnURLs:   app.ReturnURLs{SuccessURL: req.SuccessURL, CancelURL: req.CancelURL},
		Navigator:    headerNavigator{},
	})
	return encode(out)
}

func (s *Server) AssignDefaultPack(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req assignDefaultRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	id, err := s.identify(ctx)
	if err != nil {
		return nil, err
	}
	release, err := s.acquire(id.UserID)
	if err != nil {
		return nil, err
	}
	defer release()

	out := s.svc.AssignDefaultPack(ctx, id, app.ReturnURLs{SuccessURL: req.SuccessURL, CancelURL: req.CancelURL}, headerNavigator{})
	return encode(out)
}

func (s *Server) CancelPack(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req cancelPackRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	id, err := s.identify(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.CancelPack(ctx, id, req.AtPeriodEnd); err != nil {
		slog.Error("cancel pack failed", "user_id", id.UserID, "err", err)
		return nil, toStatus(err)
	}
	return encode(cancelPackResponse{Cancelled: true, AtPeriodEnd: req.AtPeriodEnd})
}

func (s *Server) GetDashboard(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	id, err := s.identify(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.svc.Dashboard(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return encode(view)
}

// identify resolves the caller from the bearer token in the incoming metadata.
func (s *Server) identify(ctx context.Context) (app.Identity, error) {
	if s.sessions == nil || s.svc == nil {
		return app.Identity{}, status.Error(codes.Unavailable, "pack service not initialized")
	}
	token := BearerToken(ctx)
	if token == "" {
		return app.Identity{}, status.Error(codes.Unauthenticated, app.MsgSessionExpired)
	}
	sess, err := s.sessions.VerifySession(ctx, token)
	if err != nil {
		slog.Info("rejecting call without live session", "err", err)
		return app.Identity{}, status.Error(codes.Unauthenticated, app.MsgSessionExpired)
	}
	return app.Identity{UserID: sess.UserID, Email: sess.Email, AccessToken: token}, nil
}

// acquire takes the user's change slot or fails fast when a change is already outstanding.
// Releasing frees the entry, so the map only holds users with a change in flight.
func (s *Server) acquire(userID string) (func(), error) {
	if _, busy := s.inflight.LoadOrStore(userID, struct{}{}); busy {
		slog.Warn("pack change already in flight", "user_id", userID)
		return nil, status.Error(codes.Aborted, app.MsgChangeInFlight)
	}
	var once sync.Once
	return func() { once.Do(func() { s.inflight.Delete(userID) }) }, nil
}

// BearerToken extracts the access token from the "authorization" metadata.
func BearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get("authorization") {
		token := strings.TrimSpace(strings.TrimPrefix(v, "Bearer "))
		if token != "" {
			return token
		}
	}
	return ""
}
