package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bootstrap "github.com/tbeaudouin05/packchange/api/bootstrap"
	grpcserver "github.com/tbeaudouin05/packchange/api/services/packs/grpc"
)

// NewRouter returns the central HTTP router for the API using grpc-gateway.
// It maps srv's RPCs to HTTP endpoints and adds the notification stream and metrics.
// srv must be the same instance served over gRPC so both share the in-flight guard.
func NewRouter(srv *grpcserver.Server) http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; RPCs re-check).
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap ensure failed", "err", err)
	}

	mux := runtime.NewServeMux(
		runtime.WithIncomingHeaderMatcher(grpcserver.HeaderMatcher),
		runtime.WithForwardResponseOption(grpcserver.CheckoutRedirect),
	)
	if err := grpcserver.RegisterGateway(context.Background(), mux, srv); err != nil {
		slog.Error("failed to register grpc-gateway", "err", err)
	}

	metricsHandler := promhttp.Handler()
	if err := mux.HandlePath(http.MethodGet, "/metrics", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		metricsHandler.ServeHTTP(w, r)
	}); err != nil {
		slog.Error("failed to register metrics route", "err", err)
	}
	if err := mux.HandlePath(http.MethodGet, "/api/notifications", notificationStream(bootstrap.GetBus(), bootstrap.GetSessionVerifier())); err != nil {
		slog.Error("failed to register notification stream", "err", err)
	}
	return mux
}
