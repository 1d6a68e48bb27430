package grpcserver

import (
	"context"
	"io"
	"net/http"
	"net/textproto"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// HeaderMatcher forwards request tracing headers as metadata. Authorization is
// always forwarded by the gateway as "authorization".
func HeaderMatcher(key string) (string, bool) {
	switch textproto.CanonicalMIMEHeaderKey(key) {
	case "Authorization":
		return "", false
	case "X-Request-Id":
		return "x-request-id", true
	}
	return runtime.DefaultHeaderMatcher(key)
}

// CheckoutRedirect turns a checkout header set by the navigator into a 303, so a browser
// form post lands on the payment page.
func CheckoutRedirect(ctx context.Context, w http.ResponseWriter, _ proto.Message) error {
	md, ok := runtime.ServerMetadataFromContext(ctx)
	if !ok {
		return nil
	}
	vals := md.HeaderMD.Get(CheckoutHeader)
	if len(vals) == 0 {
		return nil
	}
	w.Header().Del("Grpc-Metadata-" + textproto.CanonicalMIMEHeaderKey(CheckoutHeader))
	w.Header().Set("Location", vals[0])
	w.WriteHeader(http.StatusSeeOther)
	return nil
}

type route struct {
	method  string
	pattern string
	rpc     string
	call    func(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterGateway exposes srv's RPCs on mux, calling the server in-process.
func RegisterGateway(ctx context.Context, mux *runtime.ServeMux, srv PackServiceServer) error {
	routes := []route{
		{http.MethodPost, "/api/packs/change", methodChangePack, srv.ChangePack},
		{http.MethodPost, "/api/packs/default", methodAssignDefaultPack, srv.AssignDefaultPack},
		{http.MethodPost, "/api/packs/cancel", methodCancelPack, srv.CancelPack},
		{http.MethodGet, "/api/packs/dashboard", methodGetDashboard, srv.GetDashboard},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, localHandler(mux, r)); err != nil {
			return err
		}
	}
	return nil
}

func localHandler(mux *runtime.ServeMux, r route) runtime.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request, _ map[string]string) {
		ctx, cancel := context.WithCancel(req.Context())
		defer cancel()
		var stream runtime.ServerTransportStream
		ctx = grpc.NewContextWithServerTransportStream(ctx, &stream)
		inboundMarshaler, outboundMarshaler := runtime.MarshalerForRequest(mux, req)

		annotated, err := runtime.AnnotateIncomingContext(ctx, mux, req, r.rpc, runtime.WithHTTPPathPattern(r.pattern))
		if err != nil {
			runtime.HTTPError(ctx, mux, outboundMarshaler, w, req, err)
			return
		}

		in := &structpb.Struct{}
		if req.Method != http.MethodGet && req.Body != nil {
			if err := inboundMarshaler.NewDecoder(req.Body).Decode(in); err != nil && err != io.EOF {
				runtime.HTTPError(annotated, mux, outboundMarshaler, w, req, status.Errorf(codes.InvalidArgument, "%v", err))
				return
			}
		}

		resp, err := r.call(annotated, in)
		md := runtime.ServerMetadata{HeaderMD: stream.Header(), TrailerMD: stream.Trailer()}
		annotated = runtime.NewServerMetadataContext(annotated, md)
		if err != nil {
			runtime.HTTPError(annotated, mux, outboundMarshaler, w, req, err)
			return
		}
		runtime.ForwardResponseMessage(annotated, mux, outboundMarshaler, w, req, resp, mux.GetForwardResponseOptions()...)
	}
}
