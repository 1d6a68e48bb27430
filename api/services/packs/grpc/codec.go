package grpcserver

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tbeaudouin05/packchange/api/services/packs/app"
)

var requestValidator = validator.New()

type changePackRequest struct {
	PlanID     string `json:"planId" validate:"required"`
	SuccessURL string `json:"successUrl" validate:"omitempty,url"`
	CancelURL  string `json:"cancelUrl" validate:"omitempty,url"`
}

type assignDefaultRequest struct {
	SuccessURL string `json:"successUrl" validate:"omitempty,url"`
	CancelURL  string `json:"cancelUrl" validate:"omitempty,url"`
}

type cancelPackRequest struct {
	AtPeriodEnd bool `json:"atPeriodEnd"`
}

type cancelPackResponse struct {
	Cancelled   bool `json:"cancelled"`
	AtPeriodEnd bool `json:"atPeriodEnd"`
}

// decode maps a Struct payload onto a request type and validates it.
func decode(in *structpb.Struct, v interface{}) error {
	if in == nil {
		in = &structpb.Struct{}
	}
	raw, err := protojson.Marshal(in)
	if err != nil {
		return status.Error(codes.InvalidArgument, "malformed request")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return status.Errorf(codes.InvalidArgument, "malformed request: %v", err)
	}
	if err := requestValidator.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "PlanID" {
			return status.Error(codes.InvalidArgument, app.MsgPackIDRequired)
		}
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	return nil
}

// encode renders an app-layer value as a Struct payload.
func encode(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

// toStatus maps the app error taxonomy onto gRPC codes, carrying the user message.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	code := codes.Internal
	switch {
	case errors.Is(err, app.ErrSessionExpired):
		code = codes.Unauthenticated
	case errors.Is(err, app.ErrValidation):
		code = codes.InvalidArgument
	case errors.Is(err, app.ErrPlanNotFound):
		code = codes.NotFound
	case errors.Is(err, app.ErrSubscriptionConflict), errors.Is(err, app.ErrNoPaidSubscription):
		code = codes.FailedPrecondition
	case errors.Is(err, app.ErrChangeInFlight):
		code = codes.Aborted
	case errors.Is(err, app.ErrCatalog), errors.Is(err, app.ErrGateway):
		code = codes.Unavailable
	}
	return status.Error(code, app.UserMessage(err))
}
