package supabasegw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"

	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
)

const maxFunctionBody = 1 << 20

// functionError is what the edge function (or the functions relay) returns on failure.
type functionError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Msg     string `json:"msg"`
}

// functionReply is the 2xx body; success must be present.
type functionReply struct {
	Success         *bool  `json:"success" validate:"required"`
	Message         string `json:"message"`
	RequiresPayment bool   `json:"requiresPayment"`
	CheckoutURL     string `json:"checkoutUrl"`
	CreditApplied   int64  `json:"creditApplied"`
}

func (e functionError) text() string {
	for _, s := range []string{e.Message, e.Error, e.Msg} {
		if s != "" {
			return s
		}
	}
	return ""
}

// ChangePack invokes the change edge function once with the user's token.
func (g *Gateway) ChangePack(ctx context.Context, accessToken string, req gw.ChangeRequest) (gw.ChangeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return gw.ChangeResponse{}, errors.Wrap(err, "encode change request")
	}
	url := fmt.Sprintf("%s/functions/v1/%s", g.opts.URL, g.opts.Function)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return gw.ChangeResponse{}, errors.Wrap(err, "build change request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("apikey", g.opts.AnonKey)

	resp, err := g.http.Do(httpReq)
	if err != nil {
		return gw.ChangeResponse{}, errors.Wrap(err, "call change function")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxFunctionBody))
	if err != nil {
		return gw.ChangeResponse{}, errors.Wrap(err, "read change response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The function reports business refusals with a non-2xx status and a message body.
		var fe functionError
		if json.Unmarshal(raw, &fe) == nil && fe.text() != "" {
			return gw.ChangeResponse{Success: false, Message: fe.text()}, nil
		}
		return gw.ChangeResponse{}, errors.Newf("change function returned %d", resp.StatusCode)
	}

	var reply functionReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return gw.ChangeResponse{}, errors.Wrap(err, "decode change response")
	}
	if err := rowValidator.Struct(reply); err != nil {
		return gw.ChangeResponse{}, errors.Wrap(err, "change response without success flag")
	}
	return gw.ChangeResponse{
		Success:         *reply.Success,
		Message:         reply.Message,
		RequiresPayment: reply.RequiresPayment,
		CheckoutURL:     reply.CheckoutURL,
		CreditApplied:   reply.CreditApplied,
	}, nil
}
