package proxy

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"

	"github.com/prognoshealth/eventrelay/relay"
)

// RouteContext contains all the request information for a route when matched.
type RouteContext struct {
	Context context.Context
	Request events.APIGatewayV2HTTPRequest
	Params  map[string]string
}

// Body returns the request body, decoding it first if api gateway delivered
// it base64 encoded.
func (ctx *RouteContext) Body() (string, error) {
	if !ctx.Request.IsBase64Encoded {
		return ctx.Request.Body, nil
	}

	b, err := base64.StdEncoding.DecodeString(ctx.Request.Body)
	if err != nil {
		return "", errors.Wrapf(err, "unable to decode request body for request %v", ctx.Request.RequestContext.RequestID)
	}

	return string(b), nil
}

// Event parses the request body as a relay event.
func (ctx *RouteContext) Event() (relay.Event, error) {
	body, err := ctx.Body()
	if err != nil {
		return relay.Event{}, err
	}

	return relay.ParseEvent([]byte(body))
}
