package proxy

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"

	"github.com/prognoshealth/eventrelay/relay"
)

// Relayer submits one event and reports the outcome. *relay.Handler
// implements it.
type Relayer interface {
	Relay(ctx context.Context, event relay.Event) relay.Result
}

// badRequestError marks a request body that is not a json object.
type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string { return e.err.Error() }
func (e *badRequestError) Unwrap() error { return e.err }

// NewRelayRouter returns a router that relays the json body of `POST path`
// through r. The response body is the acknowledgment on success, or a
// {"message": ...} object otherwise.
//
//	400 body is not a json object
//	404 no route matched
//	500 relay is not configured
//	502 the queue rejected the message
func NewRelayRouter(r Relayer, path string) *Router {
	router := &Router{}

	router.POST(path, func(ctx *RouteContext) (events.APIGatewayProxyResponse, error) {
		event, err := ctx.Event()
		if err != nil {
			return events.APIGatewayProxyResponse{}, &badRequestError{err: err}
		}

		ack, err := r.Relay(ctx.Context, event).Unpack()
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}

		return jsonResponse(ack.StatusCode, ack), nil
	})

	router.AddCatchAllHandler(func(_ context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
		return messageResponse(http.StatusNotFound, request.RequestContext.HTTP.Method+" "+request.RawPath+" not found"), nil
	})

	router.AddErrorHandler(func(_ context.Context, _ events.APIGatewayV2HTTPRequest, err error) (events.APIGatewayProxyResponse, error) {
		return messageResponse(statusFor(err), err.Error()), nil
	})

	return router
}

func statusFor(err error) int {
	var bad *badRequestError

	switch {
	case errors.As(err, &bad):
		return http.StatusBadRequest
	case relay.IsConfigurationError(err):
		return http.StatusInternalServerError
	case relay.IsSubmissionError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func messageResponse(status int, message string) events.APIGatewayProxyResponse {
	return jsonResponse(status, map[string]string{"message": message})
}

func jsonResponse(status int, v interface{}) events.APIGatewayProxyResponse {
	b, err := json.Marshal(v)
	if err != nil {
		status, b = http.StatusInternalServerError, []byte(`{"message":"failed encoding response"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}
}
