package proxy

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"github.com/prognoshealth/eventrelay/relay"
)

func testHandler(context *RouteContext) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

func testRequest(method HttpMethod, path string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		RawPath: path,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method: method.String(),
			},
		},
		Headers: map[string]string{},
	}
}

func loadRequest(t *testing.T, file string) events.APIGatewayV2HTTPRequest {
	b, err := os.ReadFile("testdata/" + file)
	require.NoError(t, err)

	request := events.APIGatewayV2HTTPRequest{}
	require.NoError(t, json.Unmarshal(b, &request))

	return request
}

type fakeRelayer struct {
	result relay.Result
	events []relay.Event
}

func (f *fakeRelayer) Relay(_ context.Context, event relay.Event) relay.Result {
	f.events = append(f.events, event)
	return f.result
}
