// Package proxy lets the relay run as an aws api gateway v2 (http) integration.
// The router matches an events.APIGatewayV2HTTPRequest against its routes and
// returns an events.APIGatewayProxyResponse; NewRelayRouter wires a single
// POST route whose json body is handed to the relay.
//
// The router is intentionally minimal: first match wins and there is no
// middleware.
package proxy
