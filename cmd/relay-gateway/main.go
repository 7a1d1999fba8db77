// Command relay-gateway is a lambda function behind an api gateway http api.
// It relays the json body of POST RELAY_HTTP_PATH to the sqs queue named by
// QUEUE_URL.
package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/prognoshealth/eventrelay/proxy"
	"github.com/prognoshealth/eventrelay/relay"
)

func main() {
	cfg, err := relay.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := relay.NewLogger(os.Stdout, cfg.Level()).With("service", "relay-gateway")

	handler, err := relay.NewHandlerFromConfig(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create handler: %v", err)
	}

	router := proxy.NewRelayRouter(handler, cfg.HTTPPath)
	if !router.Valid() {
		log.Fatalf("Failed to build router: %v", router.BuildErrors())
	}

	logger.Info("starting relay gateway",
		relay.QueueURL(cfg.QueueURL),
		"path", cfg.HTTPPath,
	)

	lambda.Start(router.Route)
}
