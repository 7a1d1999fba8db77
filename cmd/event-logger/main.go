// Command event-logger is a lambda function that logs each invocation event
// and returns {"statusCode": 200} without forwarding it.
package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/prognoshealth/eventrelay/relay"
)

func main() {
	cfg, err := relay.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := relay.NewLogger(os.Stdout, cfg.Level()).With("service", "event-logger")

	lambda.Start(relay.LogOnly(logger))
}
