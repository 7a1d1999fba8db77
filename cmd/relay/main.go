// Command relay is a lambda function that forwards each invocation event to
// the sqs queue named by QUEUE_URL and returns {"statusCode": 200}.
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

	logger := relay.NewLogger(os.Stdout, cfg.Level()).With("service", "relay")

	handler, err := relay.NewHandlerFromConfig(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create handler: %v", err)
	}

	logger.Info("starting relay",
		relay.QueueURL(cfg.QueueURL),
		"ack_mode", string(cfg.AckMode),
	)

	lambda.Start(handler.Invoke)
}
