// Package relay forwards a single lambda invocation event to an sqs queue.
//
// Each invocation compacts the event's json text, sends it as the body of one
// sqs message to the configured queue url and returns an Acknowledgment. There
// is no retry, batching or deduplication; any failure is returned to the
// lambda runtime, which owns redelivery.
//
// Example:
//
//	func main() {
//		cfg, err := relay.LoadConfig()
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		sess, err := relay.NewSession(cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		logger := relay.NewLogger(os.Stdout, cfg.Level())
//		handler := relay.NewHandler(cfg, sqs.New(sess), logger)
//
//		lambda.Start(handler.Invoke)
//	}
package relay
