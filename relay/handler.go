package relay

import (
	"context"
	"crypto/md5"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/pkg/errors"

	"github.com/prognoshealth/eventrelay/lambdautils"
)

// Handler relays invocation events to the configured sqs queue. It holds only
// read-only state and is safe for concurrent use.
type Handler struct {
	cfg    *Config
	svc    sqsiface.SQSAPI
	logger Logger
}

// NewHandler returns a Handler sending through svc. A nil logger discards
// diagnostics.
func NewHandler(cfg *Config, svc sqsiface.SQSAPI, logger Logger) *Handler {
	if logger == nil {
		logger = nopLogger{}
	}

	return &Handler{
		cfg:    cfg,
		svc:    svc,
		logger: logger,
	}
}

// Invoke is the lambda entry point. It returns {"statusCode": 200} once the
// event has been submitted, otherwise the error is returned to the runtime.
func (h *Handler) Invoke(ctx context.Context, event Event) (Acknowledgment, error) {
	return h.Relay(ctx, event).Unpack()
}

// Relay submits event as the body of one sqs message.
//
// A missing queue url yields a ConfigurationError and nothing is sent. A failed
// send yields a SubmissionError. Neither is retried.
func (h *Handler) Relay(ctx context.Context, event Event) Result {
	fields := lambdautils.GetLambdaMetaData(ctx).LogAttrs()

	if err := h.cfg.Validate(); err != nil {
		h.logger.Error("relay is not configured", append(fields, Error(err))...)
		return failed(err)
	}

	queueURL := h.cfg.QueueURL
	fields = append(fields, QueueURL(queueURL))

	body, err := event.Body()
	if err != nil {
		return failed(&SubmissionError{QueueURL: queueURL, Err: err})
	}

	if h.cfg.LogEvents {
		h.logger.Info("received event", append(fields, EventBody(body))...)
	}

	out, err := h.send(ctx, queueURL, body)
	if err != nil {
		h.logger.Error("failed sending message", append(fields, awsErrorAttrs(err)...)...)
		return failed(&SubmissionError{QueueURL: queueURL, Err: err})
	}

	ack := Success()
	messageID := aws.StringValue(out.MessageId)

	h.logger.Info("sent message", append(fields, MessageID(messageID), Bytes(len(body)))...)

	if h.cfg.ackMode() == AckDownstream {
		if err := confirm(out, body); err != nil {
			h.logger.Error("queue did not confirm message", append(fields, Error(err))...)
			return failed(&SubmissionError{QueueURL: queueURL, Err: err})
		}

		ack.MessageID = messageID
	}

	return succeeded(ack)
}

// send performs the single SendMessage call under the configured timeout.
func (h *Handler) send(ctx context.Context, queueURL, body string) (*sqs.SendMessageOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, h.cfg.timeout())
	defer cancel()

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(body),
	}

	out, err := h.svc.SendMessageWithContext(ctx, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed sending message to %v", queueURL)
	}

	if out == nil {
		out = &sqs.SendMessageOutput{}
	}

	return out, nil
}

// confirm checks that the queue reported a message id and, when present, that
// the body md5 matches what was sent.
func confirm(out *sqs.SendMessageOutput, body string) error {
	if aws.StringValue(out.MessageId) == "" {
		return errors.New("response carried no message id")
	}

	if out.MD5OfMessageBody == nil {
		return nil
	}

	expected := fmt.Sprintf("%x", md5.Sum([]byte(body)))
	if actual := aws.StringValue(out.MD5OfMessageBody); actual != expected {
		return errors.Errorf("body md5 mismatch: sent %s, queue reported %s", expected, actual)
	}

	return nil
}

// awsErrorAttrs returns log attributes for err, including the aws error code
// when the sdk supplied one.
func awsErrorAttrs(err error) []any {
	attrs := []any{Error(err)}

	var aerr awserr.Error
	if errors.As(err, &aerr) {
		attrs = append(attrs, slog.String("aws_error_code", aerr.Code()))
	}

	return attrs
}

// LogOnly returns a lambda handler that logs each event and acknowledges it
// without sending anything.
func LogOnly(logger Logger) func(context.Context, Event) (Acknowledgment, error) {
	if logger == nil {
		logger = nopLogger{}
	}

	return func(ctx context.Context, event Event) (Acknowledgment, error) {
		body, err := event.Body()
		if err != nil {
			return Acknowledgment{}, err
		}

		fields := lambdautils.GetLambdaMetaData(ctx).LogAttrs()
		logger.Info("received event", append(fields, EventBody(body))...)

		return Success(), nil
	}
}
