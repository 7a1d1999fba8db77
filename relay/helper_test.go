package relay

import (
	"log/slog"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/stretchr/testify/require"
)

const testQueueURL = "https://queue.example/my-queue"

type mockSQSClient struct {
	sqsiface.SQSAPI

	output *sqs.SendMessageOutput
	err    error

	inputs      []*sqs.SendMessageInput
	hadDeadline bool
}

func (m *mockSQSClient) SendMessageWithContext(ctx aws.Context, input *sqs.SendMessageInput, _ ...request.Option) (*sqs.SendMessageOutput, error) {
	m.inputs = append(m.inputs, input)
	_, m.hadDeadline = ctx.Deadline()

	if m.err != nil {
		return nil, m.err
	}

	if m.output != nil {
		return m.output, nil
	}

	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

type logEntry struct {
	level slog.Level
	msg   string
	attrs map[string]string
}

type recordingLogger struct {
	entries []logEntry
}

func (r *recordingLogger) record(level slog.Level, msg string, args []any) {
	attrs := map[string]string{}
	for _, a := range args {
		if attr, ok := a.(slog.Attr); ok {
			attrs[attr.Key] = attr.Value.String()
		}
	}

	r.entries = append(r.entries, logEntry{level: level, msg: msg, attrs: attrs})
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.record(slog.LevelDebug, msg, args) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record(slog.LevelInfo, msg, args) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record(slog.LevelError, msg, args) }

func (r *recordingLogger) find(msg string) (logEntry, bool) {
	for _, e := range r.entries {
		if e.msg == msg {
			return e, true
		}
	}

	return logEntry{}, false
}

func testConfig() *Config {
	return &Config{
		QueueURL:    testQueueURL,
		SendTimeout: DefaultSendTimeout,
		AckMode:     AckFixed,
		LogLevel:    "info",
		LogEvents:   true,
	}
}

func testEvent(t *testing.T, file string) Event {
	b, err := os.ReadFile("testdata/" + file)
	require.NoError(t, err)

	e, err := ParseEvent(b)
	require.NoError(t, err)

	return e
}
