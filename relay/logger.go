package relay

import (
	"io"
	"log/slog"
)

// Logger is the diagnostics sink used by the handler. *slog.Logger satisfies
// it; tests substitute a recorder.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Common log field names.
const (
	FieldQueueURL  = "queue_url"
	FieldMessageID = "message_id"
	FieldEvent     = "event"
	FieldBytes     = "bytes"
	FieldError     = "error"
	FieldAckMode   = "ack_mode"
)

// NewLogger returns a json slog logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// QueueURL returns a slog attribute for the destination queue.
func QueueURL(url string) slog.Attr {
	return slog.String(FieldQueueURL, url)
}

// MessageID returns a slog attribute for the sqs message id.
func MessageID(id string) slog.Attr {
	return slog.String(FieldMessageID, id)
}

// EventBody returns a slog attribute holding the raw event text.
func EventBody(body string) slog.Attr {
	return slog.String(FieldEvent, body)
}

// Bytes returns a slog attribute for a payload size.
func Bytes(n int) slog.Attr {
	return slog.Int(FieldBytes, n)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
