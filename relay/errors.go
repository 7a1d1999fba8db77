package relay

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigurationError reports a missing or malformed setting. No message is
// sent when it is returned.
type ConfigurationError struct {
	Key string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("configuration error: %s", e.Key)
	}

	return fmt.Sprintf("configuration error: %s: %v", e.Key, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Cause supports errors.Cause from github.com/pkg/errors.
func (e *ConfigurationError) Cause() error { return e.Err }

// SubmissionError reports a failed SendMessage call, or in AckDownstream mode
// a response that does not confirm the message that was sent.
type SubmissionError struct {
	QueueURL string
	Err      error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("failed submitting message to %s: %v", e.QueueURL, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Cause supports errors.Cause from github.com/pkg/errors.
func (e *SubmissionError) Cause() error { return e.Err }

// IsConfigurationError returns true if err is, or wraps, a ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsSubmissionError returns true if err is, or wraps, a SubmissionError.
func IsSubmissionError(err error) bool {
	var target *SubmissionError
	return errors.As(err, &target)
}
