package relay

import "net/http"

// Acknowledgment is returned to the invoking environment once the event has
// been handed to sqs.
type Acknowledgment struct {
	StatusCode int    `json:"statusCode"`
	MessageID  string `json:"messageId,omitempty"`
}

// Success returns the fixed {"statusCode": 200} acknowledgment.
func Success() Acknowledgment {
	return Acknowledgment{StatusCode: http.StatusOK}
}

// Result is the outcome of relaying one event: exactly one of Ack or Err is
// meaningful.
type Result struct {
	Ack Acknowledgment
	Err error
}

// Ok returns true if the event was submitted.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Unpack returns the result in the (value, error) form the lambda runtime
// expects. The acknowledgment is zero whenever an error is returned.
func (r Result) Unpack() (Acknowledgment, error) {
	if r.Err != nil {
		return Acknowledgment{}, r.Err
	}

	return r.Ack, nil
}

func succeeded(ack Acknowledgment) Result {
	return Result{Ack: ack}
}

func failed(err error) Result {
	return Result{Err: err}
}
