package relay

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Event is the opaque json object delivered by the invoking environment. The
// raw text is kept so the forwarded body preserves the caller's key order.
type Event struct {
	raw json.RawMessage
}

// NewEvent builds an Event from a keyed mapping. Keys are encoded in the
// sorted order encoding/json uses for maps.
func NewEvent(m map[string]interface{}) (Event, error) {
	if m == nil {
		m = map[string]interface{}{}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return Event{}, errors.Wrap(err, "failed to marshal event")
	}

	return Event{raw: b}, nil
}

// ParseEvent returns the Event held in b. b must be a json object.
func ParseEvent(b []byte) (Event, error) {
	var e Event
	if err := e.UnmarshalJSON(b); err != nil {
		return Event{}, err
	}

	return e, nil
}

// UnmarshalJSON lets the lambda runtime decode the invocation payload straight
// into an Event.
func (e *Event) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.Errorf("event must be a json object, received: %.64s", trimmed)
	}

	if !json.Valid(trimmed) {
		return errors.New("event is not valid json")
	}

	e.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

// MarshalJSON returns the event text unchanged. A zero Event encodes as {}.
func (e Event) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return []byte("{}"), nil
	}

	return e.raw, nil
}

// Body returns the compact json text sent as the sqs message body.
func (e Event) Body() (string, error) {
	raw, _ := e.MarshalJSON()

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", errors.Wrap(err, "failed to encode event")
	}

	return buf.String(), nil
}

// Decode returns the event as a generic keyed mapping.
func (e Event) Decode() (map[string]interface{}, error) {
	raw, _ := e.MarshalJSON()

	m := map[string]interface{}{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrap(err, "failed to decode event")
	}

	return m, nil
}
