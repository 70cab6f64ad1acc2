package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyPayload is returned when an event carries no payload
var ErrEmptyPayload = errors.New("event has no payload")

// DecodePayload converts an event payload into T. Typed values (and pointers to
// them) pass through; raw JSON is unmarshalled; anything else, such as a map
// from a generic decoder, is re-encoded through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case nil:
		return result, ErrEmptyPayload
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, ErrEmptyPayload
		}
		return *v, nil
	case json.RawMessage:
		return result, unmarshalPayload(v, &result)
	case []byte:
		return result, unmarshalPayload(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf(ErrMsgEncodePayload, err)
	}
	return result, unmarshalPayload(data, &result)
}

func unmarshalPayload(data []byte, dst interface{}) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, err)
	}
	return nil
}
