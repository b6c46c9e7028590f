package event

import "encoding/json"

// DecodePayload decodes an event payload into T. In-process payloads are already T;
// payloads read back from a dead-letter file or another transport go through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
