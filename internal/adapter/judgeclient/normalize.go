package judgeclient

import (
	"encoding/json"
	"fmt"
)

// normalizeArray accepts either wire shape the judge emits for a sequence,
// a bare JSON array or an object wrapping the array in a "$values" property,
// and always returns a plain ordered slice. Absent or null input yields nil.
func normalizeArray[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var bare []T
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Values []T `json:"$values"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("unrecognized sequence shape: %w", err)
	}
	return wrapped.Values, nil
}
