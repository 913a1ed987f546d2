// Package envelope unwraps the upstream provider's response envelopes.
//
// The provider is loose about how it wraps payload arrays: some endpoints
// return a bare array, some wrap it in {"data": [...]}, and paged endpoints
// use {"content": [...]}. Detection is a closed union over those known shapes
// so that callers pattern-match once instead of probing fields ad hoc.
// Anything unrecognized degrades to an empty result; unwrapping never fails.
package envelope

// Kind identifies which known envelope shape a payload used.
type Kind int

const (
	// Unknown covers every shape that is not one of the recognized envelopes.
	Unknown Kind = iota
	// Bare is a top-level JSON array.
	Bare
	// DataWrapped is an object whose "data" field holds the array.
	DataWrapped
	// ContentWrapped is an object whose "content" field holds the array,
	// the provider's paging envelope.
	ContentWrapped
)

// Record is a single raw element of an unwrapped payload. Elements are not
// guaranteed to be well-typed; numeric fields may arrive as strings or be
// absent entirely.
type Record = map[string]any

// Detect classifies a decoded JSON payload and returns the wrapped array.
// The payload must be the result of unmarshalling into any (maps, slices and
// primitives). Unknown shapes yield a nil slice, never an error.
func Detect(payload any) (Kind, []any) {
	switch v := payload.(type) {
	case []any:
		return Bare, v
	case map[string]any:
		if items, ok := v["data"].([]any); ok {
			return DataWrapped, items
		}
		if items, ok := v["content"].([]any); ok {
			return ContentWrapped, items
		}
	}
	return Unknown, nil
}

// Records unwraps a payload into its raw records. Array elements that are not
// objects are dropped. An unrecognized envelope yields an empty slice, which
// callers must treat as "no data", not as failure.
func Records(payload any) []Record {
	_, items := Detect(payload)
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records
}
