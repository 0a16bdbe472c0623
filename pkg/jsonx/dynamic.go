// Package jsonx holds small helpers for working with dynamic JSON values.
package jsonx

import json "github.com/goccy/go-json"

// ToDynamicJSON converts any Go value to a dynamic JSON object represented as
// a map[string]any, by round-tripping it through its JSON encoding. Useful
// when a typed value needs to travel through an open-ended options bag.
func ToDynamicJSON(val any) (map[string]any, error) {
	result := make(map[string]any)
	b, err := json.Marshal(val)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(b, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// MergeShallow overlays over on top of base, returning a fresh map. Keys in
// over fully replace the base value for that key, there is no deep merge.
// Neither input is mutated; the result is never nil.
func MergeShallow(base, over map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(over))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}
