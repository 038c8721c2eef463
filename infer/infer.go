// SPDX-License-Identifier: MIT
// Package infer: the public inference and forced-conversion entry points.

package infer

import "fmt"

// Infer converts v to its narrowest matching semantic type.
// Stage 1 (Recurse): slices and string-keyed maps are rebuilt
// element-wise, preserving structure and keys.
// Stage 2 (Scan): scalars are tried against the kind parsers in fixed
// priority — Int, Float, Bool, Date, String — and the first success
// wins. String always succeeds, so Infer never fails.
// Complexity: O(size of v) for composites, O(1) per scalar.
func Infer(v any) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Infer(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Infer(e)
		}
		return out
	default:
		for _, k := range kinds {
			if c, ok := parseScalar(v, k); ok {
				return c
			}
		}
		// Unreachable: String always succeeds.
		return v
	}
}

// As forces v into kind k using only that kind's parser.
// Composites recurse like Infer; a scalar the parser rejects is
// ErrConversion, wrapped with the offending value and kind, and is
// expected to propagate unrecovered.
// Complexity: O(size of v) for composites, O(1) per scalar.
func As(v any, k Kind) (any, error) {
	if k < Int || k > String {
		return nil, fmt.Errorf("infer: As(%v): %w", int(k), ErrUnknownKind)
	}
	switch x := v.(type) {
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			c, err := As(e, k)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for key, e := range x {
			c, err := As(e, k)
			if err != nil {
				return nil, err
			}
			out[key] = c
		}
		return out, nil
	default:
		c, ok := parseScalar(v, k)
		if !ok {
			return nil, fmt.Errorf("infer: cannot convert %v (%T) to %s: %w", v, v, k, ErrConversion)
		}
		return c, nil
	}
}
