// Package infer converts untyped — often textual — values into their
// narrowest matching semantic type: Int, Float, Bool, Date or String.
//
// 🚀 How inference works
//
//	Infer tries the kind parsers in a fixed priority order and the
//	first success wins:
//	  • Int    — integers pass through; other numerics round; text must
//	    be a fully-consumed integer literal
//	  • Float  — numerics pass through; text must be a fully-consumed
//	    float literal
//	  • Bool   — booleans pass through; numerics coerce via
//	    "rounded value ≠ 0"; text must be "true"/"false" after trimming
//	  • Date   — time.Time passes through; text must be a complete
//	    ISO-8601 calendar date (2006-01-02), no partial parse
//	  • String — the terminal kind; text passes through, anything else
//	    is stringified
//
//	Slices ([]any) and string-keyed maps (map[string]any) recurse
//	element-wise, preserving structure and keys. The frame leg of the
//	recursion lives in frame.Frame.InferTypes, keeping this package a
//	leaf.
//
// As performs forced conversion with a single kind's parser and
// returns ErrConversion when that parser rejects a scalar — no
// fallback, no recovery.
package infer
