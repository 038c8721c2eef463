// Package tabular is your in-memory playground for labeled 2D tabular
// data — rectangular value matrices wrapped with row & column labels,
// plus the selection and transform algebra built on top of them.
//
// 🚀 What is tabular?
//
//	A modern, immutable, dependency-light library that brings together:
//		• Raw primitives: rectangular matrices of arbitrary cells
//		• Labeled frames: index (row labels) + columns (column labels)
//		• Selection: label-based (Loc/At) and positional (ILoc/IAt)
//		• Transforms: map, flat-map, filter, sort, group-by, cumsum
//		• Type inference: Int → Float → Bool → Date → String, first win
//		• Text I/O: whitespace "parse" format and CSV import/export
//
// ✨ Why choose tabular?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Value semantics – every operation returns a new Matrix/Frame
//   - Pure Go – no cgo, no hidden deps
//   - Safe sharing – immutability makes concurrent reads lock-free
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/ — rectangular, unlabeled tables and all structural ops
//	infer/  — best-effort scalar type inference and forced conversion
//	frame/  — the labeled Frame: construction, selection, transforms
//	textio/ — whitespace parsing (with inference) and CSV (without)
//
// Quick ASCII example:
//
//	        A   B
//	    x   1   2
//	    y   3   4
//
//	represents a 2×2 Frame with index [x y] and columns [A B].
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/tabular/frame
package tabular
