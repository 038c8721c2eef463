// SPDX-License-Identifier: MIT
// Package infer: sentinel error set.

package infer

import "errors"

var (
	// ErrConversion is returned by As when the requested kind's parser
	// rejects a scalar. Callers are expected to propagate it unrecovered;
	// the wrap carries the offending value and kind for context.
	ErrConversion = errors.New("infer: conversion failed")

	// ErrUnknownKind is returned by As when the kind argument is not one
	// of the declared Kind constants.
	ErrUnknownKind = errors.New("infer: unknown kind")
)
