package infer_test

import (
	"fmt"

	"github.com/katalvlaran/tabular/infer"
)

// ExampleInfer demonstrates the first-success-wins priority ladder.
func ExampleInfer() {
	for _, raw := range []any{"10", "10.1", "false", "2018-01-01", "lflkj123f"} {
		v := infer.Infer(raw)
		fmt.Printf("%v (%T)\n", v, v)
	}
	// Output:
	// 10 (int)
	// 10.1 (float64)
	// false (bool)
	// 2018-01-01 00:00:00 +0000 UTC (time.Time)
	// lflkj123f (string)
}

// ExampleAs demonstrates forced conversion bypassing the priority order.
func ExampleAs() {
	v, err := infer.As("10", infer.Float)
	fmt.Println(v, err)

	_, err = infer.As("ten", infer.Float)
	fmt.Println(err)
	// Output:
	// 10 <nil>
	// infer: cannot convert ten (string) to Float: infer: conversion failed
}
