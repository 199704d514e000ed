// Package harness runs conversion scenarios.
//
// A scenario names one circuit and the outcome its conversion must have.
// It either points at a circuit file or carries the circuit inline.
//
// # Scenario Format
//
//	name: bell
//	description: "Hadamard then CNOT"
//	circuit: ../circuits/bell.yaml   # relative to the scenario file
//	expect:
//	  url: 'https://algassert.com/quirk#circuit={"cols":[["H"],["•","X"]]}'
//
// or with an inline YAML circuit and a structural column check:
//
//	name: parallel
//	description: "Gates on disjoint wires share a column"
//	inline: |
//	  qubits: 2
//	  ops:
//	    - {gate: x, qubits: [0]}
//	    - {gate: y, qubits: [1]}
//	expect:
//	  cols: [["X", "Y"]]
//
// A failing conversion is expected with an error code:
//
//	expect:
//	  error: UNSUPPORTED_GATE
//
// # Expectations
//
//   - url: the produced URL must match byte for byte
//   - cols: the produced columns must equal the given value once both are
//     viewed as JSON
//   - error: conversion must fail with this code (see quirk.ErrorCode)
//
// Golden comparison (RunWithGolden) stores the URL, or the error code, under
// testdata/golden/{scenario.Name}.golden.
package harness
