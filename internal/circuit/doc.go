// Package circuit defines the input model consumed by the Quirk converter.
//
// A Circuit is an ordered list of operations. Each Operation pairs a Gate
// with the qubit positions it acts on, in the gate's own qubit order. For a
// Controlled gate that order is control qubits first, then the qubits of the
// base gate. Nothing in a plain list of positions can confirm this, so it is
// a caller obligation: front ends in internal/compiler emit placements in
// that order.
//
// Gate is a closed union. The variants are Fixed, Rotation, Controlled and
// Opaque; the unexported marker method keeps other packages from adding new
// ones, so a type switch over the four cases is exhaustive.
package circuit
