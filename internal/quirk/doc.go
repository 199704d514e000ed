// Package quirk converts circuits into the column grid used by the Quirk
// circuit simulator and renders that grid as a Quirk URL.
//
// The conversion is a single forward pass:
//
//  1. Classify maps each gate to one display token per qubit it touches.
//  2. Grid.Append places the tokens into a column and merges that column
//     into the previous one when no row is occupied on both sides.
//  3. Encode and URL render the finished grid as compact JSON under the
//     "cols" key, appended to the Quirk base address.
//
// The first invalid operation aborts the whole conversion; no partial grid
// or URL is returned. Errors are *Error values carrying a Code and the index
// of the failing operation.
//
// Only the circuit → URL direction exists. Parsing a Quirk URL back into a
// circuit is not provided.
package quirk
