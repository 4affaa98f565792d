// Package codec converts execution configuration snapshots and output
// sequences to and from JSON.
//
// Decoding is strict by default: payloads carrying unknown fields are
// rejected with a *DecodeError. Lenient returns a decoder that ignores
// unknown fields for forward compatibility. Decode failures are always
// recoverable errors; malformed input never terminates the process.
//
// The package depends only on the value types it is given and behaves
// identically in sequential and parallel builds.
package codec
