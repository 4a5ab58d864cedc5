// Package codec provides element codecs and the persisted form shared by the
// dColl containers.
//
// The persisted form of any container is its element count followed by every
// element in iteration order. Maps write each key followed by its value. Reading
// hands the count to the caller first so storage can be allocated with exactly
// that size, which makes a write/read round trip reproduce the original
// iteration order.
//
// Available codecs:
//   - Binary: little-endian fixed-width scalars (platform-sized integers as 64 bit)
//   - String: uint32 length prefix followed by the raw bytes
//   - GOB: Go's gob encoding for arbitrary types, length-prefixed per element
//   - JSON: json encoding (json-iterator), length-prefixed per element
package codec
