// Package encode renders [ir.Node] trees as text.
//
// Four formats are supported, selected with [EncodeFormat]:
//
//   - format.DebugFormat: indented JSON-like text for diagnostics. Floats
//     have six decimals, characters are written 'c' and strings are written
//     without escaping. It is not meant to be parsed back.
//   - format.IUTFFormat: an IUTF document which parses back to an
//     equivalent tree. A root branch gets the "iutf:init:main" header.
//   - format.JSONFormat: JSON, keeping the order of branch entries.
//   - format.YAMLFormat: YAML, keeping the order of branch entries.
//
// Some trees built through the ir API have no IUTF spelling, such as keys
// which are not identifiers or negative numbers. Encoding those in
// IUTFFormat fails with [ErrEncoding].
package encode
