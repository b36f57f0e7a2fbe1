// Package validate checks that a parsed IUTF document carries the fields
// every document must have: a "title" of type String and a "version" of
// type Integer or Float, both direct children of the root branch.
//
// Nested branches and array contents are not examined, and duplicate keys
// are allowed.
package validate
