// Package libdiff compares IUTF documents.
//
// [Diff] compares the canonical IUTF encodings of two trees character by
// character, so formatting and comments in the sources do not matter.
// [MergePatch] expresses the difference as an RFC 7386 JSON merge patch.
package libdiff
