// Package sanitizer normalizes free-text portal inputs before validation and
// storage.
//
// All functions are idempotent - applying them multiple times produces the
// same result - and handle invalid input by returning empty strings rather
// than errors.
//
// Normalization includes:
//   - Labels (lot names): collapse whitespace, lowercase
//   - Vehicle plates: uppercase, keep letters and digits only
package sanitizer
