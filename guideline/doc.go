// Package guideline defines the external guideline record consumed by the
// journey classification core and the normalizer that turns it into a safe
// internal (condition, action) representation.
//
// Normalization resolves metadata overrides, defaults missing fields to empty
// text and escapes template-control braces so guideline text can be embedded
// into prompt templates without being interpreted as substitution markers.
// The normalizer is a total, pure function: it never fails and is safe for
// unlimited concurrent invocation.
package guideline
