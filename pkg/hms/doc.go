// Package hms normalizes free-form hour/minute/second input.
//
// Input fields are typed by a user and may contain anything. Every field is
// coerced rather than rejected: non-digit characters are stripped and an
// empty or unparsable field counts as zero.
//
// # Carry-over
//
// The three fields are summed into a total number of seconds and decomposed
// again, so out-of-range components roll over into the next unit:
//
//	Normalize("0", "90", "0")   // 1h 30m 0s
//	Normalize("1", "0", "3661") // 2h 1m 1s
//
// Normalization is idempotent: normalizing the rendered fields of a
// normalized Triple yields the same Triple.
package hms
