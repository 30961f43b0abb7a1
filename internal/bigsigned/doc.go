// Package bigsigned implements the Signed Integer collaborator of
// spec.md §3: a (sign, magnitude) pair that forwards every magnitude
// operation to decimal.Uint and fixes up signs per C-style
// truncated-division rules (spec.md §8 S7).
package bigsigned
