// Package decimal implements an arbitrary-precision unsigned decimal integer:
// a packed base-1e9 limb vector plus the schoolbook, FFT, and Newton-division
// kernels that operate on it. internal/bigsigned layers sign handling on top.
package decimal
