//go:build !yup

package math

// lowerBy is the sign of "down" on the y axis. Screen space grows downwards by default.
const lowerBy int32 = 1
