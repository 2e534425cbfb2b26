//go:build yup

package math

// lowerBy is the sign of "down" on the y axis. With the yup tag, y grows upwards.
const lowerBy int32 = -1
