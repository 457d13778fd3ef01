//go:build !hwydebug

package hwy

// debugChecks enables precondition checks on raw-slice loads and stores.
// Build with -tags hwydebug to turn them on.
const debugChecks = false
