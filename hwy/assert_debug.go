//go:build hwydebug

package hwy

// debugChecks enables precondition checks on raw-slice loads and stores.
const debugChecks = true
