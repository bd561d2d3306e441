// Package app wires the loading, reconciliation, and rendering stages into
// one run and owns the logger configuration for the process.
package app
