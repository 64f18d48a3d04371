// Package cli parses flowgrid command-line arguments into a Config and
// carries the process exit code of usage errors.
package cli
