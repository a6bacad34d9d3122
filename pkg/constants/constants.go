// Package constants collects the small string/number constants the
// transport and CLI share, in the teacher's own flat-const-block idiom
// (ThoDHa-sudoku/api/pkg/constants/constants.go: StatusCompleted/
// StatusStalled/... as plain string constants), trimmed down to what
// this module's facade/transport actually reference.
package constants

// APIVersion is reported by the HTTP transport's /health endpoint.
const APIVersion = "0.1.0"

// DefaultPort is used when the PORT environment variable is unset.
const DefaultPort = "8080"

// MaxGameNumber is the upper bound spec.md §6.1's pick_game accepts.
const MaxGameNumber = 10000
