// Package domain defines the core entities for minigrep.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Config: Query, filename and case policy for one invocation
//   - CasePolicy: Sensitive or Insensitive comparison
//   - Match: A matched line and its position in the text body
//   - SearchReport: The outcome of one search over one text body
//   - AppSettings: Persistent defaults applied when flags are absent
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
