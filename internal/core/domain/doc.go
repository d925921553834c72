// Package domain defines the core business entities for gitpulse.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Repository: A GitHub repository visible to the principal
//   - Commit: A single commit attributed to its owning repository
//   - RateLimitInfo: A point-in-time snapshot of API quota
//   - Principal: The authenticated identity behind API calls
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
