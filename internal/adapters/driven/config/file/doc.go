// Package file provides TOML-backed configuration storage.
//
// Configuration lives in ~/.gitpulse/config.toml with restricted
// permissions, since it may contain a GitHub token. Nested TOML
// tables are flattened into dot-notation keys, so [github] token =
// "x" is read as "github.token".
//
// Recognised keys:
//
//   - github.token: Personal Access Token used when no environment
//     token is set
//   - engine.batch_size: concurrent per-repository fetches per batch
//   - engine.scope: required token scope (default "repo")
package file
