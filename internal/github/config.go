package github

const (
	// DefaultBatchSize bounds concurrent per-repository fetches.
	DefaultBatchSize = 10

	// DefaultPerPage is the page size used for all list calls.
	DefaultPerPage = 100

	// DefaultScopeRequirement is the token scope required for full
	// repository discovery.
	DefaultScopeRequirement = "repo"
)

// Options configures the engine. The zero value is usable; missing
// fields fall back to the defaults above.
type Options struct {
	// BatchSize is the number of repositories fetched concurrently
	// per batch. Peak in-flight requests never exceed it.
	BatchSize int

	// PerPage is the page size for list calls.
	PerPage int

	// ScopeRequirement is the token scope whose absence makes
	// repository discovery fail outright.
	ScopeRequirement string
}

// withDefaults fills unset fields with their defaults.
func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.PerPage <= 0 {
		o.PerPage = DefaultPerPage
	}
	if o.ScopeRequirement == "" {
		o.ScopeRequirement = DefaultScopeRequirement
	}
	return o
}
