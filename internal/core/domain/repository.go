package domain

import "time"

// Repository represents a GitHub repository visible to the
// authenticated principal. Instances are immutable once constructed;
// identity is FullName.
type Repository struct {
	// ID is GitHub's numeric repository identifier.
	ID int64

	// Name is the repository name without the owner prefix.
	Name string

	// FullName is "owner/name" and acts as the unique key.
	FullName string

	// OwnerLogin is the login of the owning user or organisation.
	OwnerLogin string

	// Private reports whether the repository is private.
	Private bool

	// Language is the primary language. Empty when GitHub reports none.
	Language string

	// HTMLURL is the repository's web URL.
	HTMLURL string

	// Archived reports whether the repository is archived.
	Archived bool

	// Fork reports whether the repository is a fork.
	Fork bool
}

// Commit represents a single commit fetched from a repository.
// Never mutated after creation.
type Commit struct {
	// SHA is the commit hash, unique within a repository.
	SHA string

	// Message is the full commit message.
	Message string

	// AuthorName is the git author name recorded on the commit.
	AuthorName string

	// AuthorDate is when the commit was authored.
	AuthorDate time.Time

	// AuthorLogin is the GitHub login of the author, when GitHub
	// could resolve one. Empty otherwise.
	AuthorLogin string

	// AuthorAvatarURL is the author's avatar, when resolved.
	AuthorAvatarURL string

	// Repository is the FullName of the owning repository.
	Repository string

	// HTMLURL is the commit's web URL.
	HTMLURL string
}

// Principal is the authenticated identity on whose behalf API calls
// are made.
type Principal struct {
	// Login is the account login.
	Login string

	// ID is GitHub's numeric account identifier.
	ID int64

	// Type is the account type ("User" or "Organization").
	Type string
}

// RateLimitInfo is a point-in-time snapshot of the REST API quota.
// Recomputed fresh on every check; never persisted.
type RateLimitInfo struct {
	// Limit is the total request quota for the current window.
	Limit int

	// Remaining is the number of requests left. Always >= 0 and
	// <= Limit.
	Remaining int

	// ResetAt is when the quota window resets.
	ResetAt time.Time
}
