package domain

import (
	"context"

	gh "octoview/internal/adapters/upstream/github"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Summary(ctx context.Context, in SummaryInput) (UserSummary, error)
	TopRepos(ctx context.Context, in ReposInput) ([]RepoCard, error)
	Connections(ctx context.Context, in ConnectionsInput) ([]ConnectionCard, error)
	Recent(ctx context.Context, in RecentInput) ([]RecentEntry, error)
}

// UpstreamPort is the slice of the GitHub client the service consumes.
// Narrowed so tests can stub the upstream without a live server.
type UpstreamPort interface {
	EnsureQuota(ctx context.Context)
	UserByLogin(ctx context.Context, login string) (gh.User, error)
	AllRepos(ctx context.Context, login string) ([]gh.Repo, error)
	RepoLanguages(ctx context.Context, owner, name string) (map[string]int64, error)
	ConnectionsPage(ctx context.Context, login, kind string, page, pageSize int) ([]gh.Connection, error)
}

// TrackerPort records first-seen language occurrences for the global
// ranking. Owned by the ranking module and injected at mount time.
type TrackerPort interface {
	RecordOnce(ctx context.Context, username string, percentages map[string]int) error
}
