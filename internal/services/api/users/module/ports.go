package module

import (
	"context"

	"octoview/internal/services/api/users/domain"
	userssvc "octoview/internal/services/api/users/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptUsersPort struct{ svc userssvc.Service }

// Summary runs the aggregation pipeline for one username
func (a adaptUsersPort) Summary(ctx context.Context, in domain.SummaryInput) (domain.UserSummary, error) {
	return a.svc.Summary(ctx, in)
}

// TopRepos returns the user's repositories ordered by stars
func (a adaptUsersPort) TopRepos(ctx context.Context, in domain.ReposInput) ([]domain.RepoCard, error) {
	return a.svc.TopRepos(ctx, in)
}

// Connections returns one page of followers or following
func (a adaptUsersPort) Connections(ctx context.Context, in domain.ConnectionsInput) ([]domain.ConnectionCard, error) {
	return a.svc.Connections(ctx, in)
}

// Recent lists cached usernames most-recent-first
func (a adaptUsersPort) Recent(ctx context.Context, in domain.RecentInput) ([]domain.RecentEntry, error) {
	return a.svc.Recent(ctx, in)
}
