// Package service contains the user aggregation workflows
package service

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"octoview/internal/modkit/repokit"
	perr "octoview/internal/platform/errors"
	"octoview/internal/platform/logger"
	"octoview/internal/services/api/users/domain"
	"octoview/internal/services/api/users/repo"

	gh "octoview/internal/adapters/upstream/github"
)

const (
	defaultTopRepos    = 10
	defaultConnections = 30
)

// Service defines the users service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the users service
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	gh      domain.UpstreamPort
	tracker domain.TrackerPort
	log     logger.Logger
}

// New constructs a users service. tracker may be nil when the ranking
// module is not mounted; occurrence recording is then skipped.
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], up domain.UpstreamPort, tracker domain.TrackerPort) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	if up == nil {
		panic("users.Service requires a non nil UpstreamPort")
	}
	return &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		gh:      up,
		tracker: tracker,
		log:     *logger.Named("users"),
	}
}

// canonLogin folds a username to its canonical lookup form.
// GitHub logins are case-insensitive; cache and occurrence keys
// must not split on caller casing.
func canonLogin(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Summary runs the full aggregation pipeline for one username:
// quota guard, profile fetch, repo pagination, chunked language
// fan-out, percentage normalization, then best-effort cache writes
func (s *Svc) Summary(ctx context.Context, in domain.SummaryInput) (domain.UserSummary, error) {
	login := canonLogin(in.Username)
	if login == "" {
		return domain.UserSummary{}, perr.InvalidArgf("username is required")
	}

	s.gh.EnsureQuota(ctx)

	profile, err := s.gh.UserByLogin(ctx, login)
	if err != nil {
		return domain.UserSummary{}, mapUpstreamErr(err, login)
	}

	repos, err := s.gh.AllRepos(ctx, login)
	if err != nil {
		return domain.UserSummary{}, mapUpstreamErr(err, login)
	}

	acc, stars := s.aggregate(ctx, profile.Login, repos)
	percentages := acc.Percentages()

	out := domain.UserSummary{
		Login:               profile.Login,
		DisplayName:         profile.Name,
		AvatarURL:           profile.AvatarURL,
		Bio:                 profile.Bio,
		Followers:           profile.Followers,
		Following:           profile.Following,
		PublicRepos:         profile.PublicRepos,
		LanguagePercentages: percentages,
		TotalStars:          stars,
		MemberSince:         profile.CreatedAt.UTC().Format("January 2006"),
	}

	// side-effecting writes must never fail the response
	if err := s.recordRecent(ctx, login, profile.AvatarURL); err != nil {
		s.log.Warn().Err(err).Str("login", login).Msg("recency cache write failed, continuing")
	}
	if s.tracker != nil {
		if err := s.tracker.RecordOnce(ctx, login, percentages); err != nil {
			s.log.Warn().Err(err).Str("login", login).Msg("occurrence record failed, continuing")
		}
	}
	return out, nil
}

// TopRepos returns the user's repositories ordered by stars descending
func (s *Svc) TopRepos(ctx context.Context, in domain.ReposInput) ([]domain.RepoCard, error) {
	login := canonLogin(in.Username)
	if login == "" {
		return nil, perr.InvalidArgf("username is required")
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultTopRepos
	}

	s.gh.EnsureQuota(ctx)

	repos, err := s.gh.AllRepos(ctx, login)
	if err != nil {
		return nil, mapUpstreamErr(err, login)
	}
	sort.SliceStable(repos, func(i, j int) bool { return repos[i].Stargazers > repos[j].Stargazers })
	if len(repos) > limit {
		repos = repos[:limit]
	}

	out := make([]domain.RepoCard, 0, len(repos))
	for _, r := range repos {
		out = append(out, domain.RepoCard{
			Name:        r.Name,
			Description: r.Description,
			Stars:       r.Stargazers,
			Forks:       r.Forks,
			Watchers:    r.Watchers,
			Language:    r.Language,
			HTMLURL:     r.HTMLURL,
		})
	}
	return out, nil
}

// Connections returns one page of the user's followers or following
func (s *Svc) Connections(ctx context.Context, in domain.ConnectionsInput) ([]domain.ConnectionCard, error) {
	login := canonLogin(in.Username)
	if login == "" {
		return nil, perr.InvalidArgf("username is required")
	}
	if in.Kind != "followers" && in.Kind != "following" {
		return nil, perr.InvalidArgf("kind must be followers or following")
	}
	page := in.Page
	if page <= 0 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultConnections
	}

	s.gh.EnsureQuota(ctx)

	conns, err := s.gh.ConnectionsPage(ctx, login, in.Kind, page, limit)
	if err != nil {
		return nil, mapUpstreamErr(err, login)
	}
	out := make([]domain.ConnectionCard, 0, len(conns))
	for _, c := range conns {
		out = append(out, domain.ConnectionCard{
			Login:     c.Login,
			AvatarURL: c.AvatarURL,
			HTMLURL:   c.HTMLURL,
		})
	}
	return out, nil
}

// mapUpstreamErr converts GitHub client failures into platform errors
func mapUpstreamErr(err error, login string) error {
	switch {
	case gh.IsNotFound(err):
		return perr.NotFoundf("github user %q not found", login)
	case gh.IsRateLimited(err):
		return perr.RateLimitedf("github rate limited")
	case perr.CodeOf(err) != perr.ErrorCodeUnknown:
		return err
	default:
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "github request failed")
	}
}
