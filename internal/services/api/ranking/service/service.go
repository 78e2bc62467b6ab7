// Package service contains the global language ranking workflows
package service

import (
	"context"
	"sort"

	"octoview/internal/core/langstats"
	"octoview/internal/services/api/ranking/domain"
	"octoview/internal/services/api/ranking/repo"
)

const defaultTopLanguages = 5

// Service defines the ranking service contract
type Service interface {
	domain.ServicePort
	domain.TrackerPort
}

// Svc implements the ranking service
type Svc struct {
	Repo repo.Repo
}

// New constructs a ranking service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("ranking.Service requires a non nil Repo")
	}
	return &Svc{Repo: r}
}

// RecordOnce inserts one occurrence row per non-zero language for a
// username, guarded by an existence check: a returning user is a
// no-op, so the ranking keeps their first-ever summarized mix.
func (s *Svc) RecordOnce(ctx context.Context, username string, percentages map[string]int) error {
	seen, err := s.Repo.HasUser(ctx, username)
	if err != nil {
		return err
	}
	if seen {
		return nil
	}
	langs := make([]string, 0, len(percentages))
	for lang, pct := range percentages {
		if pct > 0 {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return s.Repo.InsertOccurrences(ctx, username, langs)
}

// Languages computes each language's share of all occurrence rows,
// cuts to the top N, then renormalizes the survivors to sum to 100
func (s *Svc) Languages(ctx context.Context, in domain.LanguagesInput) ([]domain.LanguageShare, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultTopLanguages
	}

	counts, err := s.Repo.LanguageCounts(ctx)
	if err != nil {
		return nil, err
	}
	var total uint64
	for _, c := range counts {
		total += c.Count
	}
	if total == 0 {
		return []domain.LanguageShare{}, nil
	}
	if len(counts) > limit {
		counts = counts[:limit]
	}

	shares := make([]langstats.Share, 0, len(counts))
	for _, c := range counts {
		shares = append(shares, langstats.Share{
			Language: c.Language,
			Percent:  float64(c.Count) * 100 / float64(total),
		})
	}
	shares = langstats.Renormalize(shares)

	out := make([]domain.LanguageShare, 0, len(shares))
	for _, sh := range shares {
		out = append(out, domain.LanguageShare{Language: sh.Language, Share: sh.Percent})
	}
	return out, nil
}
