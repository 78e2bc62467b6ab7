package service

import (
	"context"
	"time"

	"octoview/internal/modkit/repokit"
	"octoview/internal/services/api/users/domain"
)

const (
	// recencyCap is the maximum number of cached usernames
	recencyCap = 20
	// evictBatch is the fixed number of oldest rows removed when the
	// cap is reached. A fixed batch, not cap-relative; changing either
	// constant independently can let the table briefly exceed the cap.
	evictBatch = 10
)

// recordRecent refreshes the recency cache entry for a username.
// Order matters: evict oldest when at capacity, then drop any stale
// row for this username, then insert the fresh entry. All three run
// in one transaction so a concurrent writer cannot interleave.
func (s *Svc) recordRecent(ctx context.Context, username, avatarURL string) error {
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		n, err := r.CountEntries(ctx)
		if err != nil {
			return err
		}
		if n >= recencyCap {
			if err := r.DeleteOldest(ctx, evictBatch); err != nil {
				return err
			}
		}
		if err := r.DeleteByUsername(ctx, username); err != nil {
			return err
		}
		return r.Insert(ctx, username, avatarURL)
	})
}

// Recent lists cached usernames most-recent-first
func (s *Svc) Recent(ctx context.Context, in domain.RecentInput) ([]domain.RecentEntry, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = recencyCap
	}
	rows, err := s.Repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.RecentEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.RecentEntry{
			Username:   r.Username,
			AvatarURL:  r.AvatarURL,
			InsertedAt: r.InsertedAt.UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}
