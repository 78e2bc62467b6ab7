package service

import (
	"context"
	"sync"

	"octoview/internal/core/langstats"

	gh "octoview/internal/adapters/upstream/github"
)

// chunkSize bounds concurrent language fan-out per settle round
const chunkSize = 5

// aggregate walks the repo listing in fixed-size chunks, fetching each
// repo's language breakdown concurrently within a chunk and joining all
// outcomes before the next chunk starts. A failed language fetch
// contributes nothing and never aborts the run. Stars come from the
// listing itself, so every repo counts toward the total regardless of
// its language fetch outcome.
func (s *Svc) aggregate(ctx context.Context, owner string, repos []gh.Repo) (langstats.Accumulator, int) {
	acc := langstats.Accumulator{}
	stars := 0

	for start := 0; start < len(repos); start += chunkSize {
		end := start + chunkSize
		if end > len(repos) {
			end = len(repos)
		}
		chunk := repos[start:end]

		// per-index slots; nil marks a failed or empty fetch
		out := make([]map[string]int64, len(chunk))
		wg := sync.WaitGroup{}

		for i := range chunk {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				langs, err := s.gh.RepoLanguages(ctx, owner, chunk[i].Name)
				if err != nil {
					s.log.Warn().Err(err).
						Str("owner", owner).
						Str("repo", chunk[i].Name).
						Msg("language fetch failed, skipping repo")
					return
				}
				out[i] = langs
			}(i)
		}
		wg.Wait()

		for i := range chunk {
			stars += chunk[i].Stargazers
			if out[i] != nil {
				acc.Merge(out[i])
			}
		}
	}
	return acc, stars
}
