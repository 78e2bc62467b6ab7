// Package repo provides clickhouse access for language occurrences
package repo

import (
	"context"

	perr "octoview/internal/platform/errors"
	"octoview/internal/platform/store"
)

// Repo is the minimal persistence surface for the occurrence tracker
type Repo interface {
	HasUser(ctx context.Context, username string) (bool, error)
	InsertOccurrences(ctx context.Context, username string, languages []string) error
	LanguageCounts(ctx context.Context) ([]LangCount, error)
}

// LangCount is one language's row count, descending in listings
type LangCount struct {
	Language string
	Count    uint64
}

type chRepo struct{ ch store.Clickhouse }

// NewCH wires the clickhouse seam to the repo
func NewCH(ch store.Clickhouse) Repo {
	if ch == nil {
		panic("ranking.Repo requires a non nil clickhouse seam")
	}
	return &chRepo{ch: ch}
}

func (r *chRepo) HasUser(ctx context.Context, username string) (bool, error) {
	rows, err := r.ch.Query(ctx, `select count() from language_occurrence where username = ?`, username)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return false, perr.DBf("ranking: count query returned no rows")
	}
	var n uint64
	if err := rows.Scan(&n); err != nil {
		return false, err
	}
	return n > 0, rows.Err()
}

func (r *chRepo) InsertOccurrences(ctx context.Context, username string, languages []string) error {
	if len(languages) == 0 {
		return nil
	}
	data := make([][]any, 0, len(languages))
	for _, lang := range languages {
		data = append(data, []any{lang, username})
	}
	return r.ch.Insert(ctx, "language_occurrence", data)
}

func (r *chRepo) LanguageCounts(ctx context.Context) ([]LangCount, error) {
	const sql = `
select language, count() as c
from language_occurrence
group by language
order by c desc, language asc
`
	rows, err := r.ch.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LangCount
	for rows.Next() {
		var lc LangCount
		if err := rows.Scan(&lc.Language, &lc.Count); err != nil {
			return nil, err
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}
