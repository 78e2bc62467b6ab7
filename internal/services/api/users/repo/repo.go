// Package repo provides postgres access for the recency cache
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"octoview/internal/modkit/repokit"
)

// Repo is the minimal persistence surface for the recency cache
type Repo interface {
	CountEntries(ctx context.Context) (int, error)
	DeleteOldest(ctx context.Context, n int) error
	DeleteByUsername(ctx context.Context, username string) error
	Insert(ctx context.Context, username, avatarURL string) error
	Recent(ctx context.Context, limit int) ([]RecentRow, error)
}

// RecentRow is one recency cache entry, most-recent-first in listings
type RecentRow struct {
	Username   string
	AvatarURL  string
	InsertedAt time.Time
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) CountEntries(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `select count(1) from users`).Scan(&n)
	return n, err
}

func (r *queries) DeleteOldest(ctx context.Context, n int) error {
	const sql = `
delete from users
where id in (
	select id from users
	order by inserted_at asc
	limit $1
)
`
	_, err := r.q.Exec(ctx, sql, n)
	return err
}

func (r *queries) DeleteByUsername(ctx context.Context, username string) error {
	_, err := r.q.Exec(ctx, `delete from users where username = $1`, username)
	return err
}

func (r *queries) Insert(ctx context.Context, username, avatarURL string) error {
	const sql = `
insert into users (id, username, avatar_url, inserted_at)
values ($1, $2, $3, now())
`
	_, err := r.q.Exec(ctx, sql, uuid.NewString(), username, avatarURL)
	return err
}

func (r *queries) Recent(ctx context.Context, limit int) ([]RecentRow, error) {
	const sql = `
select username, avatar_url, inserted_at
from users
order by inserted_at desc
limit $1
`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RecentRow
	for rows.Next() {
		var rr RecentRow
		if err := rows.Scan(&rr.Username, &rr.AvatarURL, &rr.InsertedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
