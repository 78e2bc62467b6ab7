package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// perPage is the listing page size; a page shorter than this
// signals end-of-data per the upstream contract
const perPage = 100

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// UserByLogin fetches a user profile by login
func (c *Client) UserByLogin(ctx context.Context, login string) (User, error) {
	var out User
	path := fmt.Sprintf("/users/%s", url.PathEscape(login))
	if err := c.getJSON(ctx, path, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// ReposPage fetches one page of a user's repository listing
func (c *Client) ReposPage(ctx context.Context, login string, page int) ([]Repo, error) {
	var out []Repo
	path := fmt.Sprintf("/users/%s/repos?per_page=%d&page=%d", url.PathEscape(login), perPage, page)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllRepos walks the repository listing from page 1 until a short or
// empty page and returns the concatenated ordered sequence
func (c *Client) AllRepos(ctx context.Context, login string) ([]Repo, error) {
	var all []Repo
	for page := 1; ; page++ {
		batch, err := c.ReposPage(ctx, login, page)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < perPage {
			return all, nil
		}
	}
}

// RepoLanguages fetches the language byte breakdown for a repo
func (c *Client) RepoLanguages(ctx context.Context, owner, name string) (map[string]int64, error) {
	var out map[string]int64
	path := fmt.Sprintf("/repos/%s/%s/languages", url.PathEscape(owner), url.PathEscape(name))
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConnectionsPage fetches one page of a user's followers or following
// listing. kind must be "followers" or "following".
func (c *Client) ConnectionsPage(ctx context.Context, login, kind string, page, pageSize int) ([]Connection, error) {
	var out []Connection
	path := fmt.Sprintf("/users/%s/%s?per_page=%d&page=%d", url.PathEscape(login), kind, pageSize, page)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RateLimit fetches the core quota status for the active token
func (c *Client) RateLimit(ctx context.Context) (RateStatus, error) {
	var raw struct {
		Resources struct {
			Core struct {
				Limit     int   `json:"limit"`
				Remaining int   `json:"remaining"`
				Reset     int64 `json:"reset"`
			} `json:"core"`
		} `json:"resources"`
	}
	if err := c.getJSON(ctx, "/rate_limit", &raw); err != nil {
		return RateStatus{}, err
	}
	rs := RateStatus{
		Limit:     raw.Resources.Core.Limit,
		Remaining: raw.Resources.Core.Remaining,
	}
	if raw.Resources.Core.Reset > 0 {
		rs.ResetAt = time.Unix(raw.Resources.Core.Reset, 0).UTC()
	}
	return rs, nil
}
