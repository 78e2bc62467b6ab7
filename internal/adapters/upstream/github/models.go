package github

import "time"

// User is a partial GitHub user document with fields we use
type User struct {
	ID          int64     `json:"id"`
	Login       string    `json:"login"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	Blog        string    `json:"blog"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
	HTMLURL     string    `json:"html_url"`
}

// Repo is a partial GitHub repository document with fields we use
type Repo struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Description  string `json:"description"`
	Fork         bool   `json:"fork"`
	Language     string `json:"language"`
	Stargazers   int    `json:"stargazers_count"`
	Forks        int    `json:"forks_count"`
	Watchers     int    `json:"watchers_count"`
	LanguagesURL string `json:"languages_url"`
	HTMLURL      string `json:"html_url"`
}

// Connection is a partial user document as returned by the
// followers and following listings (a trimmed-down User)
type Connection struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// RateStatus is the core block of GET /rate_limit for the active token
type RateStatus struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"-"`
}
