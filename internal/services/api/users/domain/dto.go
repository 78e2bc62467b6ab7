// Package domain holds DTOs for users http and service contracts
package domain

// SummaryInput names the GitHub account to aggregate
type SummaryInput struct {
	Username string `json:"username" validate:"required,min=1,max=39" example:"octocat"`
}

// UserSummary is the derived profile built from one aggregation run
type UserSummary struct {
	Login               string         `json:"login" example:"octocat"`
	DisplayName         string         `json:"display_name" example:"The Octocat"`
	AvatarURL           string         `json:"avatar_url" example:"https://avatars.githubusercontent.com/u/583231"`
	Bio                 string         `json:"bio,omitempty" example:"Building things"`
	Followers           int            `json:"followers" example:"3938"`
	Following           int            `json:"following" example:"9"`
	PublicRepos         int            `json:"public_repos" example:"8"`
	LanguagePercentages map[string]int `json:"language_percentages"`
	TotalStars          int            `json:"total_stars" example:"10"`
	MemberSince         string         `json:"member_since" example:"January 2011"`
}

// ReposInput asks for a user's top repositories by stars
type ReposInput struct {
	Username string `json:"username" validate:"required,min=1,max=39" example:"octocat"`
	Limit    int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// RepoCard is one repository in the top-repos listing
type RepoCard struct {
	Name        string `json:"name" example:"hello-world"`
	Description string `json:"description,omitempty" example:"My first repository"`
	Stars       int    `json:"stars" example:"42"`
	Forks       int    `json:"forks" example:"9"`
	Watchers    int    `json:"watchers" example:"42"`
	Language    string `json:"language,omitempty" example:"Go"`
	HTMLURL     string `json:"html_url" example:"https://github.com/octocat/hello-world"`
}

// RecentInput caps the recency listing
type RecentInput struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=50" example:"20"`
}

// RecentEntry is one recency cache entry, most-recent-first
type RecentEntry struct {
	Username   string `json:"username" example:"octocat"`
	AvatarURL  string `json:"avatar_url" example:"https://avatars.githubusercontent.com/u/583231"`
	InsertedAt string `json:"inserted_at" example:"2026-08-31T12:00:00Z"`
}

// ConnectionsInput asks for one page of followers or following
type ConnectionsInput struct {
	Username string `json:"username" validate:"required,min=1,max=39" example:"octocat"`
	Kind     string `json:"kind" validate:"required,oneof=followers following" example:"followers"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	Limit    int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"30"`
}

// ConnectionCard is one user in a followers or following listing
type ConnectionCard struct {
	Login     string `json:"login" example:"defunkt"`
	AvatarURL string `json:"avatar_url" example:"https://avatars.githubusercontent.com/u/2"`
	HTMLURL   string `json:"html_url" example:"https://github.com/defunkt"`
}
