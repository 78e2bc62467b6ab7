// Package http provides http transport for users
package http

import (
	stdhttp "net/http"

	"octoview/internal/modkit/httpkit"
	"octoview/internal/services/api/users/domain"
	svc "octoview/internal/services/api/users/service"
)

// Register mounts users endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// full aggregation pipeline for one username
	httpkit.PostJSON[domain.SummaryInput](r, "/summary", h.summary)

	// top repositories by stars
	httpkit.PostJSON[domain.ReposInput](r, "/repos", h.repos)

	// one page of followers or following
	httpkit.PostJSON[domain.ConnectionsInput](r, "/connections", h.connections)

	// recently summarized usernames
	httpkit.PostJSON[domain.RecentInput](r, "/recent", h.recent)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /users/summary Users usersSummary
// @Summary Aggregated profile summary for a username
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.SummaryInput true "Username"
// @Success 200 {object} domain.UserSummary "ok"
// @Router /users/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.SummaryInput) (any, error) {
	return h.svc.Summary(r.Context(), in)
}

// swagger:route POST /users/repos Users usersRepos
// @Summary Top repositories by stars
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.ReposInput true "Query"
// @Success 200 {array} domain.RepoCard "ok"
// @Router /users/repos [post]
func (h *handlers) repos(r *stdhttp.Request, in domain.ReposInput) (any, error) {
	return h.svc.TopRepos(r.Context(), in)
}

// swagger:route POST /users/connections Users usersConnections
// @Summary Followers or following listing
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.ConnectionsInput true "Query"
// @Success 200 {array} domain.ConnectionCard "ok"
// @Router /users/connections [post]
func (h *handlers) connections(r *stdhttp.Request, in domain.ConnectionsInput) (any, error) {
	return h.svc.Connections(r.Context(), in)
}

// swagger:route POST /users/recent Users usersRecent
// @Summary Recently summarized usernames
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.RecentInput true "Query"
// @Success 200 {array} domain.RecentEntry "ok"
// @Router /users/recent [post]
func (h *handlers) recent(r *stdhttp.Request, in domain.RecentInput) (any, error) {
	return h.svc.Recent(r.Context(), in)
}
