// Package http provides http transport for ranking
package http

import (
	stdhttp "net/http"

	"octoview/internal/modkit/httpkit"
	"octoview/internal/services/api/ranking/domain"
	svc "octoview/internal/services/api/ranking/service"
)

// Register mounts ranking endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// global language ranking across all summarized users
	httpkit.PostJSON[domain.LanguagesInput](r, "/languages", h.languages)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /ranking/languages Ranking rankingLanguages
// @Summary Most common languages across all summarized users
// @Tags Ranking
// @Accept json
// @Produce json
// @Param payload body domain.LanguagesInput true "Query"
// @Success 200 {array} domain.LanguageShare "ok"
// @Router /ranking/languages [post]
func (h *handlers) languages(r *stdhttp.Request, in domain.LanguagesInput) (any, error) {
	return h.svc.Languages(r.Context(), in)
}
