package module

import (
	"context"

	"octoview/internal/services/api/ranking/domain"
	rankingsvc "octoview/internal/services/api/ranking/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Ports exposes the ranking surfaces other modules consume.
// Tracker is injected into the users module at mount time.
type Ports struct {
	Tracker domain.TrackerPort
	Ranking domain.ServicePort
}

type adaptRankingPort struct{ svc rankingsvc.Service }

// Languages returns the renormalized top-N language shares
func (a adaptRankingPort) Languages(ctx context.Context, in domain.LanguagesInput) ([]domain.LanguageShare, error) {
	return a.svc.Languages(ctx, in)
}
