package dto

import (
	"github.com/FinHubBR/finhub_backend/internal/core/domain"
)

// StateResponse is the full persisted pair plus the version of each profile
// tree. Clients echo the version back implicitly by mutating through the
// API; it is exposed for diagnostics and conditional refresh.
type StateResponse struct {
	PJ       domain.AppState  `json:"PJ"`
	PF       domain.AppState  `json:"PF"`
	Versions map[string]int64 `json:"versions"`
}

// ToStateResponse maps the domain pair and per-profile versions.
func ToStateResponse(state *domain.DBState, versions map[domain.ProfileKind]int64) StateResponse {
	resp := StateResponse{PJ: state.PJ, PF: state.PF, Versions: make(map[string]int64, len(versions))}
	for kind, v := range versions {
		resp.Versions[string(kind)] = v
	}
	return resp
}
