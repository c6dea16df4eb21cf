package dto

// Readiness states reported by HealthResponse.Status.
const (
	HealthLive     = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
	CheckPassed    = "ok"
	CheckFailed    = "unavailable"
)

// HealthResponse is the body of the liveness and readiness probes. Checks is
// keyed by store name and omitted for liveness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToHealthResponse folds per-check results into a readiness body and reports
// whether every check passed. Failure details are not exposed.
func ToHealthResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	healthy := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = CheckFailed
			healthy = false
			continue
		}
		resp.Checks[name] = CheckPassed
	}
	if !healthy {
		resp.Status = HealthNotReady
	}
	return resp, healthy
}
