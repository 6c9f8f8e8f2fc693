// Package health contains the readiness response shape.
package health

// HealthResponse is the body returned by GET /readyz.
type HealthResponse struct {
	Status     string            `json:"status"` // ready | degraded | unavailable
	Version    string            `json:"version,omitempty"`
	Components map[string]string `json:"components,omitempty"`
}
