package health

import "context"

// Pinger is implemented by dependencies that can answer a liveness probe.
// Ping must return nil when the dependency is reachable.
type Pinger interface {
	HealthPing(ctx context.Context) error
}
