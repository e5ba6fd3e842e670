package model

import "context"

// Purger is the domain port for the remote purge API. Implementations must
// classify every response and every transport error into a PurgeOutcome:
// failures travel as data, never as errors, so a run always collects exactly
// one outcome per dispatched request.
type Purger interface {
	Purge(ctx context.Context, req PurgeRequest) PurgeOutcome
}

// PurgerFunc adapts a plain function to the Purger interface.
type PurgerFunc func(ctx context.Context, req PurgeRequest) PurgeOutcome

// Purge calls f.
func (f PurgerFunc) Purge(ctx context.Context, req PurgeRequest) PurgeOutcome {
	return f(ctx, req)
}
