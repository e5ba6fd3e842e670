package history

import (
	"context"
	"fmt"

	"github.com/dnspurge/dnspurge/domain/model"
)

// GetInput provides the identifier needed to fetch a Run.
type GetInput struct {
	// RunID is the ID of the target run.
	RunID string `json:"run_id"`
}

// GetOutput wraps the retrieved Run.
type GetOutput struct {
	// Run is the fetched run with its outcomes.
	Run *model.Run `json:"run"`
}

// Get returns the Run identified by RunID, outcomes included.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.RunID == "" {
		return nil, fmt.Errorf("RunID is required")
	}
	if !u.enabled() {
		return nil, model.ErrHistoryDisabled
	}
	r, err := u.Repos.Run.Get(ctx, in.RunID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Run: r}, nil
}
