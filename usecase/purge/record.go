package purge

import (
	"context"
	"fmt"
	"time"

	"github.com/dnspurge/dnspurge/domain/model"
)

// RecordInput holds parameters for persisting a finished run.
type RecordInput struct {
	Domain     string           `json:"domain"`
	Threads    int              `json:"threads"`
	Delay      time.Duration    `json:"delay"`
	Result     *model.ResultSet `json:"result"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
}

// RecordOutput holds the identity of the persisted run.
type RecordOutput struct {
	RunID string `json:"run_id"`
}

// Record persists a finished run into history. Returns ErrHistoryDisabled
// when no run repository is configured.
func (u *UseCase) Record(ctx context.Context, in *RecordInput) (*RecordOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	if in.Result == nil {
		return nil, fmt.Errorf("Result is required")
	}
	if u.Repos == nil || u.Repos.Run == nil {
		return nil, model.ErrHistoryDisabled
	}

	run := &model.Run{
		Domain:     in.Domain,
		Threads:    in.Threads,
		Delay:      in.Delay,
		Successes:  len(in.Result.Successes),
		Failures:   len(in.Result.Failures),
		Outcomes:   in.Result.Outcomes(),
		StartedAt:  in.StartedAt,
		FinishedAt: in.FinishedAt,
	}
	if err := u.Repos.Run.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}
	return &RecordOutput{RunID: run.ID}, nil
}
