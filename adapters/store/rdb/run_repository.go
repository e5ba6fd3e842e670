package rdb

import (
	"context"
	"time"

	"github.com/dnspurge/dnspurge/domain"
	"github.com/dnspurge/dnspurge/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RunRepository struct{ db *gorm.DB }

func NewRunRepository(db *gorm.DB) *RunRepository { return &RunRepository{db: db} }

func runToRecord(r *model.Run) *RunRecord {
	return &RunRecord{
		ID:           r.ID,
		Domain:       r.Domain,
		Threads:      r.Threads,
		DelaySeconds: r.Delay.Seconds(),
		SuccessCount: r.Successes,
		FailureCount: r.Failures,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
	}
}

func runToModel(rec *RunRecord, outs []OutcomeRecord) *model.Run {
	r := &model.Run{
		ID:         rec.ID,
		Domain:     rec.Domain,
		Threads:    rec.Threads,
		Delay:      time.Duration(rec.DelaySeconds * float64(time.Second)),
		Successes:  rec.SuccessCount,
		Failures:   rec.FailureCount,
		StartedAt:  rec.StartedAt,
		FinishedAt: rec.FinishedAt,
	}
	for i := range outs {
		r.Outcomes = append(r.Outcomes, model.PurgeOutcome{
			Type:    model.RecordType(outs[i].Type),
			Status:  model.PurgeStatus(outs[i].Status),
			Message: outs[i].Message,
		})
	}
	return r
}

// Create persists a run together with its outcome rows.
func (r *RunRepository) Create(ctx context.Context, run *model.Run) error {
	rec := runToRecord(run)
	if rec.ID == "" {
		rec.ID = "run-" + uuid.NewString()
		run.ID = rec.ID
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		for i, o := range run.Outcomes {
			out := &OutcomeRecord{
				ID:       "out-" + uuid.NewString(),
				RunID:    rec.ID,
				Position: i,
				Type:     string(o.Type),
				Status:   string(o.Status),
				Message:  o.Message,
			}
			if err := tx.Create(out).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Get loads a run with its outcome rows in position order.
func (r *RunRepository) Get(ctx context.Context, id string) (*model.Run, error) {
	var rec RunRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, model.ErrRunNotFound
		}
		return nil, err
	}
	var outs []OutcomeRecord
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&outs, "run_id = ?", id).Error; err != nil {
		return nil, err
	}
	return runToModel(&rec, outs), nil
}

// List returns recent runs, newest first, without their outcome rows.
// A non-positive limit returns all runs.
func (r *RunRepository) List(ctx context.Context, limit int) ([]*model.Run, error) {
	q := r.db.WithContext(ctx).Order("started_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recs []RunRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Run, 0, len(recs))
	for i := range recs {
		out = append(out, runToModel(&recs[i], nil))
	}
	return out, nil
}

var _ domain.RunRepository = (*RunRepository)(nil)
