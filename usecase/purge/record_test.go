package purge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dnspurge/dnspurge/domain/model"
)

// memRunRepository is a minimal in-memory RunRepository for tests.
type memRunRepository struct {
	runs []*model.Run
}

func (m *memRunRepository) Create(ctx context.Context, r *model.Run) error {
	if r.ID == "" {
		r.ID = "run-mem-1"
	}
	m.runs = append(m.runs, r)
	return nil
}

func (m *memRunRepository) Get(ctx context.Context, id string) (*model.Run, error) {
	for _, r := range m.runs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, model.ErrRunNotFound
}

func (m *memRunRepository) List(ctx context.Context, limit int) ([]*model.Run, error) {
	return m.runs, nil
}

func TestRecord(t *testing.T) {
	repo := &memRunRepository{}
	u := &UseCase{Repos: &Repos{Run: repo}}

	started := time.Now().Add(-time.Second)
	out, err := u.Record(context.Background(), &RecordInput{
		Domain:     "example.com",
		Threads:    2,
		Delay:      time.Second,
		Result:     exportResultSet(),
		StartedAt:  started,
		FinishedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if out.RunID == "" {
		t.Error("RunID should be assigned")
	}
	if len(repo.runs) != 1 {
		t.Fatalf("stored runs = %d, want 1", len(repo.runs))
	}
	run := repo.runs[0]
	if run.Successes != 2 || run.Failures != 1 {
		t.Errorf("counts = %d/%d, want 2/1", run.Successes, run.Failures)
	}
	if len(run.Outcomes) != 3 {
		t.Errorf("outcomes = %d, want 3", len(run.Outcomes))
	}
	if run.Outcomes[2].Status != model.StatusFailure {
		t.Errorf("outcome order should put failures last: %v", run.Outcomes)
	}
}

func TestRecordHistoryDisabled(t *testing.T) {
	u := &UseCase{}
	_, err := u.Record(context.Background(), &RecordInput{Result: exportResultSet()})
	if !errors.Is(err, model.ErrHistoryDisabled) {
		t.Fatalf("error = %v, want ErrHistoryDisabled", err)
	}
}
