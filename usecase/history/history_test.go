package history

import (
	"context"
	"errors"
	"testing"

	"github.com/dnspurge/dnspurge/domain/model"
)

type fakeRunRepository struct {
	runs      []*model.Run
	lastLimit int
}

func (f *fakeRunRepository) Create(ctx context.Context, r *model.Run) error {
	f.runs = append(f.runs, r)
	return nil
}

func (f *fakeRunRepository) Get(ctx context.Context, id string) (*model.Run, error) {
	for _, r := range f.runs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, model.ErrRunNotFound
}

func (f *fakeRunRepository) List(ctx context.Context, limit int) ([]*model.Run, error) {
	f.lastLimit = limit
	return f.runs, nil
}

func TestListDisabled(t *testing.T) {
	u := &UseCase{}
	if _, err := u.List(context.Background(), 10); !errors.Is(err, model.ErrHistoryDisabled) {
		t.Fatalf("error = %v, want ErrHistoryDisabled", err)
	}
}

func TestList(t *testing.T) {
	repo := &fakeRunRepository{runs: []*model.Run{{ID: "run-1", Domain: "example.com"}}}
	u := &UseCase{Repos: &Repos{Run: repo}}

	runs, err := u.List(context.Background(), 5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-1" {
		t.Errorf("runs = %v", runs)
	}
	if repo.lastLimit != 5 {
		t.Errorf("limit passed = %d, want 5", repo.lastLimit)
	}
}

func TestGet(t *testing.T) {
	repo := &fakeRunRepository{runs: []*model.Run{{ID: "run-1", Domain: "example.com"}}}
	u := &UseCase{Repos: &Repos{Run: repo}}

	out, err := u.Get(context.Background(), &GetInput{RunID: "run-1"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.Run.Domain != "example.com" {
		t.Errorf("run = %+v", out.Run)
	}

	if _, err := u.Get(context.Background(), &GetInput{RunID: "run-none"}); !errors.Is(err, model.ErrRunNotFound) {
		t.Errorf("error = %v, want ErrRunNotFound", err)
	}
	if _, err := u.Get(context.Background(), &GetInput{}); err == nil {
		t.Error("missing RunID should fail")
	}
}
