package domain

import (
	"context"

	"github.com/dnspurge/dnspurge/domain/model"
)

// RunRepository stores and retrieves Run aggregates.
type RunRepository interface {
	Create(ctx context.Context, r *model.Run) error
	Get(ctx context.Context, id string) (*model.Run, error)
	List(ctx context.Context, limit int) ([]*model.Run, error)
}

// Repositories groups repository interfaces handed to use cases.
type Repositories struct {
	Run RunRepository
}
