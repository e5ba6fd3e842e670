package history

import (
	"context"

	"github.com/dnspurge/dnspurge/domain/model"
)

// List returns recent runs, newest first. A non-positive limit returns all.
func (u *UseCase) List(ctx context.Context, limit int) ([]*model.Run, error) {
	if !u.enabled() {
		return nil, model.ErrHistoryDisabled
	}
	return u.Repos.Run.List(ctx, limit)
}
