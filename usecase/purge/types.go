package purge

import (
	"github.com/dnspurge/dnspurge/domain"
	"github.com/dnspurge/dnspurge/domain/model"
)

// Repos bundles repository dependencies used by purge use cases.
// Run may be nil when run history is disabled.
type Repos struct {
	Run domain.RunRepository
}

// UseCase provides application logic for purge operations.
type UseCase struct {
	Repos  *Repos
	Purger model.Purger
}
