package history

import (
	"github.com/dnspurge/dnspurge/domain"
)

// Repos holds repositories needed for history use cases.
type Repos struct {
	Run domain.RunRepository
}

// UseCase wires repositories needed for history use cases.
type UseCase struct {
	Repos *Repos
}

func (u *UseCase) enabled() bool { return u.Repos != nil && u.Repos.Run != nil }
