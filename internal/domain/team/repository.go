package team

import (
	"context"

	crerr "github.com/cockroachdb/errors"
)

var ErrDuplicateName = crerr.New("duplicate team name")

// Repository is the registry that owns the clubs of one season. IDs are
// assigned on Add and stay stable for the life of the registry.
type Repository interface {
	Add(ctx context.Context, item *Team) (*Team, error)
	GetByID(ctx context.Context, teamID int) (*Team, bool, error)
	List(ctx context.Context) ([]*Team, error)
	Reset(ctx context.Context) error
}
