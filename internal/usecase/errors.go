package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput     = crerr.New("invalid input")
	ErrNotFound         = crerr.New("resource not found")
	ErrSeasonNotStarted = crerr.New("season not started")
)
