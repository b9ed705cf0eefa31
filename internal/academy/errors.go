package academy

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInUse           = errors.New("still assigned to players")
	ErrNoChanges       = errors.New("no changes to apply")
	ErrUnknownAgeGroup = errors.New("unknown age group")
)
