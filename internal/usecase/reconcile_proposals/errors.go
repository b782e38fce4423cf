package reconcile_proposals

import "errors"

var (
	// ErrInternal retornado quando a varredura não consegue nem começar
	ErrInternal = errors.New("reconcile_proposals: internal error")
)
