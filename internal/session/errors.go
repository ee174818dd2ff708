package session

import "errors"

var (
	ErrTokenExpired = errors.New("session: token expired")
	ErrNoToken      = errors.New("session: backend returned no token")
	ErrNoIdentity   = errors.New("session: backend returned no identity")
	ErrSuperseded   = errors.New("session: superseded by a newer operation")
)
