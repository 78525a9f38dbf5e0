package commands

import "errors"

// Error kinds of the command contract. The host shell only ever sees the
// rendered string; these sentinels exist so the bridge and tests can classify
// failures without parsing messages.
var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingID          = errors.New("id is required")
)
