package interaction

import "errors"

// ErrEmptyToken indicates that no token was provided and no session was injected via WithSession.
var ErrEmptyToken = errors.New("token must be set or a session must be provided via WithSession")

// ErrNoUser indicates that the given interaction has neither a guild member nor a user.
var ErrNoUser = errors.New("interaction has no user")

// ErrUnknownInteraction indicates that the interaction's kind can not be routed to a command.
var ErrUnknownInteraction = errors.New("interaction is not an application command, autocomplete, message component or modal submit")

// ErrLastMessageNotTracked is returned when the last followup message is requested from a Handle
// that was created without WithLastMessageTracking.
var ErrLastMessageNotTracked = errors.New("tried to return the last message when it isn't tracked")

// ErrEmptyApplicationID indicates that commands can not be synced because the application ID is unknown.
var ErrEmptyApplicationID = errors.New("application ID must be set to sync commands")
