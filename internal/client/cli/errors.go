package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/filex"
)

// describe turns an error into the line shown to the user.
func describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, common.ErrSessionChanged):
		return "The session changed while the request was running; its result was discarded."
	case errors.Is(err, common.ErrEmailTaken):
		return "This email is already registered."
	case errors.Is(err, common.ErrAuth):
		return "Not signed in or the session expired: " + err.Error()
	case errors.Is(err, common.ErrNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, common.ErrUnknownColumn):
		return "Unknown field: " + err.Error()
	case errors.Is(err, filex.ErrTooLarge):
		return "File is too large (10 MB max)."
	case errors.Is(err, common.ErrWrite):
		return "Rejected: " + err.Error()
	case errors.Is(err, common.ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		return "Server unreachable, try again: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
