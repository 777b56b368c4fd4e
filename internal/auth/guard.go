// Package auth decides whether the current session identity may perform an
// operation. Handlers consume Decision values instead of repeating inline
// session checks per route.
package auth

import (
	"github.com/seareny/tastebook/internal/httperr"
	"github.com/seareny/tastebook/internal/models"
)

// Decision is the outcome of an authorization check. When denied, Reason
// carries the error the handler should serve.
type Decision struct {
	Allowed bool
	Reason  error
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason error) Decision {
	return Decision{Reason: reason}
}

// Err returns the denial reason, or nil when the decision allows.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return d.Reason
}

// RequireGuest gates register and login: a session may hold one identity at
// a time, so an already-authenticated caller is refused.
func RequireGuest(currentUser string) Decision {
	if currentUser != "" {
		return deny(httperr.ErrForbidden)
	}
	return allow()
}

// RequireUser gates every operation that needs an established identity.
func RequireUser(currentUser string) Decision {
	if currentUser == "" {
		return deny(httperr.ErrForbidden)
	}
	return allow()
}

// RequireOwner gates edit and delete of a recipe. A missing recipe is
// NotFound before ownership is ever compared, so a stale id never turns
// into a spurious ownership failure.
func RequireOwner(currentUser string, recipe *models.Recipe) Decision {
	if d := RequireUser(currentUser); !d.Allowed {
		return d
	}
	if recipe == nil {
		return deny(httperr.ErrNotFound)
	}
	if recipe.CreatedBy != currentUser {
		return deny(httperr.ErrForbidden)
	}
	return allow()
}
