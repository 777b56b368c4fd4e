package httperr

import "errors"

// Sentinel errors for every failure the handlers surface to a user.
// Forbidden, NotFound and Unauthorized map to rendered error pages;
// Conflict and InvalidCredentials are flashed back onto the form that
// caused them. The credential message is shared between the unknown-user
// and wrong-password cases on purpose.
var (
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("name already taken")
	ErrInvalidCredentials = errors.New("incorrect password or username, try again")
)

// StatusCode maps an error to the HTTP status it should be served with.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrForbidden):
		return 403
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrUnauthorized):
		return 401
	default:
		return 500
	}
}

// Page returns the template name of the error page for a status code.
func Page(code int) string {
	switch code {
	case 401:
		return "401"
	case 403:
		return "403"
	case 404:
		return "404"
	default:
		return "500"
	}
}
