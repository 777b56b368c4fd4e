package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 403, StatusCode(ErrForbidden))
	assert.Equal(t, 404, StatusCode(ErrNotFound))
	assert.Equal(t, 401, StatusCode(ErrUnauthorized))
	assert.Equal(t, 500, StatusCode(errors.New("mongo blew up")))

	// Wrapped sentinels keep their status.
	assert.Equal(t, 404, StatusCode(fmt.Errorf("recipe lookup: %w", ErrNotFound)))
}

func TestPage(t *testing.T) {
	assert.Equal(t, "401", Page(401))
	assert.Equal(t, "403", Page(403))
	assert.Equal(t, "404", Page(404))
	assert.Equal(t, "500", Page(500))
	assert.Equal(t, "500", Page(418))
}
