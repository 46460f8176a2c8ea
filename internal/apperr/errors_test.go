package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	assert.Nil(t, MapError(nil))

	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: email", ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: user", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: email taken", ErrConflict), http.StatusConflict},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrUnprocessable, http.StatusUnprocessableEntity},
		{ErrUpstream, http.StatusBadGateway},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		got := MapError(tc.err)
		assert.Equal(t, tc.code, got.Code, tc.err.Error())
		assert.True(t, errors.Is(got, tc.err))
	}
}

func TestMapErrorKeepsAppError(t *testing.T) {
	orig := New(http.StatusTeapot, "short and stout", nil)
	wrapped := fmt.Errorf("handler: %w", orig)
	assert.Same(t, orig, MapError(wrapped))
	assert.Equal(t, "short and stout", orig.Error())
}
