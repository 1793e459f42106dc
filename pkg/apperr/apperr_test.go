package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"bistro/pkg/apperr"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.ErrUnauthorized, http.StatusUnauthorized},
		{apperr.ErrForbidden, http.StatusForbidden},
		{apperr.ErrInvalidArgument, http.StatusBadRequest},
		{apperr.ErrNotFound, http.StatusNotFound},
		{apperr.ErrPersistence, http.StatusInternalServerError},
		{errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, apperr.StatusFor(tc.err), "error: %v", tc.err)
	}
}

func TestStatusForWrappedError(t *testing.T) {
	err := fmt.Errorf("%w: cart id %q", apperr.ErrInvalidArgument, "xy")
	assert.Equal(t, http.StatusBadRequest, apperr.StatusFor(err))
}
